package team

import "time"

type Team struct {
	ID          uint    `gorm:"primaryKey"`
	TeamName    string  `gorm:"type:varchar(100);not null;uniqueIndex:uq_team_name"`
	Description *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
