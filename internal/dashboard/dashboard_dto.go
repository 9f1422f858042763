package dashboard

import "time"

const (
	GroupByNone      = "none"
	GroupByLeaveType = "leavetype"
	GroupByTeam      = "team"
	GroupByEmployee  = "employee"

	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

type RangeQuery struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

type CoverageQuery struct {
	RangeQuery
	TeamID      *uint `form:"teamId"`
	ShiftTypeID *uint `form:"shiftTypeId"`
	GroupByTeam bool  `form:"groupByTeam"`
}

type GapsQuery struct {
	RangeQuery
	ShiftTypeID uint `form:"shiftTypeId" binding:"required"`
}

type DistributionQuery struct {
	RangeQuery
	TeamID *uint `form:"teamId"`
}

type LeaveSummaryQuery struct {
	RangeQuery
	GroupBy string `form:"groupBy"`
	TeamID  *uint  `form:"teamId"`
}

type LeaveTrendsQuery struct {
	RangeQuery
	Period string `form:"period"`
	TeamID *uint  `form:"teamId"`
}

type PendingLeaveQuery struct {
	TeamID *uint `form:"teamId"`
}

type CoverageRecord struct {
	Date          time.Time `json:"date"`
	TeamName      string    `json:"team_name"`
	ShiftCount    int       `json:"shift_count"`
	EmployeeCount int       `json:"employee_count"`
}

type GapInterval struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"duration_hours"`
}

type OnCallGapsResponse struct {
	ShiftTypeID   uint          `json:"shift_type_id"`
	ShiftTypeName string        `json:"shift_type_name,omitempty"`
	WindowStart   time.Time     `json:"window_start"`
	WindowEnd     time.Time     `json:"window_end"`
	Gaps          []GapInterval `json:"gaps"`
}

type UpcomingOnCallRecord struct {
	Date          time.Time `json:"date"`
	EmployeeID    uint      `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	TeamName      *string   `json:"team_name,omitempty"`
	ShiftTypeName string    `json:"shift_type_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

type TypeDistributionRecord struct {
	ShiftTypeID   uint    `json:"shift_type_id"`
	ShiftTypeName string  `json:"shift_type_name"`
	ShiftCount    int     `json:"shift_count"`
	Percentage    float64 `json:"percentage"`
}

type TeamAvailabilityResponse struct {
	TeamID               uint   `json:"team_id"`
	TeamName             string `json:"team_name"`
	TotalActiveEmployees int    `json:"total_active_employees"`
	OnShift              int    `json:"on_shift"`
	OnLeave              int    `json:"on_leave"`
	PotentiallyAvailable int    `json:"potentially_available"`
}

type LeaveSummaryGroup struct {
	GroupName    string  `json:"group_name"`
	RequestCount int     `json:"request_count"`
	TotalDays    float64 `json:"total_days"`
}

type LeaveTrendBucket struct {
	PeriodLabel  string    `json:"period_label"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
	RequestCount int       `json:"request_count"`
	TotalDays    float64   `json:"total_days"`
}

type PendingLeaveCountResponse struct {
	TeamID       *uint   `json:"team_id,omitempty"`
	TeamName     *string `json:"team_name,omitempty"`
	PendingCount int64   `json:"pending_count"`
}

type ScheduleItem struct {
	Type        string    `json:"type"`
	ReferenceID uint      `json:"reference_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status,omitempty"`
}
