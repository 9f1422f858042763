package app

import (
	"database/sql"
	"time"

	"github.com/BenitoJD/ROTA-API/internal/auth"
	"github.com/BenitoJD/ROTA-API/internal/dashboard"
	"github.com/BenitoJD/ROTA-API/internal/employee"
	"github.com/BenitoJD/ROTA-API/internal/leave"
	"github.com/BenitoJD/ROTA-API/internal/leavetype"
	"github.com/BenitoJD/ROTA-API/internal/messaging/kafka"
	"github.com/BenitoJD/ROTA-API/internal/shift"
	"github.com/BenitoJD/ROTA-API/internal/shifttype"
	"github.com/BenitoJD/ROTA-API/internal/team"
	"github.com/BenitoJD/ROTA-API/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	teamRepo := team.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	shiftTypeRepo := shifttype.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	teamService := team.NewService(db, teamRepo)
	employeeService := employee.NewService(db, employeeRepo)
	shiftTypeService := shifttype.NewService(shiftTypeRepo)
	leaveTypeService := leavetype.NewService(leaveTypeRepo)
	shiftService := shift.NewService(db, shiftRepo)
	leaveService := leave.NewService(db, leaveRepo, outboxRepo)
	dashboardService := dashboard.NewService(dashboardRepo)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo)

	// --- Handlers ---
	teamHandler := team.NewHandler(teamService)
	employeeHandler := employee.NewHandler(employeeService)
	shiftTypeHandler := shifttype.NewHandler(shiftTypeService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	shiftHandler := shift.NewHandler(shiftService)
	leaveHandler := leave.NewHandler(leaveService)
	dashboardCache := dashboard.NewCache(rdb, 60*time.Second)
	dashboardHandler := dashboard.NewHandler(dashboardService, dashboardCache)
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		team.RegisterRoutes(api, teamHandler)
		employee.RegisterRoutes(api, employeeHandler)
		shifttype.RegisterRoutes(api, shiftTypeHandler)
		leavetype.RegisterRoutes(api, leaveTypeHandler)
		shift.RegisterRoutes(api, shiftHandler)
		leave.RegisterRoutes(api, leaveHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
		user.RegisterRoutes(api, userHandler)
	}

	return nil
}
