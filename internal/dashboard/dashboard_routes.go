package dashboard

import (
	"github.com/BenitoJD/ROTA-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	board := r.Group("/dashboard")
	board.Use(middleware.AuthMiddleware())
	{
		rota := board.Group("", middleware.RequireCapability(middleware.CapViewRota))
		{
			rota.GET("/shifts/coverage", handler.ShiftCoverage)
			rota.GET("/shifts/typedistribution", handler.ShiftTypeDistribution)
			rota.GET("/oncall/gaps", handler.OnCallGaps)
			rota.GET("/oncall/upcoming", handler.UpcomingOnCall)
			rota.GET("/availability/team/:teamId", handler.TeamAvailability)
			rota.GET("/employee/:employeeId/schedule", handler.EmployeeSchedule)
		}

		leaveReports := board.Group("", middleware.RequireCapability(middleware.CapViewLeave))
		{
			leaveReports.GET("/leave/summary", handler.LeaveSummary)
			leaveReports.GET("/leave/trends", handler.LeaveTrends)
			leaveReports.GET("/leave/pendingcount", handler.PendingLeaveCount)
		}
	}
}
