package dashboard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"
	"github.com/BenitoJD/ROTA-API/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	cache   *Cache
}

func NewHandler(service Service, cache *Cache) *Handler {
	return &Handler{service: service, cache: cache}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeQueryError(c *gin.Context) {
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", nil)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("Invalid %s parameter", name), nil)
		return 0, false
	}
	return uint(v), true
}

func cacheKey(c *gin.Context) string {
	return "dashboard:" + c.Request.URL.Path + "?" + c.Request.URL.RawQuery
}

func (h *Handler) respondCached(c *gin.Context, key string, fill func() (any, error)) {
	payload, err := h.cache.GetOrFill(c.Request.Context(), key, fill)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, payload, nil)
}

func (h *Handler) ShiftCoverage(c *gin.Context) {
	var q CoverageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.ShiftCoverage(c.Request.Context(), q)
	})
}

func (h *Handler) OnCallGaps(c *gin.Context) {
	var q GapsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.OnCallGaps(c.Request.Context(), q)
	})
}

func (h *Handler) UpcomingOnCall(c *gin.Context) {
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.UpcomingOnCall(c.Request.Context(), q)
	})
}

func (h *Handler) ShiftTypeDistribution(c *gin.Context) {
	var q DistributionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.ShiftTypeDistribution(c.Request.Context(), q)
	})
}

func (h *Handler) TeamAvailability(c *gin.Context) {
	teamID, ok := parseUintParam(c, "teamId")
	if !ok {
		return
	}
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.TeamAvailability(c.Request.Context(), teamID, q)
	})
}

func (h *Handler) LeaveSummary(c *gin.Context) {
	var q LeaveSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.LeaveSummary(c.Request.Context(), q)
	})
}

func (h *Handler) LeaveTrends(c *gin.Context) {
	var q LeaveTrendsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.LeaveTrends(c.Request.Context(), q)
	})
}

func (h *Handler) PendingLeaveCount(c *gin.Context) {
	var q PendingLeaveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}
	h.respondCached(c, cacheKey(c), func() (any, error) {
		return h.service.PendingLeaveCount(c.Request.Context(), q.TeamID)
	})
}

func (h *Handler) EmployeeSchedule(c *gin.Context) {
	employeeID, ok := parseUintParam(c, "employeeId")
	if !ok {
		return
	}
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeQueryError(c)
		return
	}

	actorEmployeeID := c.GetUint("employee_id")
	isAdmin := c.GetBool("is_admin")

	// Schedule responses depend on the caller, so the caller is part of
	// the cache key.
	key := fmt.Sprintf("%s|actor=%d,admin=%t", cacheKey(c), actorEmployeeID, isAdmin)
	h.respondCached(c, key, func() (any, error) {
		return h.service.EmployeeSchedule(c.Request.Context(), actorEmployeeID, isAdmin, employeeID, q)
	})
}
