package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	dashboarderrors "github.com/BenitoJD/ROTA-API/internal/dashboard/errors"
	"github.com/BenitoJD/ROTA-API/internal/leave"
	"github.com/BenitoJD/ROTA-API/internal/shared/timewindow"

	"go.uber.org/zap"
)

const unassignedTeamLabel = "Unassigned"

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	ShiftCoverage(ctx context.Context, q CoverageQuery) ([]CoverageRecord, error)
	OnCallGaps(ctx context.Context, q GapsQuery) (OnCallGapsResponse, error)
	UpcomingOnCall(ctx context.Context, q RangeQuery) ([]UpcomingOnCallRecord, error)
	ShiftTypeDistribution(ctx context.Context, q DistributionQuery) ([]TypeDistributionRecord, error)
	TeamAvailability(ctx context.Context, teamID uint, q RangeQuery) (TeamAvailabilityResponse, error)
	LeaveSummary(ctx context.Context, q LeaveSummaryQuery) ([]LeaveSummaryGroup, error)
	LeaveTrends(ctx context.Context, q LeaveTrendsQuery) ([]LeaveTrendBucket, error)
	PendingLeaveCount(ctx context.Context, teamID *uint) (PendingLeaveCountResponse, error)
	EmployeeSchedule(ctx context.Context, actorEmployeeID uint, isAdmin bool, employeeID uint, q RangeQuery) ([]ScheduleItem, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

// requireRange insists on both inclusive dates being present and ordered.
func requireRange(q RangeQuery) (time.Time, time.Time, error) {
	if q.StartDate == nil || q.EndDate == nil {
		return time.Time{}, time.Time{}, dashboarderrors.ErrInvalidRange
	}
	start := timewindow.DayBucket(*q.StartDate)
	end := timewindow.DayBucket(*q.EndDate)
	if start.After(end) {
		return time.Time{}, time.Time{}, dashboarderrors.ErrInvalidRange
	}
	return start, end, nil
}

// rangeOrDefault fills missing bounds from defaults, keeping any side the
// caller did provide.
func rangeOrDefault(q RangeQuery, defStart, defEnd time.Time) (time.Time, time.Time, error) {
	start := timewindow.DayBucket(defStart)
	end := timewindow.DayBucket(defEnd)
	if q.StartDate != nil {
		start = timewindow.DayBucket(*q.StartDate)
	}
	if q.EndDate != nil {
		end = timewindow.DayBucket(*q.EndDate)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, dashboarderrors.ErrInvalidRange
	}
	return start, end, nil
}

func (s *service) ShiftCoverage(ctx context.Context, q CoverageQuery) ([]CoverageRecord, error) {
	start, end, err := requireRange(q.RangeQuery)
	if err != nil {
		return nil, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	shifts, err := s.repo.ShiftsInWindow(ctx, winStart, winEnd, q.TeamID, q.ShiftTypeID, nil, false)
	if err != nil {
		return nil, err
	}

	type agg struct {
		count     int
		employees map[uint]struct{}
	}

	records := []CoverageRecord{}
	for _, day := range timewindow.ExpandDateRange(start, end) {
		dayEnd := day.Add(24 * time.Hour)

		groups := map[string]*agg{}
		for _, sh := range shifts {
			if !timewindow.Overlaps(sh.StartTime, sh.EndTime, day, dayEnd) {
				continue
			}
			name := "All Teams"
			if q.GroupByTeam {
				name = unassignedTeamLabel
				if sh.TeamName != nil {
					name = *sh.TeamName
				}
			}
			g := groups[name]
			if g == nil {
				g = &agg{employees: map[uint]struct{}{}}
				groups[name] = g
			}
			g.count++
			g.employees[sh.EmployeeID] = struct{}{}
		}

		// Days with no coverage at all are omitted.
		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			g := groups[name]
			records = append(records, CoverageRecord{
				Date:          day,
				TeamName:      name,
				ShiftCount:    g.count,
				EmployeeCount: len(g.employees),
			})
		}
	}
	return records, nil
}

// OnCallGaps runs an interval-merge sweep over the window: the pointer
// starts at the window start and jumps over every clamped shift, emitting a
// gap wherever the next shift starts beyond it.
func (s *service) OnCallGaps(ctx context.Context, q GapsQuery) (OnCallGapsResponse, error) {
	today := timewindow.DayBucket(s.now())
	start, end, err := rangeOrDefault(q.RangeQuery, today, today.AddDate(0, 0, 7))
	if err != nil {
		return OnCallGapsResponse{}, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	resp := OnCallGapsResponse{
		ShiftTypeID: q.ShiftTypeID,
		WindowStart: winStart,
		WindowEnd:   winEnd,
		Gaps:        []GapInterval{},
	}

	name, isOnCall, exists, err := s.repo.ShiftTypeInfo(ctx, q.ShiftTypeID)
	if err != nil {
		return OnCallGapsResponse{}, err
	}
	if !exists || !isOnCall {
		return resp, nil
	}
	resp.ShiftTypeName = name

	shifts, err := s.repo.ShiftsInWindow(ctx, winStart, winEnd, nil, &q.ShiftTypeID, nil, false)
	if err != nil {
		return OnCallGapsResponse{}, err
	}

	pointer := winStart
	for _, sh := range shifts {
		cs, ce := timewindow.Clamp(sh.StartTime, sh.EndTime, winStart, winEnd)
		if cs.After(pointer) {
			resp.Gaps = append(resp.Gaps, newGap(pointer, cs))
		}
		if ce.After(pointer) {
			pointer = ce
		}
	}
	if pointer.Before(winEnd) {
		resp.Gaps = append(resp.Gaps, newGap(pointer, winEnd))
	}
	return resp, nil
}

func newGap(start, end time.Time) GapInterval {
	return GapInterval{
		Start:         start,
		End:           end,
		DurationHours: end.Sub(start).Hours(),
	}
}

func (s *service) UpcomingOnCall(ctx context.Context, q RangeQuery) ([]UpcomingOnCallRecord, error) {
	today := timewindow.DayBucket(s.now())
	start, end, err := rangeOrDefault(q, today, today.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	shifts, err := s.repo.ShiftsInWindow(ctx, winStart, winEnd, nil, nil, nil, true)
	if err != nil {
		return nil, err
	}

	records := []UpcomingOnCallRecord{}
	for _, day := range timewindow.ExpandDateRange(start, end) {
		dayEnd := day.Add(24 * time.Hour)
		for _, sh := range shifts {
			if !timewindow.Overlaps(sh.StartTime, sh.EndTime, day, dayEnd) {
				continue
			}
			typeName := ""
			if sh.ShiftTypeName != nil {
				typeName = *sh.ShiftTypeName
			}
			records = append(records, UpcomingOnCallRecord{
				Date:          day,
				EmployeeID:    sh.EmployeeID,
				EmployeeName:  sh.EmployeeName(),
				TeamName:      sh.TeamName,
				ShiftTypeName: typeName,
				StartTime:     sh.StartTime,
				EndTime:       sh.EndTime,
			})
		}
	}
	return records, nil
}

func (s *service) ShiftTypeDistribution(ctx context.Context, q DistributionQuery) ([]TypeDistributionRecord, error) {
	start, end, err := requireRange(q.RangeQuery)
	if err != nil {
		return nil, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	shifts, err := s.repo.ShiftsInWindow(ctx, winStart, winEnd, q.TeamID, nil, nil, false)
	if err != nil {
		return nil, err
	}

	type agg struct {
		name  string
		count int
	}
	counts := map[uint]*agg{}
	total := 0
	for _, sh := range shifts {
		// Typeless shifts are not part of the distribution.
		if sh.ShiftTypeID == nil || sh.ShiftTypeName == nil {
			continue
		}
		a := counts[*sh.ShiftTypeID]
		if a == nil {
			a = &agg{name: *sh.ShiftTypeName}
			counts[*sh.ShiftTypeID] = a
		}
		a.count++
		total++
	}

	denom := total
	if denom == 0 {
		denom = 1
	}

	records := make([]TypeDistributionRecord, 0, len(counts))
	for id, a := range counts {
		records = append(records, TypeDistributionRecord{
			ShiftTypeID:   id,
			ShiftTypeName: a.name,
			ShiftCount:    a.count,
			Percentage:    math.Round(float64(a.count)/float64(denom)*100*100) / 100,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ShiftTypeName < records[j].ShiftTypeName })
	return records, nil
}

// TeamAvailability counts each unavailable employee once, even when they
// are both on shift and on approved leave inside the window.
func (s *service) TeamAvailability(ctx context.Context, teamID uint, q RangeQuery) (TeamAvailabilityResponse, error) {
	teamName, found, err := s.repo.TeamName(ctx, teamID)
	if err != nil {
		return TeamAvailabilityResponse{}, err
	}
	if !found {
		return TeamAvailabilityResponse{}, dashboarderrors.ErrTeamNotFound
	}

	today := timewindow.DayBucket(s.now())
	start, end, err := rangeOrDefault(q, today, today.AddDate(0, 0, 7))
	if err != nil {
		return TeamAvailabilityResponse{}, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	activeIDs, err := s.repo.ActiveTeamEmployeeIDs(ctx, teamID)
	if err != nil {
		return TeamAvailabilityResponse{}, err
	}
	active := make(map[uint]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = struct{}{}
	}

	shifts, err := s.repo.ShiftsInWindow(ctx, winStart, winEnd, &teamID, nil, nil, false)
	if err != nil {
		return TeamAvailabilityResponse{}, err
	}
	leaves, err := s.repo.LeaveInWindow(ctx, winStart, winEnd, []string{leave.StatusApproved}, &teamID, nil)
	if err != nil {
		return TeamAvailabilityResponse{}, err
	}

	onShift := map[uint]struct{}{}
	for _, sh := range shifts {
		if _, ok := active[sh.EmployeeID]; ok {
			onShift[sh.EmployeeID] = struct{}{}
		}
	}
	onLeave := map[uint]struct{}{}
	for _, l := range leaves {
		if _, ok := active[l.EmployeeID]; ok {
			onLeave[l.EmployeeID] = struct{}{}
		}
	}

	unavailable := map[uint]struct{}{}
	for id := range onShift {
		unavailable[id] = struct{}{}
	}
	for id := range onLeave {
		unavailable[id] = struct{}{}
	}

	return TeamAvailabilityResponse{
		TeamID:               teamID,
		TeamName:             teamName,
		TotalActiveEmployees: len(active),
		OnShift:              len(onShift),
		OnLeave:              len(onLeave),
		PotentiallyAvailable: len(active) - len(unavailable),
	}, nil
}

func (s *service) LeaveSummary(ctx context.Context, q LeaveSummaryQuery) ([]LeaveSummaryGroup, error) {
	now := s.now().UTC()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	start, end, err := rangeOrDefault(q.RangeQuery, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	leaves, err := s.repo.LeaveInWindow(ctx, winStart, winEnd, []string{leave.StatusApproved}, q.TeamID, nil)
	if err != nil {
		return nil, err
	}

	groupBy := strings.ToLower(strings.TrimSpace(q.GroupBy))
	if groupBy == "" {
		groupBy = GroupByNone
	}

	type agg struct {
		requests int
		days     float64
	}
	groups := map[string]*agg{}
	for _, l := range leaves {
		cs, ce := timewindow.Clamp(l.StartDate, l.EndDate, winStart, winEnd)
		days := ce.Sub(cs).Hours() / 24
		if days < 0 {
			days = 0
		}

		var key string
		switch groupBy {
		case GroupByLeaveType:
			key = l.LeaveTypeName
		case GroupByTeam:
			key = unassignedTeamLabel
			if l.TeamName != nil {
				key = *l.TeamName
			}
		case GroupByEmployee:
			key = l.EmployeeName()
		default:
			key = "Total"
		}

		g := groups[key]
		if g == nil {
			g = &agg{}
			groups[key] = g
		}
		g.requests++
		g.days += days
	}

	result := make([]LeaveSummaryGroup, 0, len(groups))
	for name, g := range groups {
		result = append(result, LeaveSummaryGroup{
			GroupName:    name,
			RequestCount: g.requests,
			TotalDays:    g.days,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GroupName < result[j].GroupName })
	return result, nil
}

// LeaveTrends buckets each request by its clamped start date. Periods with
// no requests are not zero-filled.
func (s *service) LeaveTrends(ctx context.Context, q LeaveTrendsQuery) ([]LeaveTrendBucket, error) {
	today := timewindow.DayBucket(s.now())
	start, end, err := rangeOrDefault(q.RangeQuery, today.AddDate(0, -12, 0), today)
	if err != nil {
		return nil, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	leaves, err := s.repo.LeaveInWindow(ctx, winStart, winEnd, []string{leave.StatusApproved}, q.TeamID, nil)
	if err != nil {
		return nil, err
	}

	period := strings.ToLower(strings.TrimSpace(q.Period))
	if period == "" {
		period = PeriodMonthly
	}

	buckets := map[string]*LeaveTrendBucket{}
	for _, l := range leaves {
		cs, ce := timewindow.Clamp(l.StartDate, l.EndDate, winStart, winEnd)
		days := ce.Sub(cs).Hours() / 24
		if days < 0 {
			days = 0
		}

		label, bucketStart, bucketEnd := trendBucket(cs, period)
		b := buckets[label]
		if b == nil {
			b = &LeaveTrendBucket{PeriodLabel: label, PeriodStart: bucketStart, PeriodEnd: bucketEnd}
			buckets[label] = b
		}
		b.RequestCount++
		b.TotalDays += days
	}

	result := make([]LeaveTrendBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PeriodStart.Before(result[j].PeriodStart) })
	return result, nil
}

func trendBucket(t time.Time, period string) (string, time.Time, time.Time) {
	t = t.UTC()
	switch period {
	case PeriodYearly:
		start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%04d", t.Year()), start, start.AddDate(1, 0, 0)
	case PeriodQuarterly:
		quarter := (int(t.Month())-1)/3 + 1
		start := time.Date(t.Year(), time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%04d-Q%d", t.Year(), quarter), start, start.AddDate(0, 3, 0)
	default:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), start, start.AddDate(0, 1, 0)
	}
}

func (s *service) PendingLeaveCount(ctx context.Context, teamID *uint) (PendingLeaveCountResponse, error) {
	resp := PendingLeaveCountResponse{TeamID: teamID}
	if teamID != nil {
		name, found, err := s.repo.TeamName(ctx, *teamID)
		if err != nil {
			return PendingLeaveCountResponse{}, err
		}
		if !found {
			return PendingLeaveCountResponse{}, dashboarderrors.ErrTeamNotFound
		}
		resp.TeamName = &name
	}

	count, err := s.repo.PendingLeaveCount(ctx, teamID)
	if err != nil {
		return PendingLeaveCountResponse{}, err
	}
	resp.PendingCount = count
	return resp, nil
}

func (s *service) EmployeeSchedule(ctx context.Context, actorEmployeeID uint, isAdmin bool, employeeID uint, q RangeQuery) ([]ScheduleItem, error) {
	// Non-admins asking for another employee's schedule get not-found, the
	// same as a missing employee.
	if !isAdmin && employeeID != actorEmployeeID {
		return nil, dashboarderrors.ErrEmployeeNotFound
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, dashboarderrors.ErrEmployeeNotFound
	}

	today := timewindow.DayBucket(s.now())
	start, end, err := rangeOrDefault(q, today, today.AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}
	winStart, winEnd := timewindow.QueryWindow(start, end)

	shifts, err := s.repo.ShiftsInWindow(ctx, winStart, winEnd, nil, nil, &employeeID, false)
	if err != nil {
		return nil, err
	}
	leaves, err := s.repo.LeaveInWindow(ctx, winStart, winEnd, []string{leave.StatusApproved, leave.StatusPending}, nil, &employeeID)
	if err != nil {
		return nil, err
	}

	items := make([]ScheduleItem, 0, len(shifts)+len(leaves))
	for _, sh := range shifts {
		description := "Shift"
		if sh.ShiftTypeName != nil {
			description = *sh.ShiftTypeName
		}
		items = append(items, ScheduleItem{
			Type:        "SHIFT",
			ReferenceID: sh.ID,
			Start:       sh.StartTime,
			End:         sh.EndTime,
			Description: description,
			Notes:       sh.Notes,
		})
	}
	for _, l := range leaves {
		items = append(items, ScheduleItem{
			Type:        "LEAVE",
			ReferenceID: l.ID,
			Start:       l.StartDate,
			End:         l.EndDate,
			Description: l.LeaveTypeName,
			Notes:       l.Reason,
			Status:      l.Status,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Start.Before(items[j].Start) })
	return items, nil
}
