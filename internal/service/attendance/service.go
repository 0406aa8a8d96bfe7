package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/attendance"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	"github.com/jackc/pgx/v5/pgconn"
)

// txRunner abstracts the serializable-transaction boundary so the marking
// sequence stays testable without a live store.
type txRunner interface {
	Serializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type AttendanceService struct {
	tx      txRunner
	repo    attendance.Repository
	workers worker.Repository
	access  access.Service
	loc     *time.Location
	now     func() time.Time
}

func NewAttendanceService(tx txRunner, repo attendance.Repository, workers worker.Repository, accessService access.Service, loc *time.Location) *AttendanceService {
	return &AttendanceService{
		tx:      tx,
		repo:    repo,
		workers: workers,
		access:  accessService,
		loc:     loc,
		now:     time.Now,
	}
}

// dayBounds returns the local calendar day [00:00:00, 23:59:59.999999]
// containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, t.Location())
	return start, end
}

// Status implements attendance.Service.
func (s *AttendanceService) Status(ctx context.Context, u *user.User) (attendance.StatusResponse, error) {
	if u.WorkerID == nil {
		return attendance.StatusResponse{}, attendance.ErrNoWorkerAssociated
	}

	w, err := s.workers.GetByID(ctx, *u.WorkerID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to load worker: %w", err)
	}

	now := s.now().In(s.loc)
	dayStart, dayEnd := dayBounds(now)

	events, err := s.repo.ListByWorkerBetween(ctx, w.ID, dayStart, dayEnd)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to load today's events: %w", err)
	}

	open := attendance.EntranceOpen(events)

	resp := attendance.StatusResponse{
		EntranceOpen: open,
		ServerTime:   now.Format("15:04:05"),
		Worker: attendance.WorkerSummary{
			ID:         w.ID,
			FirstNames: w.FirstNames,
			LastNames:  w.LastNames,
			Position:   w.Position,
		},
		Company: attendance.CompanySummary{Name: w.CompanyName},
	}

	if w.Shift != nil {
		resp.Shift = attendance.ShiftSummary{
			Name:      &w.Shift.Name,
			EntryTime: &w.Shift.EntryTime,
			ExitTime:  &w.Shift.ExitTime,
		}
		resp.ShiftEndTime = &w.Shift.ExitTime

		if open {
			shiftExit, err := shiftInstant(now, w.Shift.ExitTime, s.loc)
			if err != nil {
				return attendance.StatusResponse{}, fmt.Errorf("invalid shift exit time: %w", err)
			}
			remaining := int(shiftExit.Sub(now).Seconds())
			if remaining < 0 {
				remaining = 0
			}
			resp.RemainingSeconds = remaining
		}
	}

	return resp, nil
}

// Mark implements attendance.Service. The read-then-insert sequence runs
// inside a serializable transaction so two concurrent marks cannot both
// observe a closed day and both insert an entrance; a serialization failure
// is retried once, letting the loser observe the winner's event.
func (s *AttendanceService) Mark(ctx context.Context, u *user.User, req attendance.MarkRequest) (attendance.ClockEventResponse, error) {
	markType := attendance.MarkType(req.Type)
	if !attendance.ValidMarkType(markType) {
		return attendance.ClockEventResponse{}, attendance.ErrInvalidMarkType
	}

	if u.WorkerID == nil {
		return attendance.ClockEventResponse{}, attendance.ErrNoWorkerAssociated
	}

	w, err := s.workers.GetByID(ctx, *u.WorkerID)
	if err != nil {
		return attendance.ClockEventResponse{}, fmt.Errorf("failed to load worker: %w", err)
	}

	var created attendance.ClockEvent
	attempt := func() error {
		return s.tx.Serializable(ctx, func(txCtx context.Context) error {
			now := s.now().In(s.loc)
			dayStart, dayEnd := dayBounds(now)

			events, err := s.repo.ListByWorkerBetween(txCtx, w.ID, dayStart, dayEnd)
			if err != nil {
				return err
			}
			if err := attendance.CheckTransition(events, markType); err != nil {
				return err
			}

			created, err = s.repo.Create(txCtx, attendance.ClockEvent{
				WorkerID:  w.ID,
				Type:      markType,
				Timestamp: now,
				Hash:      attendance.EventHash(now, w.RUT, w.FirstNames, w.LastNames, markType),
			})
			return err
		})
	}

	err = attempt()
	if isSerializationFailure(err) {
		err = attempt()
	}
	if err != nil {
		return attendance.ClockEventResponse{}, err
	}

	created.WorkerFirstNames = &w.FirstNames
	created.WorkerLastNames = &w.LastNames
	created.CompanyID = w.CompanyID
	created.CompanyName = w.CompanyName
	return attendance.ToClockEventResponse(created), nil
}

// List implements attendance.Service.
func (s *AttendanceService) List(ctx context.Context, u *user.User, companyID *string) ([]attendance.ClockEventResponse, error) {
	var events []attendance.ClockEvent
	var err error

	if u.Role == user.RoleWorker {
		if u.WorkerID == nil {
			return nil, attendance.ErrNoWorkerAssociated
		}
		events, err = s.repo.ListByWorker(ctx, *u.WorkerID)
	} else {
		var allowed []string
		allowed, err = s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
		if err != nil {
			return nil, err
		}
		events, err = s.repo.List(ctx, attendance.ListFilter{CompanyIDs: allowed, CompanyID: companyID})
	}
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.ClockEventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, attendance.ToClockEventResponse(e))
	}
	return responses, nil
}

// shiftInstant anchors a "HH:MM:SS" (or "HH:MM") wall-clock time to the date
// of ref in loc.
func shiftInstant(ref time.Time, clock string, loc *time.Location) (time.Time, error) {
	layout := "15:04:05"
	if len(clock) == 5 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
