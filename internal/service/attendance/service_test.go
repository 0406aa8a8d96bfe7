package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/attendance"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/company"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	failFirst bool
	calls     int
}

func (f *fakeTx) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.failFirst && f.calls == 1 {
		return &pgconn.PgError{Code: "40001"}
	}
	return fn(ctx)
}

type fakeEventRepo struct {
	events []attendance.ClockEvent
}

func (f *fakeEventRepo) Create(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	event.ID = "ev1"
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventRepo) ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	var out []attendance.ClockEvent
	for _, e := range f.events {
		if e.WorkerID == workerID && !e.Timestamp.Before(from) && !e.Timestamp.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByWorker(ctx context.Context, workerID string) ([]attendance.ClockEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.ClockEvent, error) {
	return f.events, nil
}

type fakeWorkerRepo struct {
	worker worker.Worker
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return f.worker, nil
}

func (f *fakeWorkerRepo) GetByIDInCompanies(ctx context.Context, id string, companyIDs []string) (worker.Worker, error) {
	return f.worker, nil
}

func strPtr(s string) *string { return &s }

func newTestService(repo *fakeEventRepo, tx *fakeTx, now time.Time) *AttendanceService {
	w := worker.Worker{
		ID:         "w1",
		RUT:        "12345678-5",
		FirstNames: "Ana",
		LastNames:  "Rojas Soto",
		CompanyID:  strPtr("c1"),
		Shift: &company.Shift{
			Name:      "Diurno",
			EntryTime: "09:00:00",
			ExitTime:  "18:00:00",
		},
	}
	svc := NewAttendanceService(tx, repo, &fakeWorkerRepo{worker: w}, nil, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func testUser() *user.User {
	return &user.User{ID: "u1", WorkerID: strPtr("w1"), Role: user.RoleWorker}
}

func TestMark(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)

	t.Run("first entrance of the day", func(t *testing.T) {
		repo := &fakeEventRepo{}
		svc := newTestService(repo, &fakeTx{}, now)

		event, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "entrada"})
		require.NoError(t, err)
		assert.Equal(t, "entrada", event.Type)
		assert.NotEmpty(t, event.Hash)
		assert.Len(t, repo.events, 1)
	})

	t.Run("double entrance is rejected", func(t *testing.T) {
		repo := &fakeEventRepo{}
		svc := newTestService(repo, &fakeTx{}, now)

		_, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "entrada"})
		require.NoError(t, err)

		svc.now = func() time.Time { return now.Add(time.Minute) }
		_, err = svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "entrada"})
		assert.ErrorIs(t, err, attendance.ErrEntranceAlreadyOpen)
	})

	t.Run("exit without entrance is rejected", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{}, &fakeTx{}, now)

		_, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "salida"})
		assert.ErrorIs(t, err, attendance.ErrNoEntranceToday)
	})

	t.Run("entrance then exit closes the day", func(t *testing.T) {
		repo := &fakeEventRepo{}
		svc := newTestService(repo, &fakeTx{}, now)

		_, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "entrada"})
		require.NoError(t, err)

		svc.now = func() time.Time { return now.Add(8 * time.Hour) }
		_, err = svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "salida"})
		require.NoError(t, err)

		svc.now = func() time.Time { return now.Add(9 * time.Hour) }
		_, err = svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "salida"})
		assert.ErrorIs(t, err, attendance.ErrExitAlreadyRegistered)
	})

	t.Run("yesterday's open entrance does not block today", func(t *testing.T) {
		repo := &fakeEventRepo{events: []attendance.ClockEvent{{
			WorkerID:  "w1",
			Type:      attendance.MarkEntrance,
			Timestamp: now.Add(-24 * time.Hour),
		}}}
		svc := newTestService(repo, &fakeTx{}, now)

		_, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "entrada"})
		assert.NoError(t, err)
	})

	t.Run("serialization failure is retried once", func(t *testing.T) {
		repo := &fakeEventRepo{}
		tx := &fakeTx{failFirst: true}
		svc := newTestService(repo, tx, now)

		_, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "entrada"})
		require.NoError(t, err)
		assert.Equal(t, 2, tx.calls)
	})

	t.Run("unknown mark type", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{}, &fakeTx{}, now)

		_, err := svc.Mark(ctx, testUser(), attendance.MarkRequest{Type: "almuerzo"})
		assert.ErrorIs(t, err, attendance.ErrInvalidMarkType)
	})

	t.Run("user without worker", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{}, &fakeTx{}, now)

		_, err := svc.Mark(ctx, &user.User{ID: "u2", Role: user.RoleWorker}, attendance.MarkRequest{Type: "entrada"})
		assert.ErrorIs(t, err, attendance.ErrNoWorkerAssociated)
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	t.Run("closed day", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{}, &fakeTx{}, now)

		status, err := svc.Status(ctx, testUser())
		require.NoError(t, err)
		assert.False(t, status.EntranceOpen)
		assert.Zero(t, status.RemainingSeconds)
	})

	t.Run("open entrance reports remaining shift seconds", func(t *testing.T) {
		repo := &fakeEventRepo{events: []attendance.ClockEvent{{
			WorkerID:  "w1",
			Type:      attendance.MarkEntrance,
			Timestamp: now.Add(-8 * time.Hour),
		}}}
		svc := newTestService(repo, &fakeTx{}, now)

		status, err := svc.Status(ctx, testUser())
		require.NoError(t, err)
		assert.True(t, status.EntranceOpen)
		// Shift ends 18:00, now is 17:00.
		assert.Equal(t, 3600, status.RemainingSeconds)
	})

	t.Run("remaining seconds never negative", func(t *testing.T) {
		late := time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC)
		repo := &fakeEventRepo{events: []attendance.ClockEvent{{
			WorkerID:  "w1",
			Type:      attendance.MarkEntrance,
			Timestamp: late.Add(-2 * time.Hour),
		}}}
		svc := newTestService(repo, &fakeTx{}, late)

		status, err := svc.Status(ctx, testUser())
		require.NoError(t, err)
		assert.True(t, status.EntranceOpen)
		assert.Zero(t, status.RemainingSeconds)
	})
}
