package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/vacation"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVacationRepo struct {
	requests map[string]vacation.VacationRequest
}

func newFakeVacationRepo() *fakeVacationRepo {
	return &fakeVacationRepo{requests: map[string]vacation.VacationRequest{}}
}

func (f *fakeVacationRepo) Create(ctx context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	req.ID = "v1"
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeVacationRepo) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return vacation.VacationRequest{}, vacation.ErrNotFound
	}
	return req, nil
}

func (f *fakeVacationRepo) ListByWorker(ctx context.Context, workerID string) ([]vacation.VacationRequest, error) {
	var out []vacation.VacationRequest
	for _, r := range f.requests {
		if r.WorkerID == workerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) List(ctx context.Context, filter vacation.ListFilter) ([]vacation.VacationRequest, error) {
	var out []vacation.VacationRequest
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeVacationRepo) Resolve(ctx context.Context, id string, status vacation.Status, resolvedBy string, resolvedAt time.Time) error {
	req, ok := f.requests[id]
	if !ok {
		return vacation.ErrNotFound
	}
	if req.Status != vacation.StatusPending {
		return vacation.ErrAlreadyResolved
	}
	req.Status = status
	req.ResolvedBy = &resolvedBy
	req.ResolvedAt = &resolvedAt
	f.requests[id] = req
	return nil
}

type fakeAccess struct {
	allowed map[string]bool
}

func (f *fakeAccess) AuthorizedCompanyIDs(ctx context.Context, u *user.User, roleFilter []user.Role) ([]string, error) {
	var ids []string
	for id, ok := range f.allowed {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeAccess) HasAccess(ctx context.Context, u *user.User, companyID string, roleFilter []user.Role) (bool, error) {
	return f.allowed[companyID], nil
}

type fakeAuditor struct {
	entries []audit.Entry
}

func (f *fakeAuditor) Record(ctx context.Context, entry audit.Entry) {
	f.entries = append(f.entries, entry)
}

func strPtr(s string) *string { return &s }

func TestVacationFlow(t *testing.T) {
	ctx := context.Background()
	w := &user.User{
		ID:       "u1",
		WorkerID: strPtr("w1"),
		Role:     user.RoleWorker,
		Worker:   &worker.Worker{ID: "w1", CompanyID: strPtr("c1")},
	}
	hr := &user.User{ID: "hr1", Role: user.RoleHRAdmin}

	t.Run("create derives inclusive day count", func(t *testing.T) {
		svc := NewVacationService(newFakeVacationRepo(), &fakeAccess{}, &fakeAuditor{})

		resp, err := svc.Create(ctx, w, vacation.CreateRequest{StartDate: "2025-02-10", EndDate: "2025-02-21"})
		require.NoError(t, err)
		assert.Equal(t, 12, resp.Days)
		assert.Equal(t, "pendiente", resp.Status)
	})

	t.Run("create records audit entry against worker company", func(t *testing.T) {
		auditor := &fakeAuditor{}
		svc := NewVacationService(newFakeVacationRepo(), &fakeAccess{}, auditor)

		resp, err := svc.Create(ctx, w, vacation.CreateRequest{StartDate: "2025-02-10", EndDate: "2025-02-11"})
		require.NoError(t, err)
		require.Len(t, auditor.entries, 1)
		assert.Equal(t, "crear_vacaciones", auditor.entries[0].Action)
		assert.Equal(t, "vacaciones", auditor.entries[0].Model)
		assert.Equal(t, resp.ID, auditor.entries[0].RecordID)
		require.NotNil(t, auditor.entries[0].CompanyID)
		assert.Equal(t, "c1", *auditor.entries[0].CompanyID)
	})

	t.Run("reject is terminal and audited", func(t *testing.T) {
		repo := newFakeVacationRepo()
		repo.requests["v9"] = vacation.VacationRequest{
			ID:        "v9",
			WorkerID:  "w1",
			Status:    vacation.StatusPending,
			CompanyID: strPtr("c1"),
		}
		auditor := &fakeAuditor{}
		svc := NewVacationService(repo, &fakeAccess{allowed: map[string]bool{"c1": true}}, auditor)

		resp, err := svc.Resolve(ctx, hr, "v9", vacation.ResolveRequest{Action: vacation.ActionReject})
		require.NoError(t, err)
		assert.Equal(t, "rechazado", resp.Status)

		require.Len(t, auditor.entries, 1)
		assert.Equal(t, "rechazar_vacaciones", auditor.entries[0].Action)

		_, err = svc.Resolve(ctx, hr, "v9", vacation.ResolveRequest{Action: vacation.ActionAccept})
		assert.ErrorIs(t, err, vacation.ErrAlreadyResolved)
	})

	t.Run("hr cannot create", func(t *testing.T) {
		svc := NewVacationService(newFakeVacationRepo(), &fakeAccess{}, &fakeAuditor{})

		_, err := svc.Create(ctx, hr, vacation.CreateRequest{StartDate: "2025-02-10", EndDate: "2025-02-11"})
		assert.ErrorIs(t, err, vacation.ErrOnlyWorkers)
	})
}
