package leave

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/leave"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   string
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: map[string]leave.LeaveRequest{}, nextID: "l1"}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = f.nextID
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) ListByWorker(ctx context.Context, workerID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.WorkerID == workerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeLeaveRepo) Resolve(ctx context.Context, id string, status leave.Status, resolvedBy string, resolvedAt time.Time) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrNotFound
	}
	if req.Status != leave.StatusPending {
		return leave.ErrAlreadyResolved
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

type fakeFiles struct{}

func (fakeFiles) SaveLeaveAttachment(ctx context.Context, fileName string, content io.Reader) (string, error) {
	return "http://localhost:8080/uploads/licencias/test.pdf", nil
}

func strPtr(s string) *string { return &s }

func workerUser() *user.User {
	return &user.User{
		ID:       "u1",
		WorkerID: strPtr("w1"),
		Role:     user.RoleWorker,
		Worker:   &worker.Worker{ID: "w1", CompanyID: strPtr("c1")},
	}
}

func hrUser() *user.User {
	return &user.User{ID: "hr1", Role: user.RoleHRAssistant}
}

func pendingRequest(repo *fakeLeaveRepo) string {
	repo.requests["l9"] = leave.LeaveRequest{
		ID:        "l9",
		WorkerID:  "w1",
		Type:      leave.TypeMedical,
		Status:    leave.StatusPending,
		CompanyID: strPtr("c1"),
	}
	return "l9"
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("worker creates pending request with derived days", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		svc := NewLeaveService(repo, &fakeAccess{}, &fakeAuditor{}, fakeFiles{})

		resp, err := svc.Create(ctx, workerUser(), leave.CreateRequest{
			Type:      "licencia_medica",
			StartDate: "2025-07-01",
			EndDate:   "2025-07-05",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Days)
		assert.Equal(t, "pendiente", resp.Status)
	})

	t.Run("create records audit entry against worker company", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		auditor := &fakeAuditor{}
		svc := NewLeaveService(repo, &fakeAccess{}, auditor, fakeFiles{})

		resp, err := svc.Create(ctx, workerUser(), leave.CreateRequest{
			Type:      "licencia_medica",
			StartDate: "2025-07-01",
			EndDate:   "2025-07-02",
		}, nil)
		require.NoError(t, err)
		require.Len(t, auditor.entries, 1)
		assert.Equal(t, "crear_licencia", auditor.entries[0].Action)
		assert.Equal(t, "licencia", auditor.entries[0].Model)
		assert.Equal(t, resp.ID, auditor.entries[0].RecordID)
		require.NotNil(t, auditor.entries[0].CompanyID)
		assert.Equal(t, "c1", *auditor.entries[0].CompanyID)
	})

	t.Run("attachment url is stored", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		svc := NewLeaveService(repo, &fakeAccess{}, &fakeAuditor{}, fakeFiles{})

		resp, err := svc.Create(ctx, workerUser(), leave.CreateRequest{
			Type:      "licencia_medica",
			StartDate: "2025-07-01",
			EndDate:   "2025-07-01",
		}, &leave.Attachment{FileName: "certificado.pdf"})
		require.NoError(t, err)
		require.NotNil(t, resp.AttachmentURL)
		assert.Contains(t, *resp.AttachmentURL, "licencias/")
	})

	t.Run("hr cannot create", func(t *testing.T) {
		svc := NewLeaveService(newFakeLeaveRepo(), &fakeAccess{}, &fakeAuditor{}, fakeFiles{})

		_, err := svc.Create(ctx, hrUser(), leave.CreateRequest{
			Type:      "licencia_medica",
			StartDate: "2025-07-01",
			EndDate:   "2025-07-01",
		}, nil)
		assert.ErrorIs(t, err, leave.ErrOnlyWorkers)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("accept writes terminal state and audit entry", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		id := pendingRequest(repo)
		auditor := &fakeAuditor{}
		svc := NewLeaveService(repo, &fakeAccess{allowed: map[string]bool{"c1": true}}, auditor, fakeFiles{})

		resp, err := svc.Resolve(ctx, hrUser(), id, leave.ResolveRequest{Action: leave.ActionAccept})
		require.NoError(t, err)
		assert.Equal(t, "aceptado", resp.Status)
		require.Len(t, auditor.entries, 1)
		assert.Equal(t, "aceptar_licencia", auditor.entries[0].Action)
		assert.Equal(t, "licencia", auditor.entries[0].Model)
	})

	t.Run("second resolve conflicts", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		id := pendingRequest(repo)
		svc := NewLeaveService(repo, &fakeAccess{allowed: map[string]bool{"c1": true}}, &fakeAuditor{}, fakeFiles{})

		_, err := svc.Resolve(ctx, hrUser(), id, leave.ResolveRequest{Action: leave.ActionAccept})
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, hrUser(), id, leave.ResolveRequest{Action: leave.ActionReject})
		assert.ErrorIs(t, err, leave.ErrAlreadyResolved)
	})

	t.Run("worker role cannot resolve", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		id := pendingRequest(repo)
		svc := NewLeaveService(repo, &fakeAccess{allowed: map[string]bool{"c1": true}}, &fakeAuditor{}, fakeFiles{})

		_, err := svc.Resolve(ctx, workerUser(), id, leave.ResolveRequest{Action: leave.ActionAccept})
		assert.ErrorIs(t, err, leave.ErrHRRoleRequired)
	})

	t.Run("unauthorized company is rejected", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		id := pendingRequest(repo)
		svc := NewLeaveService(repo, &fakeAccess{allowed: map[string]bool{}}, &fakeAuditor{}, fakeFiles{})

		_, err := svc.Resolve(ctx, hrUser(), id, leave.ResolveRequest{Action: leave.ActionAccept})
		assert.ErrorIs(t, err, leave.ErrCompanyNotAuthorized)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		id := pendingRequest(repo)
		svc := NewLeaveService(repo, &fakeAccess{allowed: map[string]bool{"c1": true}}, &fakeAuditor{}, fakeFiles{})

		_, err := svc.Resolve(ctx, hrUser(), id, leave.ResolveRequest{Action: "aprobar"})
		assert.Error(t, err)
	})
}
