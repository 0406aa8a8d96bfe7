package worker

import (
	"context"
	"testing"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) GetByIDInCompanies(ctx context.Context, id string, companyIDs []string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok || w.CompanyID == nil {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	for _, c := range companyIDs {
		if c == *w.CompanyID {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

type fakeAccess struct {
	companies []string
}

func (f *fakeAccess) AuthorizedCompanyIDs(ctx context.Context, u *user.User, roleFilter []user.Role) ([]string, error) {
	return f.companies, nil
}

func (f *fakeAccess) HasAccess(ctx context.Context, u *user.User, companyID string, roleFilter []user.Role) (bool, error) {
	for _, c := range f.companies {
		if c == companyID {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func seedRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: map[string]worker.Worker{
		"w1": {ID: "w1", RUT: "12345678-5", FirstNames: "Ana", LastNames: "Rojas", CompanyID: strPtr("c1")},
		"w2": {ID: "w2", RUT: "7654321-6", FirstNames: "Luis", LastNames: "Soto", CompanyID: strPtr("c2")},
	}}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("worker sees its own profile", func(t *testing.T) {
		svc := NewWorkerService(seedRepo(), &fakeAccess{})
		u := &user.User{ID: "u1", WorkerID: strPtr("w1"), Role: user.RoleWorker}

		profile, err := svc.Profile(ctx, u, "w1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", profile.FirstNames)
	})

	t.Run("worker cannot see another worker", func(t *testing.T) {
		svc := NewWorkerService(seedRepo(), &fakeAccess{})
		u := &user.User{ID: "u1", WorkerID: strPtr("w1"), Role: user.RoleWorker}

		_, err := svc.Profile(ctx, u, "w2")
		assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	})

	t.Run("hr sees workers of its companies", func(t *testing.T) {
		svc := NewWorkerService(seedRepo(), &fakeAccess{companies: []string{"c1"}})
		hr := &user.User{ID: "hr1", Role: user.RoleHRAdmin}

		profile, err := svc.Profile(ctx, hr, "w1")
		require.NoError(t, err)
		assert.Equal(t, "w1", profile.ID)
	})

	t.Run("out-of-scope worker looks missing", func(t *testing.T) {
		svc := NewWorkerService(seedRepo(), &fakeAccess{companies: []string{"c1"}})
		hr := &user.User{ID: "hr1", Role: user.RoleHRAdmin}

		_, err := svc.Profile(ctx, hr, "w2")
		assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	})
}
