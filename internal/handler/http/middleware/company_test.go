package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	user.Repository
	affiliations map[string][]user.CompanyAffiliation
}

func (f *fakeUserRepo) ListAffiliations(ctx context.Context, userID string) ([]user.CompanyAffiliation, error) {
	return f.affiliations[userID], nil
}

const testCompanyID = "0195f8e2-7c3a-7b12-9a4f-3b2c1d0e9f8a"

func requestAs(u *user.User, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(context.WithValue(req.Context(), principalKey{}, u))
}

func TestRequireCompanyAccess(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("worker denied under privileged role filter", func(t *testing.T) {
		workerID := "w1"
		companyID := testCompanyID
		w := &user.User{
			ID:       "u1",
			Role:     user.RoleWorker,
			WorkerID: &workerID,
			Worker:   &worker.Worker{ID: "w1", CompanyID: &companyID},
		}
		svc := access.NewScopeService(&fakeUserRepo{})
		handler := RequireCompanyAccess(svc, user.RolesWithCompanies)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestAs(w, "/shifts?empresa_id="+testCompanyID))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("privileged affiliation passes", func(t *testing.T) {
		repo := &fakeUserRepo{affiliations: map[string][]user.CompanyAffiliation{
			"u2": {{CompanyID: testCompanyID, Role: user.RoleHRAssistant}},
		}}
		hr := &user.User{ID: "u2", Role: user.RoleHRAssistant}
		handler := RequireCompanyAccess(access.NewScopeService(repo), user.RolesWithCompanies)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestAs(hr, "/shifts?empresa_id="+testCompanyID))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed company id denied", func(t *testing.T) {
		hr := &user.User{ID: "u3", Role: user.RoleHRAdmin}
		handler := RequireCompanyAccess(access.NewScopeService(&fakeUserRepo{}), user.RolesWithCompanies)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestAs(hr, "/shifts?empresa_id=not-a-uuid"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
