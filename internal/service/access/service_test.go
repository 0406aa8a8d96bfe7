package access

import (
	"context"
	"testing"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user.Repository
	affiliations map[string][]user.CompanyAffiliation
}

func (f *fakeUserRepo) ListAffiliations(ctx context.Context, userID string) ([]user.CompanyAffiliation, error) {
	return f.affiliations[userID], nil
}

func strPtr(s string) *string { return &s }

func workerUser(companyID *string) *user.User {
	u := &user.User{ID: "u1", Role: user.RoleWorker}
	if companyID != nil {
		u.WorkerID = strPtr("w1")
		u.Worker = &worker.Worker{ID: "w1", CompanyID: companyID}
	}
	return u
}

func TestAuthorizedCompanyIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("worker sees at most its own company", func(t *testing.T) {
		svc := NewScopeService(&fakeUserRepo{})

		ids, err := svc.AuthorizedCompanyIDs(ctx, workerUser(strPtr("c1")), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, ids)
	})

	t.Run("worker without company sees nothing", func(t *testing.T) {
		svc := NewScopeService(&fakeUserRepo{})

		ids, err := svc.AuthorizedCompanyIDs(ctx, workerUser(nil), nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("worker excluded by role filter", func(t *testing.T) {
		svc := NewScopeService(&fakeUserRepo{})

		ids, err := svc.AuthorizedCompanyIDs(ctx, workerUser(strPtr("c1")), user.RolesHR)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("affiliations filtered and deduplicated", func(t *testing.T) {
		repo := &fakeUserRepo{affiliations: map[string][]user.CompanyAffiliation{
			"u2": {
				{CompanyID: "c1", Role: user.RoleHRAdmin},
				{CompanyID: "c2", Role: user.RoleAuditor},
				{CompanyID: "c1", Role: user.RoleHRAdmin},
			},
		}}
		svc := NewScopeService(repo)
		admin := &user.User{ID: "u2", Role: user.RoleHRAdmin}

		ids, err := svc.AuthorizedCompanyIDs(ctx, admin, user.RolesHR)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, ids)
	})

	t.Run("legacy worker company appended for non-worker roles", func(t *testing.T) {
		repo := &fakeUserRepo{affiliations: map[string][]user.CompanyAffiliation{
			"u3": {{CompanyID: "c1", Role: user.RoleHRAssistant}},
		}}
		svc := NewScopeService(repo)
		assistant := &user.User{
			ID:     "u3",
			Role:   user.RoleHRAssistant,
			Worker: &worker.Worker{ID: "w9", CompanyID: strPtr("c9")},
		}

		ids, err := svc.AuthorizedCompanyIDs(ctx, assistant, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"c1", "c9"}, ids)
	})
}

func TestHasAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("empty company id is denied", func(t *testing.T) {
		svc := NewScopeService(&fakeUserRepo{})

		ok, err := svc.HasAccess(ctx, workerUser(strPtr("c1")), "", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("worker matches only its own company", func(t *testing.T) {
		svc := NewScopeService(&fakeUserRepo{})
		u := workerUser(strPtr("c1"))

		ok, err := svc.HasAccess(ctx, u, "c1", nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.HasAccess(ctx, u, "c2", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("affiliation role must satisfy the filter", func(t *testing.T) {
		repo := &fakeUserRepo{affiliations: map[string][]user.CompanyAffiliation{
			"u4": {{CompanyID: "c1", Role: user.RoleAuditor}},
		}}
		svc := NewScopeService(repo)
		auditor := &user.User{ID: "u4", Role: user.RoleAuditor}

		ok, err := svc.HasAccess(ctx, auditor, "c1", nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.HasAccess(ctx, auditor, "c1", user.RolesHR)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("legacy worker fallback only without role filter", func(t *testing.T) {
		svc := NewScopeService(&fakeUserRepo{})
		assistant := &user.User{
			ID:     "u5",
			Role:   user.RoleHRAssistant,
			Worker: &worker.Worker{ID: "w5", CompanyID: strPtr("c5")},
		}

		ok, err := svc.HasAccess(ctx, assistant, "c5", nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.HasAccess(ctx, assistant, "c5", user.RolesHR)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
