package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/memory"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }

func (plainHasher) Compare(hash, plain string) bool { return hash == "h:"+plain }

func newService(t *testing.T) (*Service, *auth.Issuer) {
	t.Helper()
	issuer, err := auth.NewIssuer("admin-secret")
	require.NoError(t, err)
	return NewService(memory.NewRepository(), plainHasher{}, issuer), issuer
}

func bootstrap(t *testing.T, svc *Service) *domain.Admin {
	t.Helper()
	created, err := svc.EnsureBootstrap(context.Background(), "root@shelter.org", "rootpass")
	require.NoError(t, err)
	require.True(t, created)
	session, err := svc.Login(context.Background(), "root@shelter.org", "rootpass")
	require.NoError(t, err)
	return session.Admin
}

func TestEnsureBootstrapRunsOnce(t *testing.T) {
	svc, _ := newService(t)
	root := bootstrap(t, svc)
	assert.Equal(t, domain.RoleSuperAdmin, root.Role)

	created, err := svc.EnsureBootstrap(context.Background(), "other@shelter.org", "otherpass")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = svc.EnsureBootstrap(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc, issuer := newService(t)
	bootstrap(t, svc)
	ctx := context.Background()

	session, err := svc.Login(ctx, "ROOT@shelter.org", "rootpass")
	require.NoError(t, err)
	claims, err := issuer.Parse(session.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, session.Admin.ID, claims.ID)

	_, err = svc.Login(ctx, "root@shelter.org", "wrong")
	require.ErrorIs(t, err, errkind.ErrAuth)
	_, err = svc.Login(ctx, "nobody@shelter.org", "rootpass")
	require.ErrorIs(t, err, errkind.ErrAuth)
	_, err = svc.Login(ctx, "", "rootpass")
	require.ErrorIs(t, err, errkind.ErrValidation)
}

func TestCreateRequiresSuperAdmin(t *testing.T) {
	svc, _ := newService(t)
	root := bootstrap(t, svc)
	ctx := context.Background()

	staff, err := svc.Create(ctx, root, ports.CreateInput{Email: "staff@shelter.org", Password: "staffpass", FullName: "Sam", Role: "staff"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, staff.Role)
	assert.True(t, staff.IsActive)

	_, err = svc.Create(ctx, staff, ports.CreateInput{Email: "x@shelter.org", Password: "xxxxxxx", FullName: "X"})
	require.ErrorIs(t, err, errkind.ErrForbidden)

	_, err = svc.Create(ctx, root, ports.CreateInput{Email: "staff@shelter.org", Password: "staffpass", FullName: "Dup"})
	require.ErrorIs(t, err, errkind.ErrConflict)

	_, err = svc.Create(ctx, root, ports.CreateInput{Email: "y@shelter.org", Password: "short", FullName: "Y"})
	require.ErrorIs(t, err, errkind.ErrValidation)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestToggleActiveAndAuthorize(t *testing.T) {
	svc, _ := newService(t)
	root := bootstrap(t, svc)
	ctx := context.Background()

	staff, err := svc.Create(ctx, root, ports.CreateInput{Email: "staff@shelter.org", Password: "staffpass", FullName: "Sam"})
	require.NoError(t, err)

	_, err = svc.ToggleActive(ctx, root, root.ID)
	require.ErrorIs(t, err, errkind.ErrInvalidTransition)

	_, err = svc.ToggleActive(ctx, staff, root.ID)
	require.ErrorIs(t, err, errkind.ErrForbidden)

	toggled, err := svc.ToggleActive(ctx, root, staff.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	_, err = svc.Login(ctx, "staff@shelter.org", "staffpass")
	require.ErrorIs(t, err, ports.ErrInactive)

	_, err = svc.Authorize(ctx, &auth.Claims{ID: staff.ID, IsAdmin: true})
	require.ErrorIs(t, err, errkind.ErrForbidden)

	_, err = svc.Authorize(ctx, &auth.Claims{ID: root.ID})
	require.ErrorIs(t, err, ports.ErrNotAdmin)

	_, err = svc.Authorize(ctx, &auth.Claims{ID: 999, IsAdmin: true})
	require.ErrorIs(t, err, ports.ErrNotAdmin)

	got, err := svc.Authorize(ctx, &auth.Claims{ID: root.ID, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, root.Email, got.Email)

	_, err = svc.ToggleActive(ctx, root, 999)
	require.ErrorIs(t, err, errkind.ErrNotFound)
}
