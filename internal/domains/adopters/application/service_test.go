package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adoptermemory "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/memory"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

type fixedCounts map[int64]int

func (f fixedCounts) CountByAdopter(context.Context) (map[int64]int, error) { return f, nil }

type callRecorder struct{ calls []string }

func (c *callRecorder) ReleaseForAdopter(_ context.Context, _ int64) error {
	c.calls = append(c.calls, "release")
	return nil
}

func (c *callRecorder) DeleteByAdopter(_ context.Context, _ int64) error {
	c.calls = append(c.calls, "favorites")
	return nil
}

// plainHasher stands in for bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hash:" + p, nil }
func (plainHasher) Compare(h, p string) bool      { return h == "hash:"+p }

func newService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	issuer, err := auth.NewIssuer("test-secret")
	require.NoError(t, err)
	return NewService(adoptermemory.NewRepository(), plainHasher{}, issuer, opts...)
}

func register(t *testing.T, svc *Service, email string) *ports.Session {
	t.Helper()
	session, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     email,
		Password:  "secret1",
		FullName:  "Jane Doe",
		ContactNo: "555-0100",
	})
	require.NoError(t, err)
	return session
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService(t)

	session := register(t, svc, "Jane@Example.com")
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.TokenID)
	assert.Equal(t, "jane@example.com", session.Adopter.Email)
	assert.Equal(t, domain.HousingHouse, session.Adopter.HousingType)
	assert.Equal(t, domain.ExperienceFirstTime, session.Adopter.ExperienceLevel)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@example.com", Password: "secret1", FullName: "Other", ContactNo: "1",
	})
	require.ErrorIs(t, err, errkind.ErrConflict)

	loggedIn, err := svc.Login(context.Background(), "JANE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session.Adopter.ID, loggedIn.Adopter.ID)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	require.ErrorIs(t, err, errkind.ErrAuth)
	_, err = svc.Login(context.Background(), "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(t)
	tests := []struct {
		name  string
		input ports.RegisterInput
	}{
		{"short password", ports.RegisterInput{Email: "a@example.com", Password: "123", FullName: "A", ContactNo: "1"}},
		{"missing contact", ports.RegisterInput{Email: "a@example.com", Password: "123456", FullName: "A"}},
		{"bad housing", ports.RegisterInput{Email: "a@example.com", Password: "123456", FullName: "A", ContactNo: "1", HousingType: "Boat"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			require.ErrorIs(t, err, errkind.ErrValidation)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newService(t)
	session := register(t, svc, "jane@example.com")
	register(t, svc, "taken@example.com")
	id := session.Adopter.ID

	address := "1 Main St"
	housing := "Apartment"
	updated, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ID: id, Address: &address, HousingType: &housing})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", updated.Address)
	assert.Equal(t, domain.HousingApartment, updated.HousingType)

	taken := "taken@example.com"
	_, err = svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ID: id, Email: &taken})
	require.ErrorIs(t, err, errkind.ErrConflict)

	_, err = svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ID: id, NewPassword: "newsecret"})
	require.ErrorIs(t, err, ErrCurrentPasswordRequired)

	_, err = svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ID: id, CurrentPassword: "nope", NewPassword: "newsecret"})
	require.ErrorIs(t, err, ErrCurrentPasswordMismatch)

	_, err = svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{ID: id, CurrentPassword: "secret1", NewPassword: "newsecret"})
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "jane@example.com", "newsecret")
	require.NoError(t, err)
}

func TestListIncludesCounts(t *testing.T) {
	svc := newService(t)
	first := register(t, svc, "first@example.com")
	second := register(t, svc, "second@example.com")
	svc = NewService(svc.repo, plainHasher{}, svc.tokens, WithActivityCounters(
		fixedCounts{first.Adopter.ID: 2},
		fixedCounts{second.Adopter.ID: 3},
	))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	byID := map[int64]ports.Summary{}
	for _, s := range list {
		byID[s.Adopter.ID] = s
	}
	assert.Equal(t, 2, byID[first.Adopter.ID].AdoptionCount)
	assert.Equal(t, 3, byID[second.Adopter.ID].FavoritesCount)
}

func TestDeleteReleasesBeforeCascade(t *testing.T) {
	rec := &callRecorder{}
	svc := newService(t, WithReleaser(rec), WithDependents(rec))
	session := register(t, svc, "jane@example.com")

	require.NoError(t, svc.Delete(context.Background(), session.Adopter.ID))
	assert.Equal(t, []string{"release", "favorites"}, rec.calls)

	_, err := svc.Get(context.Background(), session.Adopter.ID)
	require.ErrorIs(t, err, errkind.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), session.Adopter.ID), errkind.ErrNotFound)
}
