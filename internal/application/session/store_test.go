package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-pos/internal/application/session"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
	"github.com/jhoicas/restaurant-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthAPI implementa session.AuthAPI.
type fakeAuthAPI struct {
	user  *entity.User
	token string
	err   error
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

// memVault implementa session.Vault en memoria.
type memVault struct {
	rec     *session.Record
	loadErr error
	saves   int
	clears  int
}

func (v *memVault) Load() (*session.Record, error) {
	if v.loadErr != nil {
		return nil, v.loadErr
	}
	return v.rec, nil
}

func (v *memVault) Save(rec *session.Record) error {
	v.rec = rec
	v.saves++
	return nil
}

func (v *memVault) Clear() error {
	v.rec = nil
	v.clears++
	return nil
}

func pelayan() *entity.User {
	return &entity.User{ID: 1, RoleID: 1, Name: "Sarah Johnson", Email: "a@b.com"}
}

func kasir() *entity.User {
	return &entity.User{ID: 2, RoleID: 2, Name: "Andi", Email: "kasir@b.com"}
}

func newStore(api session.AuthAPI, vault session.Vault) *session.Store {
	return session.NewStore(api, vault, logger.Nop())
}

// expiredJWT token HS256 firmado con cualquier secreto y exp en el pasado;
// el store solo inspecciona claims, no verifica firma.
func expiredJWT(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginExitosoGuardaSesionYPersiste(t *testing.T) {
	vault := &memVault{}
	store := newStore(&fakeAuthAPI{user: pelayan(), token: "abc"}, vault)

	err := store.Login(context.Background(), "a@b.com", "secret")

	require.NoError(t, err)
	assert.True(t, store.IsAuthenticated())

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	require.NotNil(t, vault.rec, "la sesión se persistió en el vault")
	assert.Equal(t, "abc", vault.rec.Token)
	assert.Equal(t, "a@b.com", vault.rec.User.Email)
}

func TestLoginFallidoDejaElStoreSinSesion(t *testing.T) {
	api := &fakeAuthAPI{err: fmt.Errorf("%w: Invalid credentials", domain.ErrUnauthenticated)}
	vault := &memVault{}
	store := newStore(api, vault)

	err := store.Login(context.Background(), "a@b.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Contains(t, err.Error(), "Invalid credentials", "el mensaje del backend llega sin modificar")
	assert.False(t, store.IsAuthenticated())
	assert.Zero(t, vault.saves)
}

func TestLogoutEsIdempotente(t *testing.T) {
	vault := &memVault{}
	store := newStore(&fakeAuthAPI{user: pelayan(), token: "abc"}, vault)
	require.NoError(t, store.Login(context.Background(), "a@b.com", "secret"))

	store.Logout()
	store.Logout()

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, vault.rec)
	_, ok := store.Token()
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// HasRole
// ──────────────────────────────────────────────────────────────────────────────

func TestHasRoleSinUsuarioSiempreFalse(t *testing.T) {
	store := newStore(&fakeAuthAPI{}, &memVault{})

	assert.False(t, store.HasRole(entity.RolePelayan))
	assert.False(t, store.HasRole(entity.RoleKasir))
	assert.False(t, store.HasRole(entity.RolePelayan, entity.RoleKasir))
}

func TestHasRoleEsPuraYDerivaDeRoleID(t *testing.T) {
	store := newStore(&fakeAuthAPI{user: pelayan(), token: "abc"}, &memVault{})
	require.NoError(t, store.Login(context.Background(), "a@b.com", "secret"))

	// role_id 1 → Pelayan; repetir la consulta da siempre lo mismo.
	for i := 0; i < 3; i++ {
		assert.True(t, store.HasRole(entity.RolePelayan))
		assert.False(t, store.HasRole(entity.RoleKasir))
		assert.True(t, store.HasRole(entity.RoleKasir, entity.RolePelayan))
	}
}

func TestHasRoleCualquierRoleIDDistintoDeUnoEsKasir(t *testing.T) {
	store := newStore(&fakeAuthAPI{user: kasir(), token: "abc"}, &memVault{})
	require.NoError(t, store.Login(context.Background(), "kasir@b.com", "secret"))

	assert.True(t, store.HasRole(entity.RoleKasir))
	assert.False(t, store.HasRole(entity.RolePelayan))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rehidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestRehydrateRestauraSesionPersistida(t *testing.T) {
	vault := &memVault{rec: &session.Record{User: pelayan(), Token: "abc"}}
	store := newStore(&fakeAuthAPI{}, vault)

	assert.True(t, store.IsLoading())
	store.Rehydrate(context.Background())

	assert.False(t, store.IsLoading())
	assert.True(t, store.IsAuthenticated())
	token, _ := store.Token()
	assert.Equal(t, "abc", token)
}

func TestRehydrateSinRegistroTerminaIgual(t *testing.T) {
	store := newStore(&fakeAuthAPI{}, &memVault{})

	store.Rehydrate(context.Background())

	// La señal de completitud llega siempre, con o sin sesión.
	select {
	case <-store.Ready():
	default:
		t.Fatal("Ready() debe estar cerrado tras Rehydrate")
	}
	assert.False(t, store.IsAuthenticated())
}

func TestRehydrateConVaultRotoTerminaSinSesion(t *testing.T) {
	vault := &memVault{loadErr: errors.New("disco roto")}
	store := newStore(&fakeAuthAPI{}, vault)

	store.Rehydrate(context.Background())

	assert.False(t, store.IsLoading())
	assert.False(t, store.IsAuthenticated())
}

func TestRehydrateDescartaTokenJWTExpirado(t *testing.T) {
	vault := &memVault{rec: &session.Record{User: pelayan(), Token: expiredJWT(t)}}
	store := newStore(&fakeAuthAPI{}, vault)

	store.Rehydrate(context.Background())

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, 1, vault.clears, "el registro expirado se limpia del vault")
}

func TestRehydrateConservaTokenOpaco(t *testing.T) {
	// Un token que no es JWT no expira del lado del cliente.
	vault := &memVault{rec: &session.Record{User: pelayan(), Token: "opaque-sanctum-token"}}
	store := newStore(&fakeAuthAPI{}, vault)

	store.Rehydrate(context.Background())

	assert.True(t, store.IsAuthenticated())
}

func TestRehydrateDescartaRegistroSinToken(t *testing.T) {
	// Invariante user+token: un registro a medias se descarta.
	vault := &memVault{rec: &session.Record{User: pelayan()}}
	store := newStore(&fakeAuthAPI{}, vault)

	store.Rehydrate(context.Background())

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, 1, vault.clears)
}

func TestInvalidateEquivaleALogout(t *testing.T) {
	vault := &memVault{}
	store := newStore(&fakeAuthAPI{user: pelayan(), token: "abc"}, vault)
	require.NoError(t, store.Login(context.Background(), "a@b.com", "secret"))

	store.Invalidate()

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, vault.rec)
}
