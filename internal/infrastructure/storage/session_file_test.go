package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-pos/internal/application/session"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
	"github.com/jhoicas/restaurant-pos/internal/infrastructure/storage"
)

func vaultAt(t *testing.T) (*storage.FileVault, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return storage.NewFileVault(path), path
}

func TestLoadSinArchivoDevuelveNil(t *testing.T) {
	v, _ := vaultAt(t)

	rec, err := v.Load()

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	v, path := vaultAt(t)
	user := &entity.User{ID: 1, RoleID: 1, Name: "Sarah Johnson", Email: "a@b.com"}

	require.NoError(t, v.Save(&session.Record{User: user, Token: "abc"}))

	rec, err := v.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "abc", rec.Token)
	assert.Equal(t, 1, rec.User.ID)
	assert.Equal(t, "a@b.com", rec.User.Email)

	// El archivo contiene el token del operador: solo el dueño lo lee.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveReemplazaElRegistroAnterior(t *testing.T) {
	v, _ := vaultAt(t)
	require.NoError(t, v.Save(&session.Record{
		User:  &entity.User{ID: 1, RoleID: 1, Email: "a@b.com"},
		Token: "viejo",
	}))
	require.NoError(t, v.Save(&session.Record{
		User:  &entity.User{ID: 2, RoleID: 2, Email: "kasir@b.com"},
		Token: "nuevo",
	}))

	rec, err := v.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "nuevo", rec.Token)
	assert.Equal(t, 2, rec.User.ID)
}

func TestClearEsIdempotente(t *testing.T) {
	v, _ := vaultAt(t)
	require.NoError(t, v.Save(&session.Record{
		User:  &entity.User{ID: 1, RoleID: 1, Email: "a@b.com"},
		Token: "abc",
	}))

	require.NoError(t, v.Clear())
	require.NoError(t, v.Clear(), "limpiar sin archivo no es error")

	rec, err := v.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLoadConArchivoCorruptoEsError(t *testing.T) {
	v, path := vaultAt(t)
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, err := v.Load()

	assert.Error(t, err)
}
