// Package storage implementa la persistencia durable de la estación.
// Guarda exactamente un registro: la sesión serializada, en un archivo
// único de ruta fija.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/application/session"
)

// sessionRecord forma serializada del registro de sesión.
type sessionRecord struct {
	User  dto.UserPayload `json:"user"`
	Token string          `json:"token"`
}

// FileVault session.Vault sobre un archivo JSON. La escritura es atómica
// (archivo temporal + rename) y con permisos 0600: el archivo contiene el
// bearer token del operador.
type FileVault struct {
	path string
	mu   sync.Mutex
}

// Verificación en tiempo de compilación del contrato.
var _ session.Vault = (*FileVault)(nil)

// NewFileVault construye el vault sobre la ruta dada.
func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

// Load lee el registro persistido. Archivo ausente no es error: (nil, nil).
// Un archivo corrupto sí es error; el caller lo trata como "sin sesión".
func (v *FileVault) Load() (*session.Record, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	raw, err := os.ReadFile(v.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("vault: leer %s: %w", v.path, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("vault: registro corrupto en %s: %w", v.path, err)
	}
	if rec.Token == "" || rec.User.ID == 0 {
		return nil, nil
	}
	return &session.Record{User: rec.User.ToEntity(), Token: rec.Token}, nil
}

// Save persiste el registro, reemplazando el anterior.
func (v *FileVault) Save(rec *session.Record) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	raw, err := json.MarshalIndent(sessionRecord{
		User:  dto.FromUser(rec.User),
		Token: rec.Token,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("vault: serializar sesión: %w", err)
	}

	dir := filepath.Dir(v.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("vault: crear temporal en %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("vault: permisos de %s: %w", tmpName, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("vault: escribir %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("vault: cerrar %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, v.path); err != nil {
		return fmt.Errorf("vault: reemplazar %s: %w", v.path, err)
	}
	return nil
}

// Clear elimina el registro. Idempotente: sin archivo no hay error.
func (v *FileVault) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	err := os.Remove(v.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("vault: eliminar %s: %w", v.path, err)
	}
	return nil
}
