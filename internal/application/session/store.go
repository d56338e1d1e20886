package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
	"github.com/jhoicas/restaurant-pos/pkg/logger"
)

// Store fuente única de verdad de "quién está logueado" en la estación.
// Se construye e inyecta explícitamente (nada de singletons de paquete) y es
// seguro para uso concurrente: la estación atiende requests en paralelo.
type Store struct {
	api   AuthAPI
	vault Vault
	log   *logger.Logger

	mu    sync.RWMutex
	user  *entity.User
	token string

	// ready se cierra exactamente una vez al terminar la rehidratación,
	// con o sin sesión encontrada. Señal de completitud determinista, sin
	// timeout de respaldo.
	ready     chan struct{}
	readyOnce sync.Once
}

// NewStore construye el store. Llamar Rehydrate antes de servir tráfico.
func NewStore(api AuthAPI, vault Vault, log *logger.Logger) *Store {
	return &Store{
		api:   api,
		vault: vault,
		log:   log.Component("session"),
		ready: make(chan struct{}),
	}
}

// Rehydrate restaura la sesión persistida. Siempre marca la rehidratación
// como completa, incluso si el vault falla o el registro está corrupto; un
// fallo de lectura equivale a "sin sesión".
func (s *Store) Rehydrate(ctx context.Context) {
	defer s.readyOnce.Do(func() { close(s.ready) })

	rec, err := s.vault.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
		return
	}
	if rec == nil || rec.User == nil || rec.Token == "" {
		// Registro ausente o violando el invariante user+token: descartar.
		if rec != nil {
			_ = s.vault.Clear()
		}
		return
	}
	if tokenExpired(rec.Token) {
		s.log.Info().Str("email", rec.User.Email).Msg("token persistido expirado, sesión descartada")
		_ = s.vault.Clear()
		return
	}

	s.mu.Lock()
	s.user = rec.User
	s.token = rec.Token
	s.mu.Unlock()

	s.log.Info().Str("email", rec.User.Email).Msg("sesión restaurada")
}

// Ready devuelve un canal que se cierra cuando la rehidratación terminó.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// IsLoading indica si la rehidratación sigue en curso.
func (s *Store) IsLoading() bool {
	select {
	case <-s.ready:
		return false
	default:
		return true
	}
}

// Login autentica contra el backend y persiste la sesión resultante.
// El error del backend se propaga sin modificar; el caller decide cómo
// mostrarlo (credenciales inválidas, red caída, formato inesperado).
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	if err := s.vault.Save(&Record{User: user, Token: token}); err != nil {
		// La sesión en memoria es válida aunque la persistencia falle;
		// se perderá en el próximo reinicio de la estación.
		s.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}

	s.log.Info().Str("email", user.Email).Str("role", string(user.Role())).Msg("login exitoso")
	return nil
}

// Logout limpia memoria y almacenamiento durable. Idempotente.
func (s *Store) Logout() {
	s.mu.Lock()
	hadUser := s.user != nil
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.vault.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo limpiar la sesión persistida")
	}
	if hadUser {
		s.log.Info().Msg("sesión cerrada")
	}
}

// Invalidate descarta la sesión tras un 401 global del backend.
// Equivale a Logout; el nombre distingue la invalidación forzada.
func (s *Store) Invalidate() {
	s.Logout()
}

// IsAuthenticated indica si hay usuario y token presentes.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// CurrentUser devuelve el usuario actual o nil.
func (s *Store) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token implementa backend.TokenSource: el bearer token vigente, si lo hay.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// HasRole función pura del usuario actual: false sin usuario; true si el rol
// derivado coincide con alguno de los requeridos.
func (s *Store) HasRole(required ...entity.Role) bool {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()

	if user == nil {
		return false
	}
	role := user.Role()
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// tokenExpired inspecciona el claim exp sin verificar firma (el secreto vive
// en el backend). Un token que no es JWT se trata como opaco y no expira del
// lado del cliente; el backend responderá 401 cuando corresponda.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
