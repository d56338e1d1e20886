// Package backend implementa el cliente REST contra el backend del
// restaurante. Es la única frontera HTTP de salida: cada endpoint tiene un
// paso de decodificación explícito contra su esquema documentado y los
// errores se mapean a los centinelas de dominio en un solo lugar.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/pkg/logger"
)

// maxBodyBytes tope de lectura de respuestas del backend.
const maxBodyBytes = 1 << 20

// TokenSource provee el bearer token vigente. Lo implementa session.Store,
// así cada login/logout se refleja de inmediato en las cabeceras siguientes.
type TokenSource interface {
	Token() (string, bool)
}

// Client cliente REST del backend del restaurante.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *logger.Logger
}

// NewClient construye el cliente. baseURL sin barra final; timeout aplica a
// cada llamada completa (no hay reintentos automáticos).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
	}
}

// SetTokenSource registra la fuente del bearer token. Se cablea después de
// construir el session store porque store y cliente se referencian
// mutuamente (el store llama al login del cliente; el cliente firma con el
// token del store).
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// OnUnauthorized registra el hook de invalidación global de sesión: se invoca
// una vez por cada 401 recibido en una llamada autenticada. No aplica al
// login, donde el 401 significa credenciales inválidas y no sesión vencida.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do ejecuta una llamada autenticada y decodifica la respuesta en out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, body, out, true)
}

// doPublic ejecuta una llamada sin bearer token ni hook de 401 (login).
func (c *Client) doPublic(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, body, out, false)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated && c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta de %s %s: %v", domain.ErrBackendUnreachable, method, path, err)
	}

	if resp.StatusCode >= 400 {
		return c.mapStatusError(method, path, resp.StatusCode, rawBody, authenticated)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		c.log.Warn().Str("path", path).Str("body", truncate(rawBody)).Msg("respuesta no decodificable")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUnexpectedShape, method, path, err)
	}
	return nil
}

// mapStatusError traduce un estado >= 400 al centinela de dominio que
// corresponde, conservando el mensaje del backend para mostrarlo al usuario.
func (c *Client) mapStatusError(method, path string, status int, rawBody []byte, authenticated bool) error {
	msg := backendMessage(rawBody)

	switch status {
	case http.StatusUnauthorized:
		if authenticated && c.onUnauthorized != nil {
			c.log.Info().Str("path", path).Msg("401 del backend, invalidando sesión")
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: %s", domain.ErrUnauthenticated, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	default:
		return fmt.Errorf("backend: %s %s HTTP %d: %s", method, path, status, msg)
	}
}

// backendMessage extrae el mensaje del cuerpo de error {message, errors?}.
func backendMessage(rawBody []byte) string {
	var er dto.ErrorResponse
	if err := json.Unmarshal(rawBody, &er); err == nil && er.Message != "" {
		if len(er.Errors) == 0 {
			return er.Message
		}
		var details []string
		for _, msgs := range er.Errors {
			details = append(details, msgs...)
		}
		return er.Message + ": " + strings.Join(details, "; ")
	}
	return strings.TrimSpace(truncate(rawBody))
}

func truncate(b []byte) string {
	const n = 256
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
