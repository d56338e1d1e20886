package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// El backend ha servido GET /api/menus con varios sobres a lo largo de sus
// versiones. En vez de olfatear formas dinámicamente, se decodifica contra
// una lista explícita y ordenada de adaptadores; cada uno cubre un sobre
// legado conocido. Una respuesta fuera de la lista es ErrUnexpectedShape.
type menuAdapter struct {
	name   string
	decode func(raw []byte) ([]dto.MenuPayload, bool)
}

var menuAdapters = []menuAdapter{
	{"laravel-paginado", decodeMenusPaginated}, // {success, data: {data: [...]}}
	{"envuelto-success", decodeMenusWrapped},   // {success, data: [...]}
	{"arreglo-plano", decodeMenusBare},         // [...]
	{"clave-data", decodeMenusData},            // {data: [...]}
	{"clave-menus", decodeMenusKeyed},          // {menus: [...]}
}

// Menus lee GET /api/menus tolerando los sobres legados documentados.
func (c *Client) Menus(ctx context.Context) ([]entity.MenuEntry, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/menus", nil, &raw); err != nil {
		return nil, err
	}

	for _, a := range menuAdapters {
		if payloads, ok := a.decode(raw); ok {
			if a.name != menuAdapters[0].name {
				c.log.Debug().Str("adapter", a.name).Msg("menús decodificados con sobre legado")
			}
			return dto.MenusToEntities(payloads), nil
		}
	}

	c.log.Warn().Str("body", truncate(raw)).Msg("sobre de menús no reconocido")
	return nil, fmt.Errorf("%w: GET /api/menus", domain.ErrUnexpectedShape)
}

func decodeMenusPaginated(raw []byte) ([]dto.MenuPayload, bool) {
	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Data []dto.MenuPayload `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || !out.Success || out.Data.Data == nil {
		return nil, false
	}
	return out.Data.Data, true
}

func decodeMenusWrapped(raw []byte) ([]dto.MenuPayload, bool) {
	var out struct {
		Success bool              `json:"success"`
		Data    []dto.MenuPayload `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || !out.Success || out.Data == nil {
		return nil, false
	}
	return out.Data, true
}

func decodeMenusBare(raw []byte) ([]dto.MenuPayload, bool) {
	var out []dto.MenuPayload
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func decodeMenusData(raw []byte) ([]dto.MenuPayload, bool) {
	var out struct {
		Data []dto.MenuPayload `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.Data == nil {
		return nil, false
	}
	return out.Data, true
}

func decodeMenusKeyed(raw []byte) ([]dto.MenuPayload, bool) {
	var out struct {
		Menus []dto.MenuPayload `json:"menus"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.Menus == nil {
		return nil, false
	}
	return out.Menus, true
}
