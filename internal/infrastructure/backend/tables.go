package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/restaurant-pos/internal/application/dto"
	"github.com/jhoicas/restaurant-pos/internal/domain"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// Tables lee GET /api/tables: {success, data: {all_tables, summary}}.
func (c *Client) Tables(ctx context.Context) ([]entity.Table, entity.TableSummary, error) {
	var out dto.TablesResponse
	if err := c.do(ctx, http.MethodGet, "/api/tables", nil, &out); err != nil {
		return nil, entity.TableSummary{}, err
	}
	if !out.Success {
		return nil, entity.TableSummary{}, fmt.Errorf("%w: tables success=false: %s", domain.ErrUnexpectedShape, out.Message)
	}

	tables := make([]entity.Table, 0, len(out.Data.AllTables))
	for _, p := range out.Data.AllTables {
		tables = append(tables, p.ToEntity())
	}
	return tables, out.Data.Summary.ToEntity(), nil
}
