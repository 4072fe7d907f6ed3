package repository

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales del listado ("" = sin filtro).
type InvoiceFilter struct {
	SiteID string
}

// InvoiceRepository puerto de persistencia de facturas.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	List(ctx context.Context, enterpriseID string, f InvoiceFilter) ([]*entity.Invoice, error)
}
