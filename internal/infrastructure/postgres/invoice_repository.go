package postgres

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo factures sobre PostgreSQL.
type InvoiceRepo struct {
	t tenantTable[entity.Invoice]
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{t: newTenantTable[entity.Invoice](q, "invoices",
		"id", "enterprise_id", "site_id", "subcontractor_id", "number", "type", "amount_excl_tax",
		"vat_rate", "invoice_date", "due_date", "status", "created_at", "updated_at",
	)}
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return r.t.insert(ctx,
		inv.ID, inv.EnterpriseID, inv.SiteID, inv.SubcontractorID, inv.Number, inv.Type, inv.AmountExclTax,
		inv.VATRate, inv.InvoiceDate, inv.DueDate, inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
}

func (r *InvoiceRepo) List(ctx context.Context, enterpriseID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	return r.t.list(ctx, enterpriseID, map[string]string{"site_id": f.SiteID})
}
