package usecase

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// StatementPDFData todo lo necesario para imprimir una situation.
// Subcontractor es nil cuando la situation no tiene sous-traitant asignado.
type StatementPDFData struct {
	Enterprise    *entity.Enterprise
	Site          *entity.Site
	Subcontractor *entity.Subcontractor
	Statement     *entity.Statement
}

// StatementPDFGenerator genera la representación PDF de una situation.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, data StatementPDFData) ([]byte, error)
}
