// Package pdf genera la representación imprimible de una situation de travaux.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + SIRET     │  Situation N° + Mois          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CHANTIER: nombre / cliente / dirección / montant marché    │
//	│  SOUS-TRAITANT: nombre + SIRET + contacto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Montant HT / TVA / Montant TTC                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: estado + código QR con el id de la situation       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa usecase.StatementPDFGenerator con Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, data usecase.StatementPDFData) ([]byte, error) {
	if data.Statement == nil || data.Site == nil || data.Enterprise == nil {
		return nil, fmt.Errorf("pdf: datos incompletos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Situation de travaux n°%d", data.Statement.Number), true).
		WithAuthor(data.Enterprise.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Enterprise, data.Statement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(siteRow(data.Site))
	m.AddRows(subcontractorRow(data.Subcontractor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Statement))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data.Statement))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(ent *entity.Enterprise, st *entity.Statement) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(ent.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SIRET : "+nonEmpty(ent.RegistrationNumber, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SITUATION DE TRAVAUX", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", st.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Mois : "+st.Month, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func siteRow(site *entity.Site) core.Row {
	amount := "—"
	if site.ContractAmount != nil {
		amount = formatEuro(*site.ContractAmount)
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CHANTIER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(site.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Client : %s   |   Adresse : %s",
				nonEmptyPtr(site.Client, "—"),
				nonEmptyPtr(site.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(fmt.Sprintf("Montant du marché : %s   |   Avancement : %d %%", amount, site.Progress),
				props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

func subcontractorRow(sub *entity.Subcontractor) core.Row {
	if sub == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("SOUS-TRAITANT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Non affecté", props.Text{Size: 8, Top: 6, Color: colorGray}),
		))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SOUS-TRAITANT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sub.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("SIRET : %s   |   Email : %s   |   Tél : %s",
				nonEmptyPtr(sub.Siret, "—"),
				nonEmptyPtr(sub.Email, "—"),
				nonEmptyPtr(sub.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// totalsRow: HT, TVA y TTC alineados a la derecha.
func totalsRow(st *entity.Statement) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Montant HT :", 2),
			label(fmt.Sprintf("TVA (%s %%) :", st.VATRate.String()), 9),
			grand("Montant TTC :", 16, 2),
		),
		col.New(4).Add(
			value(formatEuro(st.AmountExclTax), 2),
			value(formatEuro(st.VATAmount()), 9),
			grand(formatEuro(st.AmountInclTax()), 16, 1),
		),
	)
}

func footerRow(st *entity.Statement) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(st.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Statut : "+statusLabel(st.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: colorPrimary,
			}),
			text.New("Référence : "+st.ID, props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

func statusLabel(status string) string {
	switch status {
	case entity.StatementStatusPending:
		return "En attente de validation"
	case entity.StatementStatusValidated:
		return "Validée"
	default:
		return status
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonEmptyPtr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return nonEmpty(*s, fallback)
}

// formatEuro formatea al estilo francés: "1 250 000,00 €".
func formatEuro(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart, ' ') + "," + frac + " €"
}

// groupThousands inserta sep cada tres dígitos. Ej: "1000000" → "1 000 000"
func groupThousands(s string, sep byte) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, c)
	}
	return string(buf)
}
