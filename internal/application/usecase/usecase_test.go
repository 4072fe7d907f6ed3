package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/infrastructure/memory"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

func strp(s string) *string { return &s }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertField(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubcontractor_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSubcontractorUseCase(memory.NewStore().Subcontractors)

	created, err := uc.Create(ctx, "A", dto.CreateSubcontractorRequest{Nom: "ELEC Pro", Metier: strp("Électricité")})
	require.NoError(t, err)
	assert.True(t, created.DansAnnuairePrivate)
	assert.Equal(t, 0.0, created.Note)

	note := 5.0
	updated, err := uc.Update(ctx, "A", created.ID, dto.UpdateSubcontractorRequest{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Note)
	assert.Equal(t, "ELEC Pro", updated.Nom, "los campos ausentes no cambian")
	assert.Equal(t, "Électricité", *updated.Metier)

	_, err = uc.GetByID(ctx, "B", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, "A", created.ID))
	_, err = uc.GetByID(ctx, "A", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubcontractor_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSubcontractorUseCase(memory.NewStore().Subcontractors)

	_, err := uc.Create(ctx, "A", dto.CreateSubcontractorRequest{Nom: "  "})
	assertField(t, err, "nom")

	bad := 7.0
	_, err = uc.Create(ctx, "A", dto.CreateSubcontractorRequest{Nom: "x", Note: &bad})
	assertField(t, err, "note")
}

func TestSite_DefaultsYValidacion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSiteUseCase(memory.NewStore().Sites)

	s, err := uc.Create(ctx, "A", dto.CreateSiteRequest{Nom: "Tour Horizon", Montant: dec("1250000")})
	require.NoError(t, err)
	assert.Equal(t, entity.SiteStatusInProgress, s.Statut)
	assert.Equal(t, 0, s.Avancement)
	require.NotNil(t, s.MontantMarche)
	assert.Equal(t, "1250000", s.MontantMarche.String())

	p := 150
	_, err = uc.Update(ctx, "A", s.ID, dto.UpdateSiteRequest{Avancement: &p})
	assertField(t, err, "avancement")

	_, err = uc.Update(ctx, "B", s.ID, dto.UpdateSiteRequest{Nom: strp("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type env struct {
	store      *memory.Store
	subs       *usecase.SubcontractorUseCase
	sites      *usecase.SiteUseCase
	invoices   *usecase.InvoiceUseCase
	statements *usecase.StatementUseCase
	documents  *usecase.DocumentUseCase
}

func newEnv() *env {
	s := memory.NewStore()
	return &env{
		store:      s,
		subs:       usecase.NewSubcontractorUseCase(s.Subcontractors),
		sites:      usecase.NewSiteUseCase(s.Sites),
		invoices:   usecase.NewInvoiceUseCase(s.Invoices, s.Sites, s.Subcontractors),
		statements: usecase.NewStatementUseCase(s.Statements, s.Sites, s.Subcontractors),
		documents:  usecase.NewDocumentUseCase(s.Documents, s.Subcontractors),
	}
}

func TestInvoice_ReferenciasDeOtraEmpresa(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	site, err := e.sites.Create(ctx, "A", dto.CreateSiteRequest{Nom: "Chantier A"})
	require.NoError(t, err)
	sub, err := e.subs.Create(ctx, "A", dto.CreateSubcontractorRequest{Nom: "ST A"})
	require.NoError(t, err)

	in := dto.CreateInvoiceRequest{ChantierID: site.ID, Numero: "F-001", MontantHT: dec("1000"), DateFacture: "2024-01-15"}
	_, err = e.invoices.Create(ctx, "B", in)
	assertField(t, err, "chantierId")

	in.StID = &sub.ID
	inv, err := e.invoices.Create(ctx, "A", in)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceTypeDeposit, inv.Type)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Statut)
	assert.True(t, entity.DefaultVATRate.Equal(inv.TVA))

	list, err := e.invoices.List(ctx, "A", site.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, _ = e.invoices.List(ctx, "A", "otro")
	assert.Empty(t, list)
}

func TestInvoice_CamposRequeridos(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	site, _ := e.sites.Create(ctx, "A", dto.CreateSiteRequest{Nom: "C"})

	_, err := e.invoices.Create(ctx, "A", dto.CreateInvoiceRequest{ChantierID: site.ID, DateFacture: "2024-01-01", MontantHT: dec("1")})
	assertField(t, err, "numero")
	_, err = e.invoices.Create(ctx, "A", dto.CreateInvoiceRequest{ChantierID: site.ID, Numero: "F", DateFacture: "2024-01-01"})
	assertField(t, err, "montantHT")
	_, err = e.invoices.Create(ctx, "A", dto.CreateInvoiceRequest{ChantierID: site.ID, Numero: "F", DateFacture: "2024-01-01", MontantHT: dec("-5")})
	assertField(t, err, "montantHT")
}

func TestStatement_CreateYPatch(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	site, _ := e.sites.Create(ctx, "A", dto.CreateSiteRequest{Nom: "C"})
	n := 1

	st, err := e.statements.Create(ctx, "A", dto.CreateStatementRequest{ChantierID: site.ID, Numero: &n, Mois: "2024-01-01", MontantHT: dec("55000")})
	require.NoError(t, err)
	assert.Equal(t, entity.StatementStatusPending, st.Statut)

	patched, err := e.statements.Update(ctx, "A", st.ID, dto.UpdateStatementRequest{Statut: strp(entity.StatementStatusValidated)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatementStatusValidated, patched.Statut)
	assert.Equal(t, "55000", patched.MontantHT.String())
	assert.False(t, patched.UpdatedAt.Before(st.UpdatedAt))

	_, err = e.statements.Update(ctx, "B", st.ID, dto.UpdateStatementRequest{Statut: strp("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	zero := 0
	_, err = e.statements.Update(ctx, "A", st.ID, dto.UpdateStatementRequest{Numero: &zero})
	assertField(t, err, "numero")
}

func TestDocument_ExpiradoYTipo(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	sub, _ := e.subs.Create(ctx, "A", dto.CreateSubcontractorRequest{Nom: "ST"})

	past, err := e.documents.Create(ctx, "A", dto.CreateDocumentRequest{
		SousTraitantID: sub.ID, Type: "kbis", Nom: "Kbis 2020", DateExpiration: strp("2020-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusExpired, past.Statut)

	future := time.Now().AddDate(1, 0, 0).Format(time.RFC3339)
	ok, err := e.documents.Create(ctx, "A", dto.CreateDocumentRequest{
		SousTraitantID: sub.ID, Type: "attestation_urssaf", Nom: "URSSAF", DateExpiration: &future,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusValid, ok.Statut)

	_, err = e.documents.Create(ctx, "A", dto.CreateDocumentRequest{SousTraitantID: sub.ID, Type: "passeport", Nom: "x"})
	assertField(t, err, "type")

	_, err = e.documents.Create(ctx, "B", dto.CreateDocumentRequest{SousTraitantID: sub.ID, Type: "kbis", Nom: "x"})
	assertField(t, err, "sousTraitantId")

	list, err := e.documents.List(ctx, "A", sub.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	types := e.documents.Types().Types
	require.Len(t, types, 10)
	assert.Equal(t, "attestation_urssaf", types[0].Code)
	assert.True(t, types[0].Obligatoire)
	assert.False(t, types[9].Obligatoire)
}

func TestSeed_Idempotente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := usecase.NewSeedUseCase(s.Tx, logger.Nop())

	first, err := uc.Seed(ctx, "A")
	require.NoError(t, err)
	assert.True(t, first.Seeded)

	second, err := uc.Seed(ctx, "A")
	require.NoError(t, err)
	assert.False(t, second.Seeded)

	n, _ := s.Subcontractors.Count(ctx, "A")
	assert.Equal(t, 6, n)
	n, _ = s.Sites.Count(ctx, "A")
	assert.Equal(t, 3, n)

	pending, err := s.Statements.SumAmountByStatus(ctx, "A", entity.StatementStatusPending)
	require.NoError(t, err)
	// j=1 para i=0..2: 55000 + 65000 + 75000
	assert.Equal(t, "195000", pending.String())

	other, err := uc.Seed(ctx, "B")
	require.NoError(t, err)
	assert.True(t, other.Seeded, "cada empresa tiene sus propios datos demo")
}

func TestSeed_ConcurrenteSiembraUnaVez(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := usecase.NewSeedUseCase(s.Tx, logger.Nop())

	var wg sync.WaitGroup
	var mu sync.Mutex
	seeded := 0
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.Seed(ctx, "A")
			if assert.NoError(t, err) && resp.Seeded {
				mu.Lock()
				seeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, seeded)
	n, _ := s.Subcontractors.Count(ctx, "A")
	assert.Equal(t, 6, n)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	_, err := usecase.NewSeedUseCase(e.store.Tx, logger.Nop()).Seed(ctx, "A")
	require.NoError(t, err)
	subs, _ := e.subs.List(ctx, "A")
	_, err = e.documents.Create(ctx, "A", dto.CreateDocumentRequest{SousTraitantID: subs[0].ID, Type: "kbis", Nom: "viejo", DateExpiration: strp("2019-06-30")})
	require.NoError(t, err)

	d, err := usecase.NewDashboardUseCase(e.store.Subcontractors, e.store.Sites, e.store.Statements, e.store.Documents).Get(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 6, d.SousTraitants)
	assert.Equal(t, 3, d.Chantiers)
	assert.Equal(t, 3, d.ChantiersEnCours)
	assert.Equal(t, 1, d.DocumentsExpires)
	assert.Equal(t, "195000", d.SituationsEnAttenteHT.String())
}

type fakePDF struct {
	got usecase.StatementPDFData
	err error
}

func (f *fakePDF) GenerateStatementPDF(_ context.Context, data usecase.StatementPDFData) ([]byte, error) {
	f.got = data
	return []byte("%PDF-fake"), f.err
}

func TestStatementPDF(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	now := time.Now().UTC()
	require.NoError(t, e.store.Enterprises.Create(ctx, &entity.Enterprise{ID: "A", Name: "BTP", CreatedAt: now}))
	site, _ := e.sites.Create(ctx, "A", dto.CreateSiteRequest{Nom: "C"})
	sub, _ := e.subs.Create(ctx, "A", dto.CreateSubcontractorRequest{Nom: "ST"})
	n := 2
	st, err := e.statements.Create(ctx, "A", dto.CreateStatementRequest{ChantierID: site.ID, StID: &sub.ID, Numero: &n, Mois: "2024-02-01", MontantHT: dec("1000")})
	require.NoError(t, err)

	gen := &fakePDF{}
	uc := usecase.NewStatementPDFUseCase(e.store.Statements, e.store.Sites, e.store.Subcontractors, e.store.Enterprises, gen)

	out, name, err := uc.Render(ctx, "A", st.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "situation-2-2024-02-01.pdf", name)
	require.NotNil(t, gen.got.Subcontractor)
	assert.Equal(t, "ST", gen.got.Subcontractor.Name)

	_, _, err = uc.Render(ctx, "B", st.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gen.err = errors.New("boom")
	_, _, err = uc.Render(ctx, "A", st.ID)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewHealthUseCase(s, "9.4.0")
	status := uc.Status()
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "9.4.0", status.Version)

	require.NoError(t, uc.Ready(context.Background()))
	s.SetUnavailable(errors.New("caído"))
	assert.ErrorIs(t, uc.Ready(context.Background()), domain.ErrStoreUnavailable)
}
