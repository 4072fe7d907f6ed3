package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

const (
	seedMessageCreated = "Données de démonstration créées"
	seedMessageSkipped = "Données déjà présentes"
)

type seedSubcontractor struct {
	name, trade, email, phone, city, siret string
	rating                                 float64
}

var seedSubcontractors = []seedSubcontractor{
	{"ELEC Pro", "Électricité", "contact@elecpro.fr", "01 23 45 67 89", "Paris", "12345678901234", 4.5},
	{"CVC Solutions", "Climatisation / CVC", "info@cvcsolutions.fr", "01 98 76 54 32", "Lyon", "98765432109876", 4.2},
	{"Maçonnerie Durand", "Maçonnerie", "durand@macon.fr", "06 12 34 56 78", "Marseille", "11122233344455", 4.8},
	{"Peinture Martin", "Peinture", "martin@peinture.fr", "06 98 76 54 32", "Bordeaux", "55544433322211", 4.0},
	{"Plomberie Express", "Plomberie", "contact@plomberie-express.fr", "01 11 22 33 44", "Toulouse", "66677788899900", 3.8},
	{"Menuiserie Bois & Co", "Menuiserie", "boisetco@menuiserie.fr", "05 55 66 77 88", "Nantes", "99988877766655", 4.6},
}

type seedSite struct {
	name, client, address string
	amount                int64
	progress              int
}

var seedSites = []seedSite{
	{"Tour Horizon - Défense", "Immobilière Grand Paris", "La Défense, 92000", 1250000, 45},
	{"Résidence Les Jardins", "Promoteur ABC", "75015 Paris", 850000, 72},
	{"Centre Commercial Rivoli", "SCI Centre Ville", "Rue de Rivoli, 75001", 2300000, 23},
}

// SeedUseCase carga los datos de demostración de una empresa.
type SeedUseCase struct {
	tx  repository.TxRunner
	log *logger.Logger
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(tx repository.TxRunner, log *logger.Logger) *SeedUseCase {
	return &SeedUseCase{tx: tx, log: log}
}

// Seed inserta 6 sous-traitants, 3 chantiers y 2 situations por chantier en una sola
// transacción. Si la empresa ya tiene sous-traitants no hace nada (seeded=false).
// El TxRunner serializa llamadas concurrentes de la misma empresa.
func (uc *SeedUseCase) Seed(ctx context.Context, enterpriseID string) (*dto.SeedResponse, error) {
	seeded := false
	err := uc.tx.RunForEnterprise(ctx, enterpriseID, func(repos repository.SeedRepos) error {
		n, err := repos.Subcontractors.Count(ctx, enterpriseID)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if err := insertSeed(ctx, enterpriseID, repos, time.Now().UTC()); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !seeded {
		return &dto.SeedResponse{Message: seedMessageSkipped, Seeded: false}, nil
	}
	uc.log.Info().Str("enterprise_id", enterpriseID).Msg("datos demo creados")
	return &dto.SeedResponse{Message: seedMessageCreated, Seeded: true}, nil
}

func insertSeed(ctx context.Context, enterpriseID string, repos repository.SeedRepos, now time.Time) error {
	for _, s := range seedSubcontractors {
		sub := &entity.Subcontractor{
			ID:                 uuid.New().String(),
			EnterpriseID:       enterpriseID,
			Name:               s.name,
			Trade:              ptr(s.trade),
			Email:              ptr(s.email),
			Phone:              ptr(s.phone),
			City:               ptr(s.city),
			Siret:              ptr(s.siret),
			Rating:             s.rating,
			InPrivateDirectory: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := repos.Subcontractors.Create(ctx, sub); err != nil {
			return fmt.Errorf("seed sous-traitant %q: %w", s.name, err)
		}
	}

	for i, s := range seedSites {
		amount := decimal.NewFromInt(s.amount)
		site := &entity.Site{
			ID:             uuid.New().String(),
			EnterpriseID:   enterpriseID,
			Name:           s.name,
			Client:         ptr(s.client),
			Address:        ptr(s.address),
			ContractAmount: &amount,
			Status:         entity.SiteStatusInProgress,
			Progress:       s.progress,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := repos.Sites.Create(ctx, site); err != nil {
			return fmt.Errorf("seed chantier %q: %w", s.name, err)
		}
		for j := 1; j <= 2; j++ {
			status := entity.StatementStatusValidated
			if j == 1 {
				status = entity.StatementStatusPending
			}
			st := &entity.Statement{
				ID:            uuid.New().String(),
				EnterpriseID:  enterpriseID,
				SiteID:        site.ID,
				Number:        j,
				Month:         fmt.Sprintf("2024-%02d-01", i+1),
				AmountExclTax: decimal.NewFromInt(int64(50000 + i*10000 + j*5000)),
				VATRate:       entity.DefaultVATRate,
				Status:        status,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := repos.Statements.Create(ctx, st); err != nil {
				return fmt.Errorf("seed situation %d/%d: %w", i+1, j, err)
			}
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
