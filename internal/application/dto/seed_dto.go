package dto

import "github.com/shopspring/decimal"

// SeedResponse salida de POST /seed.
type SeedResponse struct {
	Message string `json:"message"`
	Seeded  bool   `json:"seeded"`
}

// DashboardResponse resumen de la empresa para el tablero.
type DashboardResponse struct {
	SousTraitants         int             `json:"sousTraitants"`
	Chantiers             int             `json:"chantiers"`
	ChantiersEnCours      int             `json:"chantiersEnCours"`
	SituationsEnAttenteHT decimal.Decimal `json:"situationsEnAttenteHT"`
	DocumentsExpires      int             `json:"documentsExpires"`
}
