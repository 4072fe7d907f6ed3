package repository

import "context"

// SeedRepos repositorios atados a una misma transacción.
type SeedRepos struct {
	Subcontractors SubcontractorRepository
	Sites          SiteRepository
	Statements     StatementRepository
}

// TxRunner ejecuta fn dentro de una transacción serializada por empresa:
// dos llamadas concurrentes para el mismo enterpriseID nunca se solapan.
type TxRunner interface {
	RunForEnterprise(ctx context.Context, enterpriseID string, fn func(repos SeedRepos) error) error
}

// Pinger comprueba que el almacenamiento responde (readiness).
type Pinger interface {
	Ping(ctx context.Context) error
}
