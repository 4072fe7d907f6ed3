package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
)

const readinessTimeout = 2 * time.Second

// HealthUseCase estado del proceso y del almacenamiento.
type HealthUseCase struct {
	store   repository.Pinger
	version string
}

// NewHealthUseCase construye el caso de uso.
func NewHealthUseCase(store repository.Pinger, version string) *HealthUseCase {
	return &HealthUseCase{store: store, version: version}
}

// Status respuesta de /health: siempre ok mientras el proceso atienda.
func (uc *HealthUseCase) Status() dto.HealthResponse {
	return dto.HealthResponse{
		Status:    "ok",
		Version:   uc.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Ready hace ping al almacenamiento con un timeout corto.
func (uc *HealthUseCase) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	return uc.store.Ping(ctx)
}
