package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// CredentialStore agrupa las operaciones sobre empresas y usuarios que necesita la autenticación,
// incluido el aprovisionamiento perezoso de la identidad demo.
type CredentialStore struct {
	enterprises repository.EnterpriseRepository
	users       repository.UserRepository
	log         *logger.Logger
	hashCost    int
	now         func() time.Time
}

// NewCredentialStore construye el store de credenciales.
func NewCredentialStore(enterprises repository.EnterpriseRepository, users repository.UserRepository, log *logger.Logger) *CredentialStore {
	return &CredentialStore{
		enterprises: enterprises,
		users:       users,
		log:         log,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
}

// WithHashCost ajusta el costo bcrypt (los tests usan bcrypt.MinCost).
func (s *CredentialStore) WithHashCost(cost int) *CredentialStore {
	s.hashCost = cost
	return s
}

// NormalizeEmail recorta y pliega mayúsculas para que el login no dependa de la capitalización.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// HashPassword genera el hash bcrypt (con sal) de la contraseña.
func (s *CredentialStore) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compara en tiempo constante la contraseña contra el hash almacenado.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// FindUserByEmail busca un usuario por email en cualquier empresa. (nil, nil) si no existe.
func (s *CredentialStore) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.users.FindByEmail(ctx, NormalizeEmail(email))
}

// FindUserByID busca un usuario por ID. (nil, nil) si no existe.
func (s *CredentialStore) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// FindAnyUserForTenant devuelve algún usuario de la empresa. (nil, nil) si no tiene.
func (s *CredentialStore) FindAnyUserForTenant(ctx context.Context, enterpriseID string) (*entity.User, error) {
	return s.users.FindAnyByEnterprise(ctx, enterpriseID)
}

// FindOrCreateDefaultTenant devuelve la primera empresa existente o crea la empresa demo.
// Si otra petición la creó en paralelo (ErrDuplicate) se relee y se usa esa.
func (s *CredentialStore) FindOrCreateDefaultTenant(ctx context.Context) (*entity.Enterprise, error) {
	existing, err := s.enterprises.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	enterprise := &entity.Enterprise{
		ID:                 uuid.New().String(),
		Name:               entity.DemoEnterpriseName,
		RegistrationNumber: entity.DemoEnterpriseSiret,
		Plan:               entity.DemoEnterprisePlan,
		IsDefault:          true,
		CreatedAt:          s.now().UTC(),
	}
	if err := s.enterprises.Create(ctx, enterprise); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		winner, err := s.enterprises.FindFirst(ctx)
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, fmt.Errorf("empresa demo duplicada pero no encontrada: %w", domain.ErrStoreUnavailable)
		}
		return winner, nil
	}
	s.log.Info().Str("enterprise_id", enterprise.ID).Msg("empresa demo creada")
	return enterprise, nil
}

// FindOrCreateDefaultUser devuelve un usuario existente de la empresa o crea el usuario demo
// (ADMIN, email y contraseña fijos, contraseña hasheada).
func (s *CredentialStore) FindOrCreateDefaultUser(ctx context.Context, enterpriseID string) (*entity.User, error) {
	existing, err := s.users.FindAnyByEnterprise(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := s.HashPassword(entity.DemoUserPassword)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		EnterpriseID: enterpriseID,
		Email:        entity.DemoUserEmail,
		PasswordHash: hash,
		Name:         entity.DemoUserName,
		Surname:      entity.DemoUserSurname,
		Role:         entity.RoleAdmin,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// el duplicado es sobre (empresa, email): se relee por esa misma clave
		winner, err := s.users.FindByEmailAndEnterprise(ctx, user.Email, enterpriseID)
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, fmt.Errorf("usuario demo duplicado pero no encontrado: %w", domain.ErrStoreUnavailable)
		}
		return winner, nil
	}
	s.log.Info().Str("enterprise_id", enterpriseID).Str("email", user.Email).Msg("usuario demo creado")
	return user, nil
}

// DemoUser aprovisiona (si hace falta) y devuelve el usuario demo completo.
func (s *CredentialStore) DemoUser(ctx context.Context) (*entity.User, error) {
	enterprise, err := s.FindOrCreateDefaultTenant(ctx)
	if err != nil {
		return nil, err
	}
	return s.FindOrCreateDefaultUser(ctx, enterprise.ID)
}
