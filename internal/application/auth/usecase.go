package auth

import (
	"context"

	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
)

// hash bcrypt fijo para igualar el tiempo de respuesta cuando el email no existe.
const timingHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3Yd5uG0My3.Uoe6sY/O6x5u"

// AuthUseCase login y perfil del usuario autenticado.
type AuthUseCase struct {
	creds         *CredentialStore
	tokens        *TokenService
	loginFallback bool
}

// NewAuthUseCase construye el caso de uso. Con loginFallback=true unas credenciales
// inválidas devuelven la sesión demo en vez de ErrInvalidCredentials.
func NewAuthUseCase(creds *CredentialStore, tokens *TokenService, loginFallback bool) *AuthUseCase {
	return &AuthUseCase{creds: creds, tokens: tokens, loginFallback: loginFallback}
}

// Login verifica email/password y emite el token. Los errores de almacenamiento se propagan siempre.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.creds.FindUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	valid := false
	if user != nil {
		valid = VerifyPassword(user.PasswordHash, in.Password)
	} else {
		_ = VerifyPassword(timingHash, in.Password)
	}

	if !valid {
		if !uc.loginFallback {
			return nil, domain.ErrInvalidCredentials
		}
		user, err = uc.creds.DemoUser(ctx)
		if err != nil {
			return nil, err
		}
	}

	token, err := uc.tokens.Issue(user.ID, user.EnterpriseID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: token,
		User:         toUserSummary(user),
	}, nil
}

// Me devuelve el perfil de la identidad. Si el usuario del token ya no existe se usa
// otro usuario de la misma empresa; nunca de otra.
func (uc *AuthUseCase) Me(ctx context.Context, id *Identity) (*dto.MeResponse, error) {
	user, err := uc.creds.FindUserByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.EnterpriseID != id.EnterpriseID {
		user, err = uc.creds.FindAnyUserForTenant(ctx, id.EnterpriseID)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MeResponse{User: toUserSummary(user)}, nil
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{
		ID:           u.ID,
		Email:        u.Email,
		Nom:          u.Name,
		Prenom:       u.Surname,
		Role:         u.Role,
		EntrepriseID: u.EnterpriseID,
	}
}
