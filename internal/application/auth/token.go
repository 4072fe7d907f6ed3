package auth

import (
	"errors"
	"time"

	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/pkg/jwt"
)

// TokenService emite y valida tokens de sesión firmados. Sin estado: no hay tabla de sesiones
// ni lista de revocación.
type TokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewTokenService construye el servicio. ttl es la vigencia absoluta de cada token.
func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, issuer: issuer, ttl: ttl}
}

// Issue firma un token con userID, enterpriseID, role y exp = now + ttl.
func (s *TokenService) Issue(userID, enterpriseID, role string) (string, error) {
	return jwt.Generate(s.secret, userID, enterpriseID, role, s.issuer, s.ttl)
}

// Validate devuelve la identidad del token, domain.ErrTokenExpired o domain.ErrTokenInvalid.
func (s *TokenService) Validate(token string) (*Identity, error) {
	id, err := jwt.Parse(s.secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	return &Identity{UserID: id.UserID, EnterpriseID: id.EnterpriseID, Role: id.Role}, nil
}
