package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/btp-connect-api/internal/domain"
)

// Identity es el resultado de resolver una petición: quién es y a qué empresa pertenece.
type Identity struct {
	UserID       string
	EnterpriseID string
	Role         string
}

// IdentityProvider resuelve la identidad de una petición que no trae Bearer token.
type IdentityProvider interface {
	Identity(ctx context.Context) (*Identity, error)
}

// DemoProvider asigna la identidad demo, creándola si no existe.
type DemoProvider struct {
	creds *CredentialStore
}

// NewDemoProvider construye el proveedor demo.
func NewDemoProvider(creds *CredentialStore) *DemoProvider {
	return &DemoProvider{creds: creds}
}

// Identity implementa IdentityProvider.
func (p *DemoProvider) Identity(ctx context.Context) (*Identity, error) {
	user, err := p.creds.DemoUser(ctx)
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: user.ID, EnterpriseID: user.EnterpriseID, Role: user.Role}, nil
}

// RejectProvider rechaza toda petición sin token (modo demo apagado).
type RejectProvider struct{}

// Identity implementa IdentityProvider.
func (RejectProvider) Identity(context.Context) (*Identity, error) {
	return nil, domain.ErrTokenMissing
}

// SessionResolver decide la identidad de cada petición:
//   - sin cabecera "Bearer <token>" → proveedor de respaldo (demo o rechazo);
//   - con token → validación firma/expiración.
type SessionResolver struct {
	tokens   *TokenService
	fallback IdentityProvider
}

// NewSessionResolver construye el resolver.
func NewSessionResolver(tokens *TokenService, fallback IdentityProvider) *SessionResolver {
	return &SessionResolver{tokens: tokens, fallback: fallback}
}

// Resolve recibe el valor crudo de la cabecera Authorization.
func (r *SessionResolver) Resolve(ctx context.Context, authorization string) (*Identity, error) {
	token, ok := BearerToken(authorization)
	if !ok {
		return r.fallback.Identity(ctx)
	}
	return r.tokens.Validate(token)
}

// BearerToken extrae el token de "Bearer <token>". ok=false si la cabecera no tiene esa forma.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
