package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/btp-connect-api/internal/application/auth"
	"github.com/jhoicas/btp-connect-api/internal/application/dto"
	"github.com/jhoicas/btp-connect-api/internal/domain"
	"github.com/jhoicas/btp-connect-api/internal/domain/entity"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
	"github.com/jhoicas/btp-connect-api/internal/infrastructure/memory"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

const testSecret = "secreto-de-test"

type fixture struct {
	store  *memory.Store
	creds  *auth.CredentialStore
	tokens *auth.TokenService
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:  store,
		creds:  auth.NewCredentialStore(store.Enterprises, store.Users, logger.Nop()).WithHashCost(bcrypt.MinCost),
		tokens: auth.NewTokenService(testSecret, "btp-test", time.Hour),
	}
}

func (f *fixture) addUser(t *testing.T, enterpriseID, email, password string) *entity.User {
	t.Helper()
	hash, err := f.creds.HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{
		ID: "u-" + email, EnterpriseID: enterpriseID, Email: email, PasswordHash: hash,
		Name: "Jean", Surname: "Dupont", Role: entity.RoleConducteur, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.store.Users.Create(context.Background(), u))
	return u
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jean@btp.fr", auth.NormalizeEmail("  Jean@BTP.fr "))
}

func TestHashPassword_NoGuardaClaro(t *testing.T) {
	f := newFixture()
	hash, err := f.creds.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, auth.VerifyPassword(hash, "admin123"))
	assert.False(t, auth.VerifyPassword(hash, "admin124"))
}

func TestDemoUser_EsEstableYUnico(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := f.creds.DemoUser(ctx)
			if assert.NoError(t, err) {
				ids[i] = u.EnterpriseID + "/" + u.ID
			}
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id, "todas las llamadas concurrentes ven la misma identidad demo")
	}

	u, err := f.creds.DemoUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DemoUserEmail, u.Email)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.True(t, auth.VerifyPassword(u.PasswordHash, entity.DemoUserPassword))

	ent, err := f.store.Enterprises.GetByID(ctx, u.EnterpriseID)
	require.NoError(t, err)
	assert.Equal(t, entity.DemoEnterpriseName, ent.Name)
	assert.True(t, ent.IsDefault)
}

// staleUsers simula una lectura previa a que otra petición cree el usuario demo.
type staleUsers struct {
	repository.UserRepository
	stale int
}

func (r *staleUsers) FindAnyByEnterprise(ctx context.Context, enterpriseID string) (*entity.User, error) {
	if r.stale > 0 {
		r.stale--
		return nil, nil
	}
	return r.UserRepository.FindAnyByEnterprise(ctx, enterpriseID)
}

func TestFindOrCreateDefaultUser_DuplicadoReleeGanador(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	winner := &entity.User{
		ID: "ganador", EnterpriseID: "E", Email: entity.DemoUserEmail,
		PasswordHash: "x", Role: entity.RoleAdmin, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Users.Create(ctx, winner))
	// Otro usuario más antiguo de la misma empresa no debe confundirse con el ganador.
	require.NoError(t, store.Users.Create(ctx, &entity.User{
		ID: "otro", EnterpriseID: "E", Email: "otro@btp.fr", Role: entity.RoleConducteur,
		CreatedAt: time.Now().Add(-time.Hour).UTC(),
	}))

	users := &staleUsers{UserRepository: store.Users, stale: 1}
	creds := auth.NewCredentialStore(store.Enterprises, users, logger.Nop()).WithHashCost(bcrypt.MinCost)

	u, err := creds.FindOrCreateDefaultUser(ctx, "E")
	require.NoError(t, err)
	assert.Equal(t, "ganador", u.ID)
	assert.Equal(t, 0, users.stale)
}

func TestTokenService_Errores(t *testing.T) {
	f := newFixture()
	tok, err := f.tokens.Issue("u1", "e1", entity.RoleAdmin)
	require.NoError(t, err)

	id, err := f.tokens.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, &auth.Identity{UserID: "u1", EnterpriseID: "e1", Role: entity.RoleAdmin}, id)

	expired, err := auth.NewTokenService(testSecret, "btp-test", -time.Minute).Issue("u1", "e1", entity.RoleAdmin)
	require.NoError(t, err)
	_, err = f.tokens.Validate(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	_, err = f.tokens.Validate(tok + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = auth.NewTokenService("otro", "btp-test", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		tok, ok := auth.BearerToken(c.header)
		assert.Equal(t, c.ok, ok, c.header)
		assert.Equal(t, c.token, tok, c.header)
	}
}

func TestSessionResolver(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	demo := auth.NewSessionResolver(f.tokens, auth.NewDemoProvider(f.creds))
	a, err := demo.Resolve(ctx, "")
	require.NoError(t, err)
	b, err := demo.Resolve(ctx, "Basic xyz")
	require.NoError(t, err)
	assert.Equal(t, a, b, "sin token siempre la misma identidad demo")

	tok, err := f.tokens.Issue("u9", "e9", entity.RoleConducteur)
	require.NoError(t, err)
	id, err := demo.Resolve(ctx, "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, "e9", id.EnterpriseID, "un token válido nunca cae en la identidad demo")

	_, err = demo.Resolve(ctx, "Bearer basura")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid, "un token inválido no cae en la identidad demo")

	strict := auth.NewSessionResolver(f.tokens, auth.RejectProvider{})
	_, err = strict.Resolve(ctx, "")
	assert.ErrorIs(t, err, domain.ErrTokenMissing)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	f := newFixture()
	u := f.addUser(t, "e1", "jean@btp.fr", "secreto")
	uc := auth.NewAuthUseCase(f.creds, f.tokens, false)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: " JEAN@btp.fr", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, resp.User.ID)
	assert.Equal(t, "Jean", resp.User.Nom)
	assert.Equal(t, "Dupont", resp.User.Prenom)
	assert.Equal(t, resp.AccessToken, resp.RefreshToken)

	id, err := f.tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "e1", id.EnterpriseID)
	assert.Equal(t, entity.RoleConducteur, id.Role)
}

func TestLogin_SinFallbackRechaza(t *testing.T) {
	f := newFixture()
	f.addUser(t, "e1", "jean@btp.fr", "secreto")
	uc := auth.NewAuthUseCase(f.creds, f.tokens, false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "jean@btp.fr", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_ConFallbackDevuelveDemo(t *testing.T) {
	f := newFixture()
	uc := auth.NewAuthUseCase(f.creds, f.tokens, true)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@x.com", Password: "wrong"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, entity.DemoUserEmail, resp.User.Email)
}

func TestMe_UsuarioBorradoUsaOtroDeLaMismaEmpresa(t *testing.T) {
	f := newFixture()
	other := f.addUser(t, "e1", "otro@btp.fr", "x")
	f.addUser(t, "e2", "ajeno@btp.fr", "x")
	uc := auth.NewAuthUseCase(f.creds, f.tokens, false)
	ctx := context.Background()

	me, err := uc.Me(ctx, &auth.Identity{UserID: "borrado", EnterpriseID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, other.ID, me.User.ID)

	_, err = uc.Me(ctx, &auth.Identity{UserID: "ajeno", EnterpriseID: "e3"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
