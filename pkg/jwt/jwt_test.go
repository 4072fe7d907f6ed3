package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/btp-connect-api/pkg/jwt"
)

const (
	testSecret       = "test-secret-key-for-unit-tests"
	testUserID       = "00000000-0000-0000-0000-000000000001"
	testEnterpriseID = "00000000-0000-0000-0000-000000000002"
	testIssuer       = "btp-connect-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEnterpriseID, "CONDUCTEUR", testIssuer, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, id.UserID)
	assert.Equal(t, testEnterpriseID, id.EnterpriseID)
	assert.Equal(t, "CONDUCTEUR", id.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEnterpriseID, "ADMIN", testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEnterpriseID, "ADMIN", testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Cualquier sustitución en cualquier posición invalida el token, incluido el último
// carácter de cada segmento (sus bits bajos son relleno en base64 sin padding).
func TestParse_TokenAlteradoEsInvalido(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEnterpriseID, "ADMIN", testIssuer, time.Hour)
	require.NoError(t, err)

	for i := 0; i < len(tok); i++ {
		for _, c := range []byte(base64URLAlphabet) {
			if c == tok[i] {
				continue
			}
			b := []byte(tok)
			b[i] = c
			_, err := pkgjwt.Parse(testSecret, string(b))
			require.ErrorIs(t, err, pkgjwt.ErrMalformed, "posición %d: %q -> %q", i, tok[i], c)
		}
	}
}

// Un segmento final con bits de relleno distintos de cero decodifica a los mismos
// bytes en modo laxo; en modo estricto se rechaza.
func TestParse_RellenoNoCanonicoEsInvalido(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEnterpriseID, "ADMIN", testIssuer, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := parts[2]
	// HS256: 32 bytes -> 43 caracteres, los 2 bits bajos del último son relleno
	require.Len(t, sig, 43)
	last := strings.IndexByte(base64URLAlphabet, sig[len(sig)-1])
	require.GreaterOrEqual(t, last, 0)
	alt := base64URLAlphabet[last^1]

	decoded, err := base64.RawURLEncoding.DecodeString(sig[:len(sig)-1] + string(alt))
	require.NoError(t, err)
	orig, err := base64.RawURLEncoding.DecodeString(sig)
	require.NoError(t, err)
	require.Equal(t, orig, decoded, "en modo laxo ambas firmas son iguales")

	parts[2] = sig[:len(sig)-1] + string(alt)
	_, err = pkgjwt.Parse(testSecret, strings.Join(parts, "."))
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

func TestParse_Basura(t *testing.T) {
	for _, s := range []string{"", "token.invalido.aqui", "a.b", strings.Repeat("x", 40)} {
		_, err := pkgjwt.Parse(testSecret, s)
		assert.ErrorIs(t, err, pkgjwt.ErrMalformed, s)
	}
}

func TestParse_SinExpiracionEsInvalido(t *testing.T) {
	raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{Subject: testUserID},
		EnterpriseID:     testEnterpriseID,
		Role:             "ADMIN",
	})
	tok, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

func TestGenerate_PayloadContieneIdentidad(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEnterpriseID, "ADMIN", testIssuer, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(payload, &claims))
	assert.Equal(t, testUserID, claims["sub"])
	assert.Equal(t, testEnterpriseID, claims["entrepriseId"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Contains(t, claims, "exp")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testEnterpriseID, "ADMIN", testIssuer, time.Hour)
	assert.Error(t, err)
}
