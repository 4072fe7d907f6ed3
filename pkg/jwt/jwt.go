package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de validación. El llamador sólo distingue token vencido de token inválido.
var (
	ErrExpired   = errors.New("jwt: token expirado")
	ErrMalformed = errors.New("jwt: token inválido")
)

var parserOptions = []jwt.ParserOption{
	jwt.WithExpirationRequired(),
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	// base64 estricto: bits de relleno distintos de cero invalidan el token
	jwt.WithStrictDecoding(),
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// La firma HS256 cubre el payload completo.
type Claims struct {
	jwt.RegisteredClaims
	EnterpriseID string `json:"entrepriseId"`
	Role         string `json:"role"`
}

// Identity es el resultado de un token válido.
type Identity struct {
	UserID       string
	EnterpriseID string
	Role         string
	ExpiresAt    time.Time
}

// Generate genera un token firmado con sub=userID, entrepriseId, role y exp = now + ttl.
func Generate(secret, userID, enterpriseID, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		EnterpriseID: enterpriseID,
		Role:         role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, codificación, estructura y expiración. Devuelve ErrExpired si exp ya pasó
// y ErrMalformed para cualquier otro fallo (firma, formato, claims ausentes).
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, parserOptions...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformed
	}
	if claims.Subject == "" || claims.EnterpriseID == "" {
		return nil, fmt.Errorf("%w: claims incompletos", ErrMalformed)
	}
	return &Identity{
		UserID:       claims.Subject,
		EnterpriseID: claims.EnterpriseID,
		Role:         claims.Role,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
