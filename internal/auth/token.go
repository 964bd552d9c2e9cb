package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso: identificam o usuário e o escritório (tenant).
type Claims struct {
	UsuarioID    uint `json:"usuarioId"`
	EscritorioID uint `json:"escritorioId"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 15 * time.Minute

func segredo() ([]byte, error) {
	s := os.Getenv("AUTH_JWT_SECRET")
	if s == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET não configurado")
	}
	return []byte(s), nil
}

// GerarToken emite um JWT HS256 com iss, sub, iat, nbf, exp e jti.
func GerarToken(usuarioID, escritorioID uint) (string, error) {
	key, err := segredo()
	if err != nil {
		return "", err
	}

	now := time.Now()
	jti := fmt.Sprintf("%d-%d", usuarioID, now.UnixNano())

	claims := &Claims{
		UsuarioID:    usuarioID,
		EscritorioID: escritorioID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "api-advocacia",
			Subject:   fmt.Sprint(usuarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        jti,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(key)
}

// ParseAndValidate valida assinatura e expiração e devolve os claims.
func ParseAndValidate(raw string) (*Claims, error) {
	key, err := segredo()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fmt.Errorf("token inválido")
	}
	return claims, nil
}
