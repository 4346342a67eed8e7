package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiresIn トークンのデフォルト有効期間
const DefaultExpiresIn = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims APIトークンのクレーム
type Claims struct {
	// ID ユーザーID
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Signer APIトークンの発行・検証を行います
type Signer struct {
	secret    []byte
	expiresIn time.Duration
}

// NewSigner HS256で署名するSignerを生成します
func NewSigner(secret string, expiresIn time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}
	return &Signer{secret: []byte(secret), expiresIn: expiresIn}, nil
}

// Sign 指定したユーザーのトークンを発行します
func (s *Signer) Sign(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify トークンを検証し、ユーザーIDを返します
func (s *Signer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || len(claims.ID) == 0 {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
