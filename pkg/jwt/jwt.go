package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Variantes du jeton de vérification (lien magique).
const (
	VerificationLogin  = "login"
	VerificationSignup = "signup"
)

// verificationTTL durée de vie d'un lien de connexion.
const verificationTTL = time.Hour

// ErrExpired jeton valide mais expiré (distinct d'un jeton forgé ou corrompu).
var ErrExpired = errors.New("jwt: jeton expiré")

// SessionClaims claims standards plus les champs propres à une session.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// VerificationClaims claims d'un lien magique : l'email visé et la variante
// (login ou signup). Pas d'ID utilisateur, le compte peut ne pas exister.
type VerificationClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Type  string `json:"type"` // "login" | "signup"
}

// GenerateSession génère un jeton de session signé HS256.
func GenerateSession(secret, userID, email, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession valide un jeton de session et retourne userID et email.
func ParseSession(secret, tokenString string) (userID, email string, err error) {
	claims := &SessionClaims{}
	if err := parse(secret, tokenString, claims); err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Email, nil
}

// GenerateVerification génère un jeton de lien magique, expirant au bout
// d'une heure.
func GenerateVerification(secret, email, typ, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := VerificationClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(verificationTTL)),
		},
		Email: email,
		Type:  typ,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseVerification valide un jeton de lien magique et retourne l'email et
// la variante. Retourne ErrExpired si le jeton est simplement périmé.
func ParseVerification(secret, tokenString string) (email, typ string, err error) {
	claims := &VerificationClaims{}
	if err := parse(secret, tokenString, claims); err != nil {
		return "", "", err
	}
	return claims.Email, claims.Type, nil
}

func parse(secret, tokenString string, claims jwt.Claims) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpired
		}
		return err
	}
	if !token.Valid {
		return fmt.Errorf("claims invalides")
	}
	return nil
}
