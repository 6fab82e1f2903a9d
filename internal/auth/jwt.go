package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer выпускает и проверяет сессионные JWT identity-коллаборатора
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer создает новый выпускатель токенов
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate выпускает токен для сотрудника
func (i *TokenIssuer) Generate(empID, email string) (string, error) {
	claims := jwt.MapClaims{
		"emp_id": empID,
		"email":  email,
		"exp":    time.Now().Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify проверяет токен и возвращает empId из claims
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	empID, ok := claims["emp_id"].(string)
	if !ok || empID == "" {
		return "", fmt.Errorf("invalid emp_id in token claims")
	}

	return empID, nil
}

// HashPassword хэширует пароль bcrypt'ом
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хэшем
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
