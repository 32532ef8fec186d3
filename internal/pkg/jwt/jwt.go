package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/sbexpress/hris-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID int64, username string, employeeID *int64, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, username string, employeeID *int64, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := j.now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"jti":      uuid.NewString(),
		"user_id":  userID,
		"username": username,
		"role":     string(role),
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      expiresAt,
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// UserIDFromClaims reads the numeric user_id claim. JSON numbers decode as float64.
func UserIDFromClaims(claims map[string]interface{}) (int64, bool) {
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), v > 0
	case int64:
		return v, v > 0
	case int:
		return int64(v), v > 0
	}
	return 0, false
}

// UserIDFromContext returns the authenticated user id, or nil when the request is anonymous.
func UserIDFromContext(ctx context.Context) *int64 {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return nil
	}
	id, ok := UserIDFromClaims(claims)
	if !ok {
		return nil
	}
	return &id
}
