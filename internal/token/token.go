package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// Claims is the HS256 payload shared with the external sign-in layer. The
// field set mirrors what that layer has always minted, so either side can
// issue tokens the other verifies.
type Claims struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DepartmentID string `json:"departmentID"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// Manager mints and verifies boundary tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}
}

// Mint issues a token for a resolved user.
func (m *Manager) Mint(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:           user.ID.Hex(),
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		DepartmentID: user.DepartmentID.Hex(),
		Role:         string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses a token and returns the principal it carries.
func (m *Manager) Verify(tokenString string) (model.Principal, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Unauthenticated("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Principal{}, apperror.Unauthenticated("invalid or expired token")
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return model.Principal{}, apperror.Unauthenticated("malformed principal id in token")
	}
	return model.Principal{
		ID:    id,
		Email: claims.Email,
		Role:  model.Role(claims.Role),
	}, nil
}
