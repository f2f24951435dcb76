package token

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Theo3883/Hour-Tracking-Application/internal/config"
	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

func testUser() *model.User {
	return &model.User{
		ID:           primitive.NewObjectID(),
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		DepartmentID: primitive.NewObjectID(),
		Role:         model.RoleAdmin,
	}
}

func TestMintAndVerify(t *testing.T) {
	m := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLMinutes: 60})
	user := testUser()

	tokenString, err := m.Mint(user)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	principal, err := m.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if principal.ID != user.ID {
		t.Errorf("id = %s, want %s", principal.ID.Hex(), user.ID.Hex())
	}
	if principal.Email != "jane@example.com" {
		t.Errorf("email = %q", principal.Email)
	}
	if !principal.IsAdmin() {
		t.Error("role admin should survive the round trip")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	minting := NewManager(config.AuthConfig{JWTSecret: "secret-a", TokenTTLMinutes: 60})
	verifying := NewManager(config.AuthConfig{JWTSecret: "secret-b", TokenTTLMinutes: 60})

	tokenString, err := minting.Mint(testUser())
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := verifying.Verify(tokenString); !apperror.IsKind(err, apperror.KindUnauthenticated) {
		t.Errorf("err = %v, want Unauthenticated", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLMinutes: -1})

	tokenString, err := m.Mint(testUser())
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := m.Verify(tokenString); !apperror.IsKind(err, apperror.KindUnauthenticated) {
		t.Errorf("err = %v, want Unauthenticated", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTLMinutes: 60})
	if _, err := m.Verify("not.a.token"); !apperror.IsKind(err, apperror.KindUnauthenticated) {
		t.Errorf("err = %v, want Unauthenticated", err)
	}
}
