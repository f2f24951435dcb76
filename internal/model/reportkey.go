package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportKey grants the external report renderer read access to the
// leaderboard feed. Only the bcrypt hash is stored.
type ReportKey struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Hash       string             `bson:"hash" json:"hash"` // never expose
	CreatedBy  primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	LastUsedAt time.Time          `bson:"lastUsedAt,omitempty" json:"lastUsedAt,omitempty"`
	IsActive   bool               `bson:"isActive" json:"isActive"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (k *ReportKey) GetID() primitive.ObjectID   { return k.ID }
func (k *ReportKey) SetID(id primitive.ObjectID) { k.ID = id }

// ReportKeyResponse is the key metadata without the hash.
type ReportKeyResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt,omitempty"`
	IsActive   bool      `json:"isActive"`
}

// ToResponse converts a ReportKey to its response form (excludes hash).
func (k *ReportKey) ToResponse() ReportKeyResponse {
	return ReportKeyResponse{
		ID:         k.ID.Hex(),
		Name:       k.Name,
		CreatedBy:  k.CreatedBy.Hex(),
		CreatedAt:  k.CreatedAt,
		LastUsedAt: k.LastUsedAt,
		IsActive:   k.IsActive,
	}
}

// GeneratedReportKeyResponse returns the plain key exactly once, at creation.
type GeneratedReportKeyResponse struct {
	PlainKey  string    `json:"plainKey"`
	KeyID     string    `json:"keyId"`
	KeyName   string    `json:"keyName"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresIn string    `json:"expiresIn"`
}
