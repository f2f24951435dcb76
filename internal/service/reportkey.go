package service

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/repository"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/util"
)

// reportKeyCacheEntry caches a verified key until expiry so the report
// renderer's polling doesn't pay a bcrypt compare per request.
type reportKeyCacheEntry struct {
	key       *model.ReportKey
	expiresAt time.Time
}

// ReportKeyService manages the keys that gate the leaderboard feed.
type ReportKeyService struct {
	repo       repository.IReportKeyRepository
	cache      map[string]*reportKeyCacheEntry // plainKey -> cached result
	cacheMutex sync.RWMutex
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewReportKeyService(repo repository.IReportKeyRepository, cacheTTLSeconds int, logger *zap.Logger) *ReportKeyService {
	if cacheTTLSeconds <= 0 {
		cacheTTLSeconds = 300 // fallback to 5 minutes if misconfigured
	}
	return &ReportKeyService{
		repo:     repo,
		cache:    make(map[string]*reportKeyCacheEntry),
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
		logger:   logger,
	}
}

// Generate creates a new key. The plain key appears only in this response.
func (s *ReportKeyService) Generate(ctx context.Context, createdBy primitive.ObjectID, name string) (*model.GeneratedReportKeyResponse, error) {
	plainKey, err := util.GenerateReportKey()
	if err != nil {
		return nil, err
	}
	hash, err := util.HashReportKey(plainKey)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	key := &model.ReportKey{
		Name:      name,
		Hash:      hash,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}
	if err := s.repo.Insert(ctx, key); err != nil {
		return nil, err
	}

	return &model.GeneratedReportKeyResponse{
		PlainKey:  plainKey,
		KeyID:     key.ID.Hex(),
		KeyName:   key.Name,
		CreatedAt: key.CreatedAt,
		ExpiresIn: "Never (until revoked)",
	}, nil
}

// List returns metadata for every key, hashes excluded.
func (s *ReportKeyService) List(ctx context.Context) ([]model.ReportKeyResponse, error) {
	keys, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]model.ReportKeyResponse, 0, len(keys))
	for _, key := range keys {
		responses = append(responses, key.ToResponse())
	}
	return responses, nil
}

// Revoke permanently deletes a key and drops any cached entry for it.
func (s *ReportKeyService) Revoke(ctx context.Context, keyID primitive.ObjectID) error {
	if err := s.repo.Remove(ctx, keyID); err != nil {
		return err
	}
	s.evict(keyID)
	return nil
}

// Deactivate disables a key without deleting it.
func (s *ReportKeyService) Deactivate(ctx context.Context, keyID primitive.ObjectID) error {
	if err := s.repo.SetActive(ctx, keyID, false); err != nil {
		return err
	}
	s.evict(keyID)
	return nil
}

// Activate re-enables a deactivated key.
func (s *ReportKeyService) Activate(ctx context.Context, keyID primitive.ObjectID) error {
	return s.repo.SetActive(ctx, keyID, true)
}

// Validate verifies a plain key against the active set, caching hits.
func (s *ReportKeyService) Validate(ctx context.Context, plainKey string) (*model.ReportKey, error) {
	s.cacheMutex.RLock()
	if entry, exists := s.cache[plainKey]; exists && time.Now().Before(entry.expiresAt) {
		s.cacheMutex.RUnlock()
		_ = s.repo.UpdateLastUsed(ctx, entry.key.ID)
		return entry.key, nil
	}
	s.cacheMutex.RUnlock()

	keys, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if util.VerifyReportKey(plainKey, key.Hash) {
			_ = s.repo.UpdateLastUsed(ctx, key.ID)

			s.cacheMutex.Lock()
			s.cache[plainKey] = &reportKeyCacheEntry{
				key:       key,
				expiresAt: time.Now().Add(s.cacheTTL),
			}
			s.cacheMutex.Unlock()
			return key, nil
		}
	}
	return nil, apperror.Unauthenticated("invalid report key")
}

// evict drops cache entries that point at the given key id.
func (s *ReportKeyService) evict(keyID primitive.ObjectID) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	for plain, entry := range s.cache {
		if entry.key.ID == keyID {
			delete(s.cache, plain)
		}
	}
}
