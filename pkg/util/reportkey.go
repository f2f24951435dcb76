package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// ReportKeyPrefix marks keys handed to the external report renderer
	ReportKeyPrefix = "rpt"
	// ReportKeyLength is the length of the random part in bytes
	ReportKeyLength = 32
	// BCryptCost is the cost factor for bcrypt hashing
	BCryptCost = 12
)

// GenerateReportKey generates a new secure key with format: rpt_<random_base64>
func GenerateReportKey() (string, error) {
	randomBytes := make([]byte, ReportKeyLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// URL-safe base64 without padding keeps the key header-friendly
	randomPart := base64.RawURLEncoding.EncodeToString(randomBytes)
	return fmt.Sprintf("%s_%s", ReportKeyPrefix, randomPart), nil
}

// HashReportKey hashes a report key using bcrypt
func HashReportKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash report key: %w", err)
	}
	return string(hash), nil
}

// VerifyReportKey compares a provided key with its stored hash
func VerifyReportKey(providedKey, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(providedKey)) == nil
}
