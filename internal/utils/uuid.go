package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered UUIDv7 strings.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a UUIDGenerator. It holds no state.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
