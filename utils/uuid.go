package utils

import (
	"github.com/google/uuid"
)

// GenerateRunID returns a new unique identifier for a batch run
func GenerateRunID() string {
	return uuid.New().String()
}
