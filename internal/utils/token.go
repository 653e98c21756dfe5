package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTokenValue creates an opaque bearer token value
func GenerateTokenValue() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
