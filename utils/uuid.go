package utils

import (
	"github.com/google/uuid"
)

// RequestID returns a new unique identifier string used to correlate log
// lines of a single request.
func RequestID() string {
	return uuid.New().String()
}
