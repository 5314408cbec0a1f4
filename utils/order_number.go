package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber produces a unique, human-readable order number such
// as ORD-3F2A9C01.
func GenerateOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("ORD-%s", strings.ToUpper(id[:8]))
}
