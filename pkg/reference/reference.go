// Package reference generates human-readable booking reference numbers.
package reference

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var referencePattern = regexp.MustCompile(`^[A-Z]+-[A-Z0-9]{5}$`)

// Generate produces a reference of the form PREFIX-XXXXX where XXXXX is an
// uppercase token taken from a fresh UUID. Uniqueness against storage is the
// caller's concern; the booking table holds a unique index on the column and
// the create path retries on collision.
func Generate(prefix string) string {
	token := strings.ToUpper(uuid.New().String()[:5])
	return fmt.Sprintf("%s-%s", prefix, token)
}

// IsValid reports whether ref matches the reference format
func IsValid(ref string) bool {
	return referencePattern.MatchString(ref)
}
