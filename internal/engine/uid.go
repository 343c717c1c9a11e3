package engine

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// contactUID derives a stable identifier from the contact name and birth
// date so repeated exports produce the same UIDs.
func contactUID(name string, birthDate time.Time) string {
	stamp := ""
	if !birthDate.IsZero() {
		stamp = birthDate.Format(time.RFC3339)
	}
	input := fmt.Sprintf(config.FormatHashInput, name, stamp, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
