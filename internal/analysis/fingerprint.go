package analysis

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintBytes is the number of digest bytes kept for display.
// Eight hex characters is enough to tell groups apart in a report while
// being useless for recovering the password.
const fingerprintBytes = 4

// Fingerprint returns a short one-way fingerprint of a secret so reports
// can refer to a reuse group without disclosing the shared password.
// The full digest is truncated; the fingerprint identifies a group
// within one report, nothing more.
func Fingerprint(secret string) string {
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:fingerprintBytes])
}
