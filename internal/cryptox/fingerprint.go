package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Fingerprint mixes value with the timestamp at and returns the SHA-256 hex
// digest. The output cannot be turned back into value; use Seal for data that
// has to be read again.
func Fingerprint(value string, at time.Time) string {
	sum := sha256.Sum256([]byte(value + strconv.FormatInt(at.UnixNano(), 10)))
	return hex.EncodeToString(sum[:])
}
