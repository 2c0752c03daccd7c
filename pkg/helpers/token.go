package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ActionToken is a single-use secret delivered out of band (email
// verification, password reset). Cleartext goes into the delivered link;
// only Digest and ExpiresAt are persisted.
type ActionToken struct {
	Cleartext string
	Digest    string
	ExpiresAt time.Time
}

// IssueActionToken generates a 160-bit random token valid for ttl.
func IssueActionToken(ttl time.Duration) (ActionToken, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return ActionToken{}, err
	}
	cleartext := hex.EncodeToString(b)
	return ActionToken{
		Cleartext: cleartext,
		Digest:    HashActionToken(cleartext),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// HashActionToken returns the hex sha256 digest of a token cleartext.
func HashActionToken(cleartext string) string {
	sum := sha256.Sum256([]byte(cleartext))
	return hex.EncodeToString(sum[:])
}

// ValidateActionToken reports whether candidate matches the stored digest
// and the stored expiry has not passed at now.
func ValidateActionToken(candidate, storedDigest string, storedExpiry, now time.Time) bool {
	if storedDigest == "" || storedExpiry.IsZero() {
		return false
	}
	if now.After(storedExpiry) {
		return false
	}
	return HashActionToken(candidate) == storedDigest
}
