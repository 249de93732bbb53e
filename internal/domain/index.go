package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// IndexStats holds statistics from an index rebuild
type IndexStats struct {
	Questionnaires int
	ScaleEntries   int
	LanguageRows   int
	TimeRows       int
	Duration       time.Duration
}

// Fingerprint is a stable digest of the catalog contents, used to detect a stale index.
// It fails for entries JSON cannot represent, such as a NaN alpha.
func Fingerprint(catalog []Questionnaire) (string, error) {
	h := sha256.New()
	// encoding/json sorts map keys, so the digest is deterministic
	enc := json.NewEncoder(h)
	for i := range catalog {
		if err := enc.Encode(&catalog[i]); err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", catalog[i].Short, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
