package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/badges/pkg/badge"
	"github.com/matzehuels/badges/pkg/measure"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// BadgeKey returns the cache key for b rendered with the given measurer mode.
// Colors are keyed by their markup value, so "gray" and "grey" share a key.
func BadgeKey(b badge.Badge, mode measure.Mode) string {
	return hashKey("badge",
		b.Style.String(),
		b.Label,
		b.LabelColor.Hex(),
		b.Message,
		b.MessageColor.Hex(),
		string(mode),
	)
}
