package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Hash computes a SHA-256 digest over parts and returns it as 64 hex chars.
// Parts are length-prefixed so ("ab", "c") and ("a", "bc") never collide.
func Hash(parts ...string) string {
	h := sha256.New()
	var n [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
