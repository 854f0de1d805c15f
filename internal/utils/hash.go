package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher signs bodies with HMAC-SHA256 under a fixed key. It is safe for
// concurrent use; hash states are pooled.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher for key. An empty key yields nil, which means
// signing is off.
func NewHasher(key string) *Hasher {
	if key == "" {
		return nil
	}

	h := &Hasher{}
	h.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}

	return h
}

// Sum returns the raw HMAC of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	defer h.pool.Put(mac)

	mac.Reset()
	mac.Write(data)

	return mac.Sum(nil)
}

// Sign returns the hex encoded HMAC of data, the value of [HashHeader].
func (h *Hasher) Sign(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data.
func (h *Hasher) Verify(data []byte, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(want, h.Sum(data))
}

// HashString computes a one-off hex HMAC-SHA256 of data under hashKey.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
