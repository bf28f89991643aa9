package task

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const (
	minIDLength  = 3
	maxIDLength  = 8
	nonceSize    = 16 // 128 bits of entropy
	hexChunkSize = 4  // 16 bits per base36 chunk
)

// GenerateID creates the ID for a new task from its text, the creation time
// and a random nonce, so identical texts added together still differ.
func GenerateID(text string, createdAt time.Time, existsFn func(string) bool) string {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return shortID(existsFn, []byte(text), []byte(createdAt.Format(time.RFC3339Nano)), nonce)
}

// DerivedID returns the ID for a stored record that has none. It depends only
// on the record's position and text, so every load of the same data agrees.
func DerivedID(index int, text string, existsFn func(string) bool) string {
	return shortID(existsFn, []byte(strconv.Itoa(index)), []byte{0}, []byte(text))
}

// shortID hashes parts and returns the shortest base36 prefix, from
// minIDLength up to maxIDLength, that existsFn does not report as taken.
func shortID(existsFn func(string) bool, parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	base36 := hexToBase36(hex.EncodeToString(h.Sum(nil)))

	for length := minIDLength; length <= maxIDLength && length <= len(base36); length++ {
		if candidate := base36[:length]; !existsFn(candidate) {
			return candidate
		}
	}
	return base36[:maxIDLength]
}

func hexToBase36(hexStr string) string {
	var result strings.Builder
	for i := 0; i < len(hexStr); i += hexChunkSize {
		end := min(i+hexChunkSize, len(hexStr))
		val, _ := strconv.ParseUint(hexStr[i:end], 16, 64)
		result.WriteString(strconv.FormatUint(val, 36))
	}
	return result.String()
}
