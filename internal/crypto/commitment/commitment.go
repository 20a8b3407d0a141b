// Package commitment implements the keyed binding behind each fair draw:
// an HMAC-SHA3-256 over the decimal form of the committed value. The MAC is
// shown to the human before they choose; revealing the key afterwards lets
// them recompute the MAC and confirm the value was fixed in advance.
package commitment

import (
	"crypto/hmac"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// Commit computes the hex authentication code for value under key.
// Deterministic: the same key and value always produce the same MAC.
func Commit(key []byte, value int) string {
	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(value)))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the MAC for (key, value) and compares it with the
// disclosed one in constant time.
func Verify(key []byte, value int, disclosed string) bool {
	want, err := hex.DecodeString(disclosed)
	if err != nil {
		return false
	}

	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(value)))

	return hmac.Equal(mac.Sum(nil), want)
}
