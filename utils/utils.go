package utils

import (
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Error codes attached to JSON error responses so clients can tell failure
// classes apart without parsing messages.
const (
	ErrorTokenAuthFail = 1001
	ErrorNotFound      = 1002
	ErrorBadRequest    = 1003
	ErrorInternal      = 1004
	ErrorConflict      = 1005
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomAlphabetString generates a random lower-case string of length n.
func RandomAlphabetString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
