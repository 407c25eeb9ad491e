package schedule

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateEventID creates a unique identifier for a booking.
func GenerateEventID() string {
	return fmt.Sprintf("%d-%s@officesched", time.Now().UnixNano(), randomString(8))
}

func randomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic(err)
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}
