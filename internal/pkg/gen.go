package pkg

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const maxGameID = 99999999

// GenerateGameID - generates an identifier for a game record.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(maxGameID))
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano()%maxGameID, 10)
	}

	return n.String()
}
