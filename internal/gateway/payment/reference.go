package payment

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	referencePrefix    = "MZC"
	referenceSuffixLen = 5
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference builds a provider reference like MZC<base36 millis><random>,
// e.g. MZCMDKQ1R3GX7F2A9.
func NewReference(now time.Time) string {
	var b strings.Builder
	b.WriteString(referencePrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	for i := 0; i < referenceSuffixLen; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return b.String()
}
