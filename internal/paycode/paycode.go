// Package paycode generates human-readable payment memo codes used to
// correlate external bank transfers with a checkout session.
package paycode

import (
	"crypto/rand"
	"strings"
)

// Alphabet deliberately excludes I, O, 0 and 1 to avoid visual ambiguity when
// a human reads the code back into a banking app.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Prefix is the brand tag placed before the random part.
const Prefix = "R4B"

// Length is the number of random symbols after the prefix.
const Length = 6

// New returns a payment code in the form "R4B XXXXXX". Codes carry no
// client-side uniqueness guarantee; the verification backend matches on
// (code, amount, time window).
func New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteByte(' ')
	for _, c := range buf {
		b.WriteByte(Alphabet[int(c)%len(Alphabet)])
	}
	return b.String()
}
