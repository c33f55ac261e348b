package decode

import "strconv"

// CleanBytes renders raw bytes as a printable escaped literal, e.g.
// "GET /\x00\x01". Non-ASCII bytes come out as \x escapes.
func CleanBytes(b []byte) string {
	q := strconv.QuoteToASCII(string(b))
	return q[1 : len(q)-1]
}
