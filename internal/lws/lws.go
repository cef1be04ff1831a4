// Package lws trims the whitespace that surrounds header lines, header values and cookie
// pairs. Every byte at or below ' ' counts as whitespace, which covers SP, HT and any stray
// control bytes a client leaves behind.
package lws

const (
	SP = ' '
	HT = '\t'
	CR = '\r'
	LF = '\n'
)

func Check(b byte) bool {
	return b <= SP
}

func TrimLeft(s string) string {
	i := 0
	for i < len(s) && Check(s[i]) {
		i++
	}

	return s[i:]
}

func TrimRight(s string) string {
	last := len(s)
	for last > 0 && Check(s[last-1]) {
		last--
	}

	return s[:last]
}

func Trim(s string) string {
	return TrimRight(TrimLeft(s))
}
