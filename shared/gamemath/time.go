package gamemath

import "fmt"

// FormatTime renders seconds as MM:SS.hh.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hundredths := int(seconds * 100)
	m := hundredths / 6000
	s := (hundredths / 100) % 60
	h := hundredths % 100
	return fmt.Sprintf("%02d:%02d.%02d", m, s, h)
}
