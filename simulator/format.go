package simulator

import (
	"cosmossdk.io/math"
)

// FormatPct renders a percentage with two decimals and a trailing percent
// sign, e.g. "3.42%". Values are rounded half away from zero at the second
// decimal and keep their sign.
func FormatPct(d math.LegacyDec) string {
	neg := d.IsNegative()

	// LegacyDec.RoundInt rounds ties to even; add half and truncate instead
	half := math.LegacyNewDecWithPrec(5, 1)
	hundredths := d.Abs().MulInt64(100).Add(half).TruncateInt()

	s := hundredths.String()
	for len(s) < 3 {
		s = "0" + s
	}

	out := s[:len(s)-2] + "." + s[len(s)-2:] + "%"
	if neg && !hundredths.IsZero() {
		out = "-" + out
	}
	return out
}
