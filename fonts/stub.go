package fonts

// Standard Helvetica metrics, in 1000-units-per-em space, used by every
// builtin font face when no real system font can be found for metric
// extraction. Times and Courier reuse these as an acceptable
// approximation rather than shipping distinct stub tables for each.
const (
	helveticaAscent     = 770
	helveticaDescent    = -230
	helveticaUnitsPerEm = 1000
)

// embeddedStub is a minimal, metrics-only buffer in a private format: an
// "hstb" marker followed by unitsPerEm, ascent, descent and lineGap for
// the standard Helvetica metrics above. It is not a TrueType file and has
// no head/hhea tables, so only StubMetrics can read it; sfnt parsers
// reject it. The PDF itself still references the builtin font name directly
// (Helvetica is assumed present in every compliant viewer), so this
// buffer is never embedded — it only feeds layout math.
var embeddedStub = buildMetricsOnlyStub(helveticaAscent, helveticaDescent, helveticaUnitsPerEm)

// buildMetricsOnlyStub produces a tiny synthetic TrueType-table buffer
// carrying only the three metric fields layout needs. It is not a
// general-purpose sfnt encoder — it exists so the resolver always has
// *some* non-nil byte buffer to return even with no system fonts
// installed.
func buildMetricsOnlyStub(ascent, descent int16, unitsPerEm uint16) []byte {
	buf := make([]byte, 0, 32)
	buf = append(buf, 'h', 's', 't', 'b') // marker tag, not a real sfnt signature
	buf = appendUint16(buf, unitsPerEm)
	buf = appendInt16(buf, ascent)
	buf = appendInt16(buf, descent)
	buf = appendInt16(buf, 0) // lineGap
	return buf
}

func appendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendInt16(buf []byte, v int16) []byte {
	return appendUint16(buf, uint16(v))
}

// StubMetrics reads back the ascent/descent/unitsPerEm triple encoded by
// buildMetricsOnlyStub. FontFace consumers that recognize the "hstb"
// marker use this instead of a full sfnt parse.
func StubMetrics(buf []byte) (ascent, descent int16, unitsPerEm uint16, ok bool) {
	if len(buf) < 10 || string(buf[:4]) != "hstb" {
		return 0, 0, 0, false
	}
	unitsPerEm = uint16(buf[4])<<8 | uint16(buf[5])
	ascent = int16(uint16(buf[6])<<8 | uint16(buf[7]))
	descent = int16(uint16(buf[8])<<8 | uint16(buf[9]))
	return ascent, descent, unitsPerEm, true
}
