package rdf

// isWhitespace reports whether r is Turtle WS: space, tab, CR, LF.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isPNCharsBase approximates the grammar's PN_CHARS_BASE: ASCII letters
// plus the Unicode letter ranges a prefix or local-part name may start
// with. It is not a character-by-character transcription of the full
// PN_CHARS_BASE production - spec.md's Non-goals exclude validating the
// full IRI/name grammar beyond structural checks - but it accepts ordinary
// Unicode identifiers the way the grammar intends.
func isPNCharsBase(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0x00C0 && r <= 0x00D6, r >= 0x00D8 && r <= 0x00F6, r >= 0x00F8 && r <= 0x02FF:
		return true
	case r >= 0x0370 && r <= 0x037D, r >= 0x037F && r <= 0x1FFF:
		return true
	case r >= 0x200C && r <= 0x200D, r >= 0x2070 && r <= 0x218F:
		return true
	case r >= 0x2C00 && r <= 0x2FEF, r >= 0x3001 && r <= 0xD7FF:
		return true
	case r >= 0xF900 && r <= 0xFDCF, r >= 0xFDF0 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0xEFFFF:
		return true
	}
	return false
}

// isPNCharsU adds '_' to isPNCharsBase, the grammar's PN_CHARS_U.
func isPNCharsU(r rune) bool {
	return r == '_' || isPNCharsBase(r)
}

// isPNChars adds '-', digits and the middle-dot/combining-mark ranges to
// isPNCharsU, the grammar's PN_CHARS.
func isPNChars(r rune) bool {
	switch {
	case r == '-', r >= '0' && r <= '9', r == 0x00B7:
		return true
	case r >= 0x0300 && r <= 0x036F, r >= 0x203F && r <= 0x2040:
		return true
	}
	return isPNCharsU(r)
}

// isNameStartChar reports whether r may open a prefix or blank-node label
// (PN_CHARS_U, minus the leading-digit restriction blank-node labels don't
// share with prefixes - both accept it here; the engine enforces any
// production-specific restriction).
func isNameStartChar(r rune) bool {
	return isPNCharsU(r)
}

// isNameChar reports whether r may continue a prefix, local name or
// blank-node label.
func isNameChar(r rune) bool {
	return isPNChars(r) || r == '.'
}
