package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// resolveIRI resolves a relative IRI against a base IRI per RFC 3986,
// falling back to simple concatenation when either side fails to parse as
// a URL (an IRI can legally contain characters net/url rejects).
func resolveIRI(baseStr, relative string) string {
	if relative == "" {
		return baseStr
	}
	baseURL, err := url.Parse(baseStr)
	if err != nil {
		return concatIRI(baseStr, relative)
	}
	relURL, err := url.Parse(relative)
	if err != nil {
		return concatIRI(baseStr, relative)
	}
	if relURL.Scheme != "" {
		return relative
	}
	return baseURL.ResolveReference(relURL).String()
}

func concatIRI(baseStr, relative string) string {
	if strings.HasSuffix(baseStr, "/") {
		return baseStr + relative
	}
	if lastSlash := strings.LastIndex(baseStr, "/"); lastSlash >= 0 {
		return baseStr[:lastSlash+1] + relative
	}
	return baseStr + "/" + relative
}

// validateIRISyntax performs the structural well-formedness check §4.3's
// IRIref production asks for: not full RFC 3987 grammar validation (that is
// explicitly a Non-goal), just the checks a Turtle document's IRIs are
// realistically expected to pass — no raw '<'/'>', no control characters,
// and a scheme that looks like a scheme when one is present. An unencoded
// space is flagged earlier, during parseIRIRef's character scan, matching
// where the original reports it.
func validateIRISyntax(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	for i, r := range iri {
		if r < 0x20 {
			return fmt.Errorf("control character at byte %d in IRI %q", i, iri)
		}
		if r == '<' || r == '>' {
			return fmt.Errorf("unencoded %q in IRI %q", r, iri)
		}
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme != "" {
		first := parsed.Scheme[0]
		if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
			return fmt.Errorf("scheme must start with a letter in IRI %q", iri)
		}
	}
	return nil
}

// isRelativeIRI reports whether iri has no scheme component, i.e. it needs
// base-IRI resolution before use.
func isRelativeIRI(iri string) bool {
	parsed, err := url.Parse(iri)
	if err != nil {
		// Unparseable as a URL but not obviously schemed; treat as relative
		// so resolution (and its VERIFY_RELATIVE_URIS diagnostic) still runs.
		return !strings.Contains(iri, ":")
	}
	return parsed.Scheme == ""
}
