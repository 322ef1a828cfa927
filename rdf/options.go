package rdf

import "context"

// Option configures a decode via functional options, mirroring the
// Opt*-constructor pattern api.go used for the teacher's multi-format
// switchboard, narrowed here to this module's Turtle-only DecodeOptions.
type Option func(*DecodeOptions)

// OptContext sets the context used for cancellation checks during decoding.
func OptContext(ctx context.Context) Option {
	return func(o *DecodeOptions) { o.Context = ctx }
}

// OptMaxLineBytes caps the size of a single logical line.
func OptMaxLineBytes(maxBytes int) Option {
	return func(o *DecodeOptions) { o.MaxLineBytes = maxBytes }
}

// OptMaxStatementBytes caps the size of a single statement (directive or
// triple, including any property list / collection it contains).
func OptMaxStatementBytes(maxBytes int) Option {
	return func(o *DecodeOptions) { o.MaxStatementBytes = maxBytes }
}

// OptMaxDepth caps collection/blank-node-property-list nesting depth.
func OptMaxDepth(maxDepth int) Option {
	return func(o *DecodeOptions) { o.MaxDepth = maxDepth }
}

// OptMaxTriples caps the number of statements a decode will report before
// failing with ErrTripleLimitExceeded. Zero means unlimited.
func OptMaxTriples(maxTriples int64) Option {
	return func(o *DecodeOptions) { o.MaxTriples = maxTriples }
}

// OptSafeLimits applies limits suitable for parsing untrusted input.
func OptSafeLimits() Option {
	return func(o *DecodeOptions) {
		o.MaxLineBytes = DefaultMaxLineBytes
		o.MaxStatementBytes = DefaultMaxStatementBytes
		o.MaxDepth = DefaultMaxDepth
		o.MaxTriples = 1_000_000
	}
}

// OptBaseURI seeds the namespace table's base IRI, as if the document
// opened with "@base <BaseURI> .".
func OptBaseURI(iri string) Option {
	return func(o *DecodeOptions) { o.BaseURI = iri }
}

// OptSetting turns a named Setting on or off, overriding its default.
func OptSetting(name Setting, value bool) Option {
	return func(o *DecodeOptions) {
		if o.Settings == nil {
			o.Settings = DefaultSettings()
		}
		o.Settings.Set(name, value)
	}
}

// OptOnWarning registers a callback invoked for every diagnostic the Error &
// Setting Bridge classifies as a warning rather than a fatal error.
func OptOnWarning(fn func(*ParseError)) Option {
	return func(o *DecodeOptions) { o.OnWarning = fn }
}

// OptFactory overrides the ValueFactory terms are constructed through.
func OptFactory(f ValueFactory) Option {
	return func(o *DecodeOptions) { o.Factory = f }
}

// OptDebugStatements attaches to parse errors the source text of the logical
// line being parsed when the error occurred.
func OptDebugStatements() Option {
	return func(o *DecodeOptions) { o.DebugStatements = true }
}
