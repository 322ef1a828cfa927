package rdf

import "io"

// Decode runs the Grammar Engine over r, reporting every namespace,
// comment and statement it finds to handler, in push mode, per §6's
// StartRDF/EndRDF lifecycle: handler.StartRDF is called before the first
// event and handler.EndRDF is guaranteed to run even when parsing fails
// partway through, mirroring the teacher's Parse entry point narrowed to
// this module's single format.
func Decode(r io.Reader, handler Handler, opts ...Option) error {
	options := DefaultDecodeOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options = normalizeDecodeOptions(options)

	p := newTurtleParser(r, handler, options)
	return p.parse()
}

// Reader is a pull-style convenience wrapper over Decode's push Handler,
// for callers who want a teacher-style NewReader/.Next() loop instead of
// writing a Handler. It runs the full push-mode parse on a background
// goroutine and relays statements to Next() through a channel, so Close
// must be called once the caller stops iterating early.
type Reader struct {
	stmts  chan Statement
	errs   chan error
	done   chan struct{}
	closed bool
}

// NewReader starts decoding r and returns a Reader that yields one
// Statement per call to Next.
func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := &Reader{
		stmts: make(chan Statement, 16),
		errs:  make(chan error, 1),
		done:  make(chan struct{}),
	}
	go rd.run(r, opts)
	return rd
}

func (rd *Reader) run(r io.Reader, opts []Option) {
	defer close(rd.stmts)
	handler := HandlerFuncs{
		OnStatement: func(stmt Statement) error {
			select {
			case rd.stmts <- stmt:
				return nil
			case <-rd.done:
				return wrapHandlerError(io.EOF)
			}
		},
	}
	if err := Decode(r, handler, opts...); err != nil {
		rd.errs <- err
	}
}

// Next returns the next statement, or io.EOF once the document (or an
// early Close) has been fully consumed. Any parse failure is returned on
// the call after the last successfully decoded statement.
func (rd *Reader) Next() (Statement, error) {
	stmt, ok := <-rd.stmts
	if ok {
		return stmt, nil
	}
	select {
	case err := <-rd.errs:
		return Statement{}, err
	default:
		return Statement{}, io.EOF
	}
}

// Close stops the in-flight decode, if any, and discards any statements it
// has already buffered.
func (rd *Reader) Close() error {
	if rd.closed {
		return nil
	}
	rd.closed = true
	close(rd.done)
	for range rd.stmts {
	}
	return nil
}
