package rdf

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMaxTriplesLimit(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n")
	}
	input := strings.Join(lines, "")

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxTriples(5))
	if err == nil {
		t.Fatal("expected error for exceeding MaxTriples limit")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !errors.Is(parseErr.Err, ErrTripleLimitExceeded) {
		t.Fatalf("expected ErrTripleLimitExceeded, got: %v", parseErr.Err)
	}
	if len(c.Statements) != 5 {
		t.Fatalf("expected 5 statements before the limit fired, got %d", len(c.Statements))
	}
}

func TestMaxDepthLimitCollection(t *testing.T) {
	depth := 5
	input := strings.Repeat("(", depth) + "<http://example.org/o>" + strings.Repeat(")", depth) + " .\n"
	input = "<http://example.org/s> <http://example.org/p> " + input

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxDepth(3))
	if err == nil {
		t.Fatal("expected error for exceeding MaxDepth limit")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !errors.Is(parseErr.Err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got: %v", parseErr.Err)
	}
}

func TestMaxDepthLimitBlankNodeList(t *testing.T) {
	depth := 5
	input := strings.Repeat("[ <http://example.org/p> ", depth) + "<http://example.org/o>" + strings.Repeat(" ]", depth) + " .\n"
	input = "<http://example.org/s> <http://example.org/p> " + input

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxDepth(3))
	if err == nil {
		t.Fatal("expected error for exceeding MaxDepth limit")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !errors.Is(parseErr.Err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got: %v", parseErr.Err)
	}
}

func TestMaxDepthLimitQuotedTriple(t *testing.T) {
	depth := 5
	input := strings.Repeat("<< <http://example.org/s> <http://example.org/p> ", depth) +
		"<http://example.org/o>" + strings.Repeat(" >>", depth) +
		" <http://example.org/p2> <http://example.org/o2> .\n"

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxDepth(3), OptSetting(AcceptTurtleStar, true))
	if err == nil {
		t.Fatal("expected error for exceeding MaxDepth limit")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !errors.Is(parseErr.Err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got: %v", parseErr.Err)
	}
}

func TestMaxStatementBytesLimit(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o-that-is-quite-long-on-purpose> .\n"

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxStatementBytes(20))
	if err == nil {
		t.Fatal("expected error for exceeding MaxStatementBytes")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !errors.Is(parseErr.Err, ErrStatementTooLong) {
		t.Fatalf("expected ErrStatementTooLong, got: %v", parseErr.Err)
	}
}

func TestMaxStatementBytesAllowsShortStatements(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n"

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxStatementBytes(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(c.Statements))
	}
}

func TestContextCancellation(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n")
	}
	input := strings.Join(lines, "")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()
	time.Sleep(2 * time.Millisecond)

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptContext(ctx))
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got: %v", err)
	}
}

func TestSafeLimitsOption(t *testing.T) {
	var opts DecodeOptions
	OptSafeLimits()(&opts)

	if opts.MaxLineBytes <= 0 || opts.MaxStatementBytes <= 0 || opts.MaxDepth <= 0 || opts.MaxTriples <= 0 {
		t.Fatalf("expected OptSafeLimits to set positive limits, got %+v", opts)
	}
}

func TestErrorLineNumberTracking(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n" +
		"<http://example.org/s2> <http://example.org/p2> <http://example.org/o2>\n"

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c)
	if err == nil {
		t.Fatal("expected error for missing dot")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if parseErr.Line != 2 {
		t.Errorf("expected line 2, got %d", parseErr.Line)
	}
	// Each triple is reported as soon as its object is parsed, so the second
	// triple is reported before its missing dot is detected.
	if len(c.Statements) != 2 {
		t.Fatalf("expected both triples to have been reported before the error, got %d", len(c.Statements))
	}
}

func TestFunctionalOptionsComposeMaxTriplesAndMaxDepth(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n" +
		"<http://example.org/s> <http://example.org/p> <http://example.org/o2> .\n"

	c := NewStatementCollector()
	err := Decode(strings.NewReader(input), c, OptMaxTriples(1), OptMaxDepth(50))
	if err == nil {
		t.Fatal("expected error for exceeding MaxTriples")
	}
	if len(c.Statements) != 1 {
		t.Fatalf("expected 1 statement before the limit fired, got %d", len(c.Statements))
	}
}
