package rdf

import (
	"fmt"
	"io"
	"strings"
)

// turtleParser is the Grammar Engine (§4.3): it drives the Scanner
// Primitives over the Line Buffer, dispatching on lookahead to the
// production matching whatever construct starts at the cursor, and reports
// every namespace, comment and statement it recognizes through Handler.
type turtleParser struct {
	sc       *scanner
	lb       *lineBuffer
	handler  Handler
	ns       NamespaceTable
	factory  ValueFactory
	settings *Settings
	bridge   *errorSettingBridge
	opts     DecodeOptions

	tripleCount int64
	depth       int
}

func newTurtleParser(r io.Reader, handler Handler, opts DecodeOptions) *turtleParser {
	lb := newLineBuffer(r, int64(opts.MaxLineBytes))
	ns := newDefaultNamespaceTable()
	if opts.BaseURI != "" {
		ns.SetBaseURI(opts.BaseURI)
	}
	return &turtleParser{
		sc:       newScanner(lb, handler),
		lb:       lb,
		handler:  handler,
		ns:       ns,
		factory:  opts.Factory,
		settings: opts.Settings,
		bridge:   &errorSettingBridge{settings: opts.Settings, onWarning: opts.OnWarning},
		opts:     opts,
	}
}

// parse runs StartRDF, the statement loop, and EndRDF. EndRDF is guaranteed
// to run even when the loop fails partway through a document.
func (p *turtleParser) parse() (err error) {
	if err := p.handler.StartRDF(); err != nil {
		return wrapHandlerError(err)
	}
	defer func() {
		endErr := p.handler.EndRDF()
		if err == nil && endErr != nil {
			err = wrapHandlerError(endErr)
		}
	}()

	for {
		if cerr := checkDecodeContext(p.opts.Context); cerr != nil {
			return cerr
		}
		if err := p.sc.skipMultilineWSC(false); err != nil {
			return p.wrapStatementError(err)
		}
		_, ok, err := p.sc.peek()
		if err != nil {
			return p.wrapStatementError(err)
		}
		if !ok {
			return nil
		}
		// The current logical line is already buffered, so the bytes of it not
		// yet under the cursor are subtracted from totalConsumed at both ends.
		statementStart := p.lb.totalConsumed - int64(len(string(p.lb.line[p.lb.cursor():])))
		err = p.parseStatement()
		if err == nil && p.opts.MaxStatementBytes > 0 {
			statementEnd := p.lb.totalConsumed - int64(len(string(p.lb.line[p.lb.cursor():])))
			if statementEnd-statementStart > int64(p.opts.MaxStatementBytes) {
				err = ErrStatementTooLong
			}
		}
		if err != nil {
			return p.wrapStatementError(err)
		}
	}
}

// wrapStatementError attaches the current line number to err and, when
// OptDebugStatements is set, the current logical line's source text.
func (p *turtleParser) wrapStatementError(err error) error {
	wrapped := wrapParseError(p.lb.lineNumber, err)
	if wrapped == nil || !p.opts.DebugStatements {
		return wrapped
	}
	if pe, ok := wrapped.(*ParseError); ok && pe.Statement == "" {
		pe.Statement = string(p.lb.line)
	}
	return wrapped
}

func (p *turtleParser) parseStatement() error {
	r, ok, err := p.sc.peek()
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnexpectedEOF
	}
	if r == '@' {
		return p.parseAtDirective()
	}
	if isPNCharsBase(r) {
		handled, err := p.tryProcessDirective()
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}
	return p.parseTriples()
}

func (p *turtleParser) parseAtDirective() error {
	if _, err := p.sc.advance(); err != nil {
		return err
	}
	kw, err := p.readDirectiveKeyword()
	if err != nil {
		return err
	}
	switch kw {
	case "prefix":
		return p.parsePrefixID(true)
	case "base":
		return p.parseBase(true)
	default:
		return fmt.Errorf("%w: @%s", ErrUnknownDirective, kw)
	}
}

func (p *turtleParser) readDirectiveKeyword() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := p.sc.peek()
		if err != nil {
			return "", err
		}
		if !ok || !isPNCharsBase(r) {
			break
		}
		if _, err := p.sc.advance(); err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// tryProcessDirective recognizes the SPARQL-style "PREFIX"/"BASE" spelling
// (case-insensitive, no trailing '.'). The keyword match backs off as soon
// as a following name character would make the token something else, so
// "PREFIXED" is never mistaken for "PREFIX".
func (p *turtleParser) tryProcessDirective() (bool, error) {
	if ok, err := p.matchKeywordCI("PREFIX"); err != nil {
		return false, err
	} else if ok {
		if err := p.requireCaseInsensitiveDirectives(); err != nil {
			return false, err
		}
		return true, p.parsePrefixID(false)
	}
	if ok, err := p.matchKeywordCI("BASE"); err != nil {
		return false, err
	} else if ok {
		if err := p.requireCaseInsensitiveDirectives(); err != nil {
			return false, err
		}
		return true, p.parseBase(false)
	}
	return false, nil
}

func (p *turtleParser) requireCaseInsensitiveDirectives() error {
	if p.bridge.classify(diagDirectiveSpelling) == SeverityFatal {
		return fmt.Errorf("%w: SPARQL-style directive requires %s", ErrUnknownDirective, settingName(diagDirectiveSpelling))
	}
	if p.bridge.onWarning != nil {
		p.bridge.onWarning(&ParseError{Line: p.lb.lineNumber, Column: -1,
			Err: fmt.Errorf("SPARQL-style directive accepted under relaxed settings")})
	}
	return nil
}

func (p *turtleParser) matchKeywordCI(keyword string) (bool, error) {
	ok, err := p.sc.ensureAvailable()
	if err != nil || !ok {
		return false, err
	}
	for i := 0; i < len(keyword); i++ {
		r := p.lb.peekAt(i)
		if r < 0 || toUpperASCII(r) != rune(keyword[i]) {
			return false, nil
		}
	}
	if next := p.lb.peekAt(len(keyword)); next >= 0 && isNameChar(next) {
		return false, nil
	}
	for i := 0; i < len(keyword); i++ {
		if _, err := p.sc.advance(); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (p *turtleParser) matchKeywordCS(keyword string) (bool, error) {
	ok, err := p.sc.ensureAvailable()
	if err != nil || !ok {
		return false, err
	}
	for i := 0; i < len(keyword); i++ {
		r := p.lb.peekAt(i)
		if r != rune(keyword[i]) {
			return false, nil
		}
	}
	if next := p.lb.peekAt(len(keyword)); next >= 0 && isNameChar(next) {
		return false, nil
	}
	for i := 0; i < len(keyword); i++ {
		if _, err := p.sc.advance(); err != nil {
			return false, err
		}
	}
	return true, nil
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func (p *turtleParser) parsePrefixID(hasAt bool) error {
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return err
	}
	prefix, err := p.readPNPrefix()
	if err != nil {
		return err
	}
	if _, err := p.sc.verifyCharacterOrFail(':'); err != nil {
		return err
	}
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return err
	}
	lexical, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	resolved, err := p.resolveAndVerifyIRI(lexical)
	if err != nil {
		return err
	}
	p.ns.SetNamespace(prefix, resolved)
	if err := p.handler.HandleNamespace(prefix, resolved); err != nil {
		return wrapHandlerError(err)
	}
	if hasAt {
		return p.sc.verifyStatementEndsWithDot()
	}
	return nil
}

func (p *turtleParser) parseBase(hasAt bool) error {
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return err
	}
	lexical, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	resolved, err := p.resolveAndVerifyIRI(lexical)
	if err != nil {
		return err
	}
	p.ns.SetBaseURI(resolved)
	if hasAt {
		return p.sc.verifyStatementEndsWithDot()
	}
	return nil
}

func (p *turtleParser) readPNPrefix() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := p.sc.peek()
		if err != nil {
			return "", err
		}
		if !ok || !isNameChar(r) {
			break
		}
		if _, err := p.sc.advance(); err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// parseIRIRef consumes "<...>" and decodes \uXXXX/\UXXXXXXXX escapes,
// returning the still-unresolved lexical form.
func (p *turtleParser) parseIRIRef() (string, error) {
	if _, err := p.sc.verifyCharacterOrFail('<'); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		r, err := p.sc.advance()
		if err != nil {
			return "", err
		}
		if r == '>' {
			break
		}
		if r == '\n' {
			if err := p.bridge.report(diagMalformedIRI, p.lb.lineNumber,
				fmt.Errorf("%w: newline inside IRIREF", ErrInvalidIRI)); err != nil {
				return "", err
			}
		}
		if r == ' ' {
			if err := p.bridge.report(diagMalformedIRI, p.lb.lineNumber,
				fmt.Errorf("%w: IRI included an unencoded space", ErrInvalidIRI)); err != nil {
				return "", err
			}
		}
		if r == '\\' {
			esc, err := p.readIRIEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(esc)
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// readIRIEscape decodes the escape that follows a backslash inside an
// IRIREF. Only \u/\U are legal per the grammar; any other escape is an IRI
// string escape the original reports against VERIFY_URI_SYNTAX rather than
// rejecting outright - when non-fatal, the backslash is simply dropped and
// the marker character decoded through as itself.
func (p *turtleParser) readIRIEscape() (rune, error) {
	marker, err := p.sc.advance()
	if err != nil {
		return 0, err
	}
	var digits int
	switch marker {
	case 'u':
		digits = 4
	case 'U':
		digits = 8
	default:
		if err := p.bridge.report(diagMalformedIRI, p.lb.lineNumber,
			fmt.Errorf("%w: IRI includes string escapes: \\%c", ErrInvalidIRI, marker)); err != nil {
			return 0, err
		}
		return marker, nil
	}
	hex := make([]byte, 0, digits)
	for i := 0; i < digits; i++ {
		r, err := p.sc.advance()
		if err != nil {
			return 0, err
		}
		hex = append(hex, byte(r))
	}
	cp := decodeUChar(string(hex))
	if cp < 0 || !isValidUnicodeCodePoint(cp) {
		return 0, fmt.Errorf("%w: invalid unicode escape in IRIREF", ErrInvalidIRI)
	}
	return cp, nil
}

func (p *turtleParser) resolveAndVerifyIRI(lexical string) (string, error) {
	resolved := lexical
	if isRelativeIRI(lexical) {
		if p.ns.BaseURI() == "" {
			if err := p.bridge.report(diagRelativeIRI, p.lb.lineNumber,
				fmt.Errorf("%w: relative IRI %q with no base set", ErrInvalidIRI, lexical)); err != nil {
				return "", err
			}
		}
		resolved = p.ns.ResolveURI(lexical)
	}
	if err := validateIRISyntax(resolved); err != nil {
		if rerr := p.bridge.report(diagMalformedIRI, p.lb.lineNumber,
			fmt.Errorf("%w: %v", ErrInvalidIRI, err)); rerr != nil {
			return "", rerr
		}
	}
	return resolved, nil
}

func (p *turtleParser) enterNesting() error {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return fmt.Errorf("%w", ErrDepthExceeded)
	}
	return nil
}

func (p *turtleParser) exitNesting() { p.depth-- }

// parseTriples is the top-level triple production: either a subject
// followed by a predicateObjectList, or a blank-node property list
// standing in for the subject, optionally itself followed by one.
func (p *turtleParser) parseTriples() error {
	r, ok, err := p.sc.peek()
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnexpectedEOF
	}

	if r == '[' {
		subj, err := p.parseBlankNodePropertyList(nil, IRI{})
		if err != nil {
			return err
		}
		if err := p.sc.skipMultilineWSC(false); err != nil {
			return err
		}
		r2, ok2, err := p.sc.peek()
		if err != nil {
			return err
		}
		if ok2 && r2 != '.' {
			if err := p.parsePredicateObjectList(subj); err != nil {
				return err
			}
		}
		return p.sc.verifyStatementEndsWithDot()
	}

	subj, err := p.parseSubject()
	if err != nil {
		return err
	}
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return err
	}
	if err := p.parsePredicateObjectList(subj); err != nil {
		return err
	}
	return p.sc.verifyStatementEndsWithDot()
}

func (p *turtleParser) parsePredicateObjectList(subject Resource) error {
	for {
		pred, err := p.parsePredicate()
		if err != nil {
			return err
		}
		if err := p.sc.skipMultilineWSC(true); err != nil {
			return err
		}
		if err := p.parseObjectList(subject, pred); err != nil {
			return err
		}
		if err := p.sc.skipInlineWSC(); err != nil {
			return err
		}
		r, ok, err := p.sc.peek()
		if err != nil {
			return err
		}
		if !ok || r != ';' {
			return nil
		}
		for {
			if _, err := p.sc.advance(); err != nil {
				return err
			}
			if err := p.sc.skipMultilineWSC(false); err != nil {
				return err
			}
			r2, ok2, err := p.sc.peek()
			if err != nil {
				return err
			}
			if ok2 && r2 == ';' {
				continue
			}
			break
		}
		r3, ok3, err := p.sc.peek()
		if err != nil {
			return err
		}
		if !ok3 || r3 == '.' || r3 == ']' {
			return nil
		}
	}
}

func (p *turtleParser) parseObjectList(subject Resource, predicate IRI) error {
	for {
		if _, err := p.parseObject(subject, predicate); err != nil {
			return err
		}
		if err := p.sc.skipMultilineWSC(false); err != nil {
			return err
		}
		r, ok, err := p.sc.peek()
		if err != nil {
			return err
		}
		if !ok || r != ',' {
			return nil
		}
		if _, err := p.sc.advance(); err != nil {
			return err
		}
		if err := p.sc.skipMultilineWSC(true); err != nil {
			return err
		}
	}
}

func (p *turtleParser) reportStatement(subject Resource, predicate IRI, object Term) error {
	if p.opts.MaxTriples > 0 {
		p.tripleCount++
		if p.tripleCount > p.opts.MaxTriples {
			return fmt.Errorf("%w", ErrTripleLimitExceeded)
		}
	}
	stmt, err := p.factory.CreateStatement(subject, predicate, object)
	if err != nil {
		return err
	}
	if err := p.handler.HandleStatement(stmt); err != nil {
		return wrapHandlerError(err)
	}
	return nil
}

func (p *turtleParser) parseSubject() (Resource, error) {
	r, ok, err := p.sc.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch {
	case r == '(':
		return p.parseCollection(nil, IRI{})
	case r == '[':
		return p.parseBlankNodePropertyList(nil, IRI{})
	case r == '<':
		if p.settings.Get(AcceptTurtleStar) && p.peekIsTripleValue() {
			return p.parseTripleValue()
		}
		return p.parseURI()
	case r == '_':
		return p.parseNodeID()
	default:
		return p.parsePrefixedNameIRI()
	}
}

func (p *turtleParser) parsePredicate() (IRI, error) {
	r, ok, err := p.sc.peek()
	if err != nil {
		return IRI{}, err
	}
	if !ok {
		return IRI{}, ErrUnexpectedEOF
	}
	if r == 'a' {
		next := p.lb.peekAt(1)
		if next < 0 || isWhitespace(next) || next == '#' {
			if _, err := p.sc.advance(); err != nil {
				return IRI{}, err
			}
			return iriRDFType, nil
		}
	}
	if r == '<' {
		return p.parseURI()
	}
	return p.parsePrefixedNameIRI()
}

func (p *turtleParser) parsePrefixedNameIRI() (IRI, error) {
	prefix, err := p.readPNPrefix()
	if err != nil {
		return IRI{}, err
	}
	if _, err := p.sc.verifyCharacterOrFail(':'); err != nil {
		return IRI{}, err
	}
	ns, ok := p.ns.GetNamespace(prefix)
	if !ok {
		return IRI{}, p.bridge.fatal(p.lb.lineNumber, fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix))
	}
	local, err := p.readPNLocal()
	if err != nil {
		return IRI{}, err
	}
	return p.factory.CreateIRI(ns + local)
}

// readPNLocal reads a prefixed name's local part. A '.' only belongs to the
// local part if the run of name characters continues past it; a lone
// trailing '.' - end of buffered content, or followed by whitespace - backs
// off and is left for the enclosing statement's terminator instead. The
// same ambiguity, and the same resolution, applies to blank-node labels in
// parseNodeID.
func (p *turtleParser) readPNLocal() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := p.sc.peek()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		switch {
		case r == '\\':
			next := p.lb.peekAt(1)
			if next >= 0 && isValidPNLocalEscape(byte(next)) {
				p.sc.advance()
				p.sc.advance()
				b.WriteRune(next)
				continue
			}
			return b.String(), nil
		case r == '%':
			h1, h2 := p.lb.peekAt(1), p.lb.peekAt(2)
			if h1 >= 0 && h2 >= 0 && isHexDigit(byte(h1)) && isHexDigit(byte(h2)) {
				p.sc.advance()
				p.sc.advance()
				p.sc.advance()
				b.WriteByte('%')
				b.WriteRune(h1)
				b.WriteRune(h2)
				continue
			}
			return b.String(), nil
		case r == '.':
			if !p.trailingDotContinues() {
				return b.String(), nil
			}
			p.sc.advance()
			b.WriteRune('.')
		case isNameChar(r):
			p.sc.advance()
			b.WriteRune(r)
		default:
			return b.String(), nil
		}
	}
	return b.String(), nil
}

// trailingDotContinues reports whether the '.' at the cursor is followed by
// something that keeps it inside the current name/number token, rather
// than being the statement terminator.
func (p *turtleParser) trailingDotContinues() bool {
	next := p.lb.peekAt(1)
	if next < 0 {
		return false
	}
	return isNameChar(next) || next == '%' || next == '\\'
}

func (p *turtleParser) parseNodeID() (Resource, error) {
	if _, err := p.sc.verifyCharacterOrFail('_'); err != nil {
		return nil, err
	}
	if _, err := p.sc.verifyCharacterOrFail(':'); err != nil {
		return nil, err
	}
	r, ok, err := p.sc.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: expected blank node label after \"_:\"", ErrUnexpectedEOF)
	}
	if !(isNameStartChar(r) || (r >= '0' && r <= '9')) {
		return nil, fmt.Errorf("expected blank node label after \"_:\" but found %q", r)
	}
	var b strings.Builder
	for {
		r, ok, err := p.sc.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if r == '.' {
			if !p.trailingDotContinues() {
				break
			}
			p.sc.advance()
			b.WriteRune('.')
			continue
		}
		if !isNameChar(r) {
			break
		}
		p.sc.advance()
		b.WriteRune(r)
	}
	return p.factory.CreateNamedBlankNode(b.String())
}

// reportEnclosing reports the triple that holds a collection or blank-node
// property list in object position, as soon as its root node is known and
// before any of its own statements - mirroring the order the original
// parser emits these in. A zero predicate means the collection/property
// list is being parsed in subject position, which has no enclosing triple
// to report.
func (p *turtleParser) reportEnclosing(subject Resource, predicate IRI, object Term) error {
	if predicate.Value == "" {
		return nil
	}
	return p.reportStatement(subject, predicate, object)
}

// parseCollection parses "( object* )" into an rdf:first/rdf:rest list. An
// empty collection is rdf:nil. When enclosingPredicate is set, this
// collection is the object of "enclosingSubject enclosingPredicate"; that
// triple is reported via reportEnclosing before any list-cell statement.
func (p *turtleParser) parseCollection(enclosingSubject Resource, enclosingPredicate IRI) (Resource, error) {
	if _, err := p.sc.verifyCharacterOrFail('('); err != nil {
		return nil, err
	}
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	if err := p.sc.skipMultilineWSC(false); err != nil {
		return nil, err
	}
	r, ok, err := p.sc.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if r == ')' {
		if _, err := p.sc.advance(); err != nil {
			return nil, err
		}
		if err := p.reportEnclosing(enclosingSubject, enclosingPredicate, iriRDFNil); err != nil {
			return nil, err
		}
		return iriRDFNil, nil
	}

	head, err := p.factory.CreateBlankNode()
	if err != nil {
		return nil, err
	}
	if err := p.reportEnclosing(enclosingSubject, enclosingPredicate, head); err != nil {
		return nil, err
	}

	node := head
	for {
		if _, err := p.parseObject(node, iriRDFFirst); err != nil {
			return nil, err
		}
		if err := p.sc.skipMultilineWSC(false); err != nil {
			return nil, err
		}
		r, ok, err := p.sc.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		if r == ')' {
			if _, err := p.sc.advance(); err != nil {
				return nil, err
			}
			if err := p.reportStatement(node, iriRDFRest, iriRDFNil); err != nil {
				return nil, err
			}
			return head, nil
		}
		next, err := p.factory.CreateBlankNode()
		if err != nil {
			return nil, err
		}
		if err := p.reportStatement(node, iriRDFRest, next); err != nil {
			return nil, err
		}
		node = next
	}
}

// parseBlankNodePropertyList parses "[ predicateObjectList? ]" against a
// freshly minted blank node. When enclosingPredicate is set, this property
// list is the object of "enclosingSubject enclosingPredicate"; that triple
// is reported via reportEnclosing before the property list's own
// statements, mirroring the order the original parser emits these in.
func (p *turtleParser) parseBlankNodePropertyList(enclosingSubject Resource, enclosingPredicate IRI) (Resource, error) {
	if _, err := p.sc.verifyCharacterOrFail('['); err != nil {
		return nil, err
	}
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	node, err := p.factory.CreateBlankNode()
	if err != nil {
		return nil, err
	}
	if err := p.reportEnclosing(enclosingSubject, enclosingPredicate, node); err != nil {
		return nil, err
	}
	if err := p.sc.skipMultilineWSC(false); err != nil {
		return nil, err
	}
	r, ok, err := p.sc.peek()
	if err != nil {
		return nil, err
	}
	if ok && r != ']' {
		if err := p.parsePredicateObjectList(node); err != nil {
			return nil, err
		}
		if err := p.sc.skipMultilineWSC(false); err != nil {
			return nil, err
		}
	}
	if _, err := p.sc.verifyCharacterOrFail(']'); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *turtleParser) peekIsTripleValue() bool {
	return p.lb.peek() == '<' && p.lb.peekAt(1) == '<'
}

// parseTripleValue parses "<< subject predicate object >>" into an
// RDF-star triple term, available wherever an ordinary term is, including
// nested inside another triple term.
func (p *turtleParser) parseTripleValue() (TripleTerm, error) {
	if err := p.enterNesting(); err != nil {
		return TripleTerm{}, err
	}
	defer p.exitNesting()

	if _, err := p.sc.advance(); err != nil {
		return TripleTerm{}, err
	}
	if _, err := p.sc.advance(); err != nil {
		return TripleTerm{}, err
	}
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return TripleTerm{}, err
	}
	subj, err := p.parseSubject()
	if err != nil {
		return TripleTerm{}, err
	}
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return TripleTerm{}, err
	}
	pred, err := p.parsePredicate()
	if err != nil {
		return TripleTerm{}, err
	}
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return TripleTerm{}, err
	}
	obj, err := p.parseObjectValue()
	if err != nil {
		return TripleTerm{}, err
	}
	if err := p.sc.skipMultilineWSC(true); err != nil {
		return TripleTerm{}, err
	}
	if _, err := p.sc.verifyCharacterOrFail('>'); err != nil {
		return TripleTerm{}, err
	}
	if _, err := p.sc.verifyCharacterOrFail('>'); err != nil {
		return TripleTerm{}, err
	}
	return p.factory.CreateTriple(subj, pred, obj)
}

// parseObject parses a single object value of "subject predicate object" and
// reports that triple. A collection or blank-node property list reports the
// enclosing triple itself, as soon as its root node is known and before any
// of its own rdf:first/rdf:rest or predicateObjectList statements - mirroring
// the streaming order of the original parser, where the enclosing triple is
// always emitted before the nested structure is descended into. Every other
// kind of object value is reported here, after parsing it in full.
func (p *turtleParser) parseObject(subject Resource, predicate IRI) (Term, error) {
	r, ok, err := p.sc.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch r {
	case '(':
		return p.parseCollection(subject, predicate)
	case '[':
		return p.parseBlankNodePropertyList(subject, predicate)
	}
	obj, err := p.parseObjectValue()
	if err != nil {
		return nil, err
	}
	if err := p.reportStatement(subject, predicate, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseObjectValue parses an object term that is neither a collection nor a
// blank-node property list, without reporting any statement.
func (p *turtleParser) parseObjectValue() (Term, error) {
	r, ok, err := p.sc.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch {
	case r == '<':
		if p.settings.Get(AcceptTurtleStar) && p.peekIsTripleValue() {
			return p.parseTripleValue()
		}
		return p.parseURI()
	case r == '_':
		return p.parseNodeID()
	case r == '"', r == '\'':
		return p.parseQuotedLiteral()
	case r == '+', r == '-', r >= '0' && r <= '9':
		return p.parseNumber()
	default:
		return p.parseQNameOrBoolean()
	}
}

func (p *turtleParser) parseURI() (IRI, error) {
	lexical, err := p.parseIRIRef()
	if err != nil {
		return IRI{}, err
	}
	resolved, err := p.resolveAndVerifyIRI(lexical)
	if err != nil {
		return IRI{}, err
	}
	return p.factory.CreateIRI(resolved)
}

func (p *turtleParser) parseQNameOrBoolean() (Term, error) {
	if ok, err := p.matchKeywordCS("true"); err != nil {
		return nil, err
	} else if ok {
		return p.factory.CreateLiteral("true", "", iriXSDBoolean)
	}
	if ok, err := p.matchKeywordCS("false"); err != nil {
		return nil, err
	} else if ok {
		return p.factory.CreateLiteral("false", "", iriXSDBoolean)
	}
	return p.parsePrefixedNameIRI()
}

// parseQuotedLiteral parses a string literal, with an optional trailing
// "@lang" or "^^datatype" suffix.
func (p *turtleParser) parseQuotedLiteral() (Literal, error) {
	lexical, err := p.parseQuotedString()
	if err != nil {
		return Literal{}, err
	}
	r, ok, err := p.sc.peek()
	if err != nil {
		return Literal{}, err
	}
	if ok && r == '@' {
		if _, err := p.sc.advance(); err != nil {
			return Literal{}, err
		}
		lang, err := p.readLangTag()
		if err != nil {
			return Literal{}, err
		}
		if !isValidLangTag(lang) {
			if rerr := p.bridge.report(diagBadLanguageTag, p.lb.lineNumber,
				fmt.Errorf("invalid language tag %q", lang)); rerr != nil {
				return Literal{}, rerr
			}
		}
		return p.factory.CreateLiteral(lexical, lang, IRI{})
	}
	if ok && r == '^' && p.lb.peekAt(1) == '^' {
		if _, err := p.sc.advance(); err != nil {
			return Literal{}, err
		}
		if _, err := p.sc.advance(); err != nil {
			return Literal{}, err
		}
		dt, err := p.parseDatatypeIRI()
		if err != nil {
			return Literal{}, err
		}
		return p.factory.CreateLiteral(lexical, "", dt)
	}
	return p.factory.CreateLiteral(lexical, "", IRI{})
}

func (p *turtleParser) parseDatatypeIRI() (IRI, error) {
	r, ok, err := p.sc.peek()
	if err != nil {
		return IRI{}, err
	}
	if !ok {
		return IRI{}, ErrUnexpectedEOF
	}
	if r == '<' {
		return p.parseURI()
	}
	return p.parsePrefixedNameIRI()
}

func (p *turtleParser) readLangTag() (string, error) {
	var b strings.Builder
	for {
		r, ok, err := p.sc.peek()
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if _, err := p.sc.advance(); err != nil {
				return "", err
			}
			b.WriteRune(r)
			continue
		}
		break
	}
	return b.String(), nil
}

// parseQuotedString consumes the opening and closing quote runs of a
// string literal and decodes escapes in the content between them. The
// closing run's position comes from lineBuffer.takeQuoteEnd, already
// recorded when the enclosing logical line was assembled; a string left
// open at end of input never gets an entry there, and that absence becomes
// ErrUnexpectedEOF here rather than an empty match.
func (p *turtleParser) parseQuotedString() (string, error) {
	quote, ok, err := p.sc.peek()
	if err != nil {
		return "", err
	}
	if !ok || (quote != '"' && quote != '\'') {
		return "", fmt.Errorf("expected string literal")
	}
	triple := p.lb.peekAt(1) == quote && p.lb.peekAt(2) == quote
	openLen := 1
	if triple {
		openLen = 3
	}
	for i := 0; i < openLen; i++ {
		if _, err := p.sc.advance(); err != nil {
			return "", err
		}
	}
	contentStart := p.lb.cursor()
	end, ok := p.lb.takeQuoteEnd()
	if !ok {
		return "", ErrUnexpectedEOF
	}
	closeLen := 1
	if triple {
		closeLen = 3
	}
	contentEnd := end - closeLen + 1
	if contentEnd < contentStart {
		contentEnd = contentStart
	}
	raw := p.lb.sliceFrom(contentStart, contentEnd)
	p.lb.setCursor(end + 1)

	decoded, err := UnescapeString(raw)
	if err != nil {
		if rerr := p.bridge.report(diagBadEscapeSequence, p.lb.lineNumber,
			fmt.Errorf("%w: %v", ErrInvalidLiteral, err)); rerr != nil {
			return "", rerr
		}
		return raw, nil
	}
	return decoded, nil
}

// parseNumber parses an integer, decimal or double numeric literal. The
// decimal point is only consumed when it does not look like a statement
// terminator: it is left alone when it is the last character of the
// buffered line, or is immediately followed by whitespace.
func (p *turtleParser) parseNumber() (Literal, error) {
	start := p.lb.cursor()
	r, _, err := p.sc.peek()
	if err != nil {
		return Literal{}, err
	}
	if r == '+' || r == '-' {
		if _, err := p.sc.advance(); err != nil {
			return Literal{}, err
		}
	}
	if err := p.consumeDigits(); err != nil {
		return Literal{}, err
	}

	isDecimal := false
	r2, ok2, err := p.sc.peek()
	if err != nil {
		return Literal{}, err
	}
	if ok2 && r2 == '.' && p.numberDotContinues() {
		isDecimal = true
		if _, err := p.sc.advance(); err != nil {
			return Literal{}, err
		}
		if err := p.consumeDigits(); err != nil {
			return Literal{}, err
		}
	}

	isDouble := false
	r3, ok3, err := p.sc.peek()
	if err != nil {
		return Literal{}, err
	}
	if ok3 && (r3 == 'e' || r3 == 'E') {
		isDouble = true
		if _, err := p.sc.advance(); err != nil {
			return Literal{}, err
		}
		r4, ok4, err := p.sc.peek()
		if err != nil {
			return Literal{}, err
		}
		if ok4 && (r4 == '+' || r4 == '-') {
			if _, err := p.sc.advance(); err != nil {
				return Literal{}, err
			}
		}
		if err := p.consumeDigits(); err != nil {
			return Literal{}, err
		}
	}

	lexical := p.lb.sliceFrom(start, p.lb.cursor())
	dt := iriXSDInteger
	switch {
	case isDouble:
		dt = iriXSDDouble
	case isDecimal:
		dt = iriXSDDecimal
	}
	return p.factory.CreateLiteral(lexical, "", dt)
}

func (p *turtleParser) consumeDigits() error {
	for {
		r, ok, err := p.sc.peek()
		if err != nil {
			return err
		}
		if !ok || r < '0' || r > '9' {
			return nil
		}
		if _, err := p.sc.advance(); err != nil {
			return err
		}
	}
}

func (p *turtleParser) numberDotContinues() bool {
	next := p.lb.peekAt(1)
	if next < 0 {
		return false
	}
	return !isWhitespace(next)
}
