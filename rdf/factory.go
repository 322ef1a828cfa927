package rdf

import (
	"fmt"

	"github.com/google/uuid"
)

// ValueFactory is the RDF value factory: the external collaborator that
// constructs IRIs, literals, blank nodes, triples and statements, per §6.
// Any operation may raise a fatal parse error; SimpleValueFactory's
// operations never do, but the interface leaves room for a factory that
// validates as it constructs.
type ValueFactory interface {
	CreateIRI(value string) (IRI, error)
	CreateLiteral(lexical, lang string, datatype IRI) (Literal, error)
	CreateBlankNode() (BlankNode, error)
	CreateNamedBlankNode(label string) (BlankNode, error)
	CreateTriple(s Resource, p IRI, o Term) (TripleTerm, error)
	CreateStatement(s Resource, p IRI, o Term) (Statement, error)
}

// SimpleValueFactory is the default ValueFactory. Its blank-node dispenser
// guarantees that repeated occurrences of the same "_:x" label within one
// document denote the same BlankNode value (spec.md §8), and that
// collection/property-list heads get fresh, never-repeating labels.
type SimpleValueFactory struct {
	settings SettingRegistry
	named    map[string]BlankNode
	counter  int
	prefix   string
}

// FactoryOption configures a SimpleValueFactory.
type FactoryOption func(*SimpleValueFactory)

// OptUUIDBlankNodePrefix salts every generated blank-node label with a
// random per-document UUID segment instead of the bare "b" counter prefix,
// so blank nodes minted by two independent parses never collide once
// merged into one store.
func OptUUIDBlankNodePrefix() FactoryOption {
	return func(f *SimpleValueFactory) {
		f.prefix = "u" + uuid.NewString()[:8] + "b"
	}
}

// NewSimpleValueFactory returns the default ValueFactory, consulting
// settings for PRESERVE_BNODE_IDS.
func NewSimpleValueFactory(settings SettingRegistry, opts ...FactoryOption) *SimpleValueFactory {
	f := &SimpleValueFactory{
		settings: settings,
		named:    make(map[string]BlankNode, 8),
		prefix:   "b",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateIRI constructs an IRI term from an already-resolved, already-decoded
// value.
func (f *SimpleValueFactory) CreateIRI(value string) (IRI, error) {
	return IRI{Value: value}, nil
}

// CreateLiteral constructs a literal term. An empty lang and a zero-value
// datatype together mean xsd:string.
func (f *SimpleValueFactory) CreateLiteral(lexical, lang string, datatype IRI) (Literal, error) {
	return Literal{Lexical: lexical, Lang: lang, Datatype: datatype}, nil
}

// CreateBlankNode mints a fresh, never-before-seen blank node (used for
// "[]" and collection list heads).
func (f *SimpleValueFactory) CreateBlankNode() (BlankNode, error) {
	f.counter++
	return BlankNode{ID: fmt.Sprintf("%s%d", f.prefix, f.counter)}, nil
}

// CreateNamedBlankNode maps a source "_:label" through the dispenser: the
// same label always yields the same BlankNode within one factory's
// lifetime. When PRESERVE_BNODE_IDS is off, the source label is discarded
// in favor of an internally generated identifier (still stable per label),
// which avoids collisions between source labels and CreateBlankNode's own
// generated sequence.
func (f *SimpleValueFactory) CreateNamedBlankNode(label string) (BlankNode, error) {
	if bn, ok := f.named[label]; ok {
		return bn, nil
	}
	var bn BlankNode
	if f.settings.Get(PreserveBNodeIDs) {
		bn = BlankNode{ID: label}
	} else {
		f.counter++
		bn = BlankNode{ID: fmt.Sprintf("%s%d", f.prefix, f.counter)}
	}
	f.named[label] = bn
	return bn, nil
}

// CreateTriple constructs an RDF-star triple term.
func (f *SimpleValueFactory) CreateTriple(s Resource, p IRI, o Term) (TripleTerm, error) {
	return TripleTerm{S: s, P: p, O: o}, nil
}

// CreateStatement constructs a reportable statement.
func (f *SimpleValueFactory) CreateStatement(s Resource, p IRI, o Term) (Statement, error) {
	return Statement{Subject: s, Predicate: p, Object: o}, nil
}
