package rdf

import "testing"

func TestIRIString(t *testing.T) {
	iri := IRI{Value: "http://example.org/s"}
	if iri.String() != "http://example.org/s" {
		t.Fatalf("unexpected IRI string: %s", iri.String())
	}
	if iri.Kind() != TermIRI {
		t.Fatalf("unexpected kind: %v", iri.Kind())
	}
}

func TestBlankNodeString(t *testing.T) {
	bn := BlankNode{ID: "b1"}
	if bn.String() != "_:b1" {
		t.Fatalf("unexpected blank node string: %s", bn.String())
	}
}

func TestLiteralStringPlain(t *testing.T) {
	lit := Literal{Lexical: "hello"}
	if lit.String() != `"hello"` {
		t.Fatalf("unexpected literal string: %s", lit.String())
	}
}

func TestLiteralStringLang(t *testing.T) {
	lit := Literal{Lexical: "hello", Lang: "en"}
	if lit.String() != `"hello"@en` {
		t.Fatalf("unexpected literal string: %s", lit.String())
	}
}

func TestLiteralStringDatatype(t *testing.T) {
	lit := Literal{Lexical: "42", Datatype: iriXSDInteger}
	want := `"42"^^<` + vocabXSDInteger + `>`
	if lit.String() != want {
		t.Fatalf("unexpected literal string: %s", lit.String())
	}
}

func TestTripleTermString(t *testing.T) {
	tt := TripleTerm{
		S: IRI{Value: "http://example.org/s"},
		P: IRI{Value: "http://example.org/p"},
		O: IRI{Value: "http://example.org/o"},
	}
	want := "<<http://example.org/s http://example.org/p http://example.org/o>>"
	if tt.String() != want {
		t.Fatalf("unexpected triple term string: %s", tt.String())
	}
}

func TestStatementAsTripleTerm(t *testing.T) {
	stmt := Statement{
		Subject:   IRI{Value: "http://example.org/s"},
		Predicate: IRI{Value: "http://example.org/p"},
		Object:    IRI{Value: "http://example.org/o"},
	}
	tt := stmt.AsTripleTerm()
	if tt.S != stmt.Subject || tt.P != stmt.Predicate || tt.O != stmt.Object {
		t.Fatalf("conversion lost fields: %+v", tt)
	}
}

func TestResourceMarkerInterface(t *testing.T) {
	var _ Resource = IRI{}
	var _ Resource = BlankNode{}
	var _ Resource = TripleTerm{}
}
