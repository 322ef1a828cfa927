package rdf

import (
	"strings"
	"testing"
)

func TestSimpleValueFactoryBlankNodeCounterDefaultPrefix(t *testing.T) {
	f := NewSimpleValueFactory(DefaultSettings())
	bn, err := f.CreateBlankNode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bn.ID != "b1" {
		t.Fatalf("expected default prefix %q, got %q", "b1", bn.ID)
	}
}

func TestOptUUIDBlankNodePrefixSaltsGeneratedLabels(t *testing.T) {
	f := NewSimpleValueFactory(DefaultSettings(), OptUUIDBlankNodePrefix())
	bn, err := f.CreateBlankNode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasPrefix(bn.ID, "b") {
		t.Fatalf("expected a UUID-salted prefix, got the bare default %q", bn.ID)
	}
	if !strings.HasPrefix(bn.ID, "u") || !strings.HasSuffix(bn.ID, "b1") {
		t.Fatalf("expected a label shaped like u<hex>b1, got %q", bn.ID)
	}
}

func TestOptUUIDBlankNodePrefixAvoidsCollisionsAcrossDocuments(t *testing.T) {
	input := "[] <http://example.org/p> <http://example.org/o> .\n"

	f1 := NewSimpleValueFactory(DefaultSettings(), OptUUIDBlankNodePrefix())
	c1 := decodeOK(t, input, OptFactory(f1))

	f2 := NewSimpleValueFactory(DefaultSettings(), OptUUIDBlankNodePrefix())
	c2 := decodeOK(t, input, OptFactory(f2))

	bn1 := c1.Statements[0].Subject.(BlankNode)
	bn2 := c2.Statements[0].Subject.(BlankNode)
	if bn1.ID == bn2.ID {
		t.Fatalf("expected independently-salted factories to mint distinct labels, both got %q", bn1.ID)
	}
}
