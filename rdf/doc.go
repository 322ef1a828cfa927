// Package rdf implements a streaming parser for RDF-1.1 Turtle, including
// the "<< s p o >>" RDF-star quoted-triple-term extension.
//
// Decode runs the Grammar Engine over a reader in push mode, reporting
// namespaces, comments and statements to a Handler as it recognizes them:
//
//	err := rdf.Decode(strings.NewReader(input), rdf.HandlerFuncs{
//		OnStatement: func(stmt rdf.Statement) error {
//			// process stmt.Subject, stmt.Predicate, stmt.Object
//			return nil
//		},
//	})
//
// Reader wraps the same engine in a pull-style NewReader/.Next() loop for
// callers who would rather iterate than implement a Handler:
//
//	r := rdf.NewReader(strings.NewReader(input))
//	defer r.Close()
//	for {
//		stmt, err := r.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			// handle error
//		}
//	}
//
// Behavior that deviates from strict Turtle - SPARQL-style PREFIX/BASE,
// RDF-star, relaxed IRI/language-tag/datatype verification - is governed
// by named Settings rather than format variants; see Setting and
// DecodeOptions. Parsing untrusted input should set OptSafeLimits.
package rdf
