package rdf

// Well-known vocabulary IRIs the Grammar Engine produces on its own,
// without going through the namespace table: rdf:type (the "a" keyword),
// the rdf:first/rdf:rest/rdf:nil collection machinery, and the xsd
// datatypes assigned to unadorned numbers and booleans.
const (
	rdfNS   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNS   = "http://www.w3.org/2001/XMLSchema#"

	vocabRDFType = rdfNS + "type"
	vocabRDFFirst = rdfNS + "first"
	vocabRDFRest  = rdfNS + "rest"
	vocabRDFNil   = rdfNS + "nil"

	vocabXSDInteger = xsdNS + "integer"
	vocabXSDDecimal = xsdNS + "decimal"
	vocabXSDDouble  = xsdNS + "double"
	vocabXSDBoolean = xsdNS + "boolean"
	vocabXSDString  = xsdNS + "string"

	vocabRDFLangString = rdfNS + "langString"
)

var (
	iriRDFType = IRI{Value: vocabRDFType}
	iriRDFFirst = IRI{Value: vocabRDFFirst}
	iriRDFRest  = IRI{Value: vocabRDFRest}
	iriRDFNil   = IRI{Value: vocabRDFNil}

	iriXSDInteger = IRI{Value: vocabXSDInteger}
	iriXSDDecimal = IRI{Value: vocabXSDDecimal}
	iriXSDDouble  = IRI{Value: vocabXSDDouble}
	iriXSDBoolean = IRI{Value: vocabXSDBoolean}
)
