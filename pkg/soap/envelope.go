package soap

import "bytes"

// BuildEnvelope wraps an operation body in the SOAP 1.1 envelope
// skeleton. The operation name becomes the outer body element,
// qualified with the Plunet API namespace. innerXML must already be
// escaped; BuildEnvelope inserts it verbatim.
func BuildEnvelope(operation, innerXML string) string {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString(`<soap:Envelope xmlns:soap="` + EnvelopeNamespace + `" xmlns:api="` + APINamespace + `">`)
	buf.WriteString(`<soap:Body>`)
	buf.WriteString(`<api:` + operation + `>`)
	buf.WriteString(innerXML)
	buf.WriteString(`</api:` + operation + `>`)
	buf.WriteString(`</soap:Body>`)
	buf.WriteString(`</soap:Envelope>`)
	return buf.String()
}
