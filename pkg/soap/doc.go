// Package soap implements the SOAP 1.1 protocol layer of the Plunet
// connector: parameter-to-wire coercion, XML escaping, envelope
// construction, the fault model, and the HTTP transport.
//
// The package is deliberately low-level and stateless. Request bodies
// are assembled as strings (the remote deserializer is strict about
// the exact tag set per operation, so marshaling through struct tags
// would fight the per-operation parameter tables), wrapped by
// BuildEnvelope, and posted by Client.Send. Response interpretation
// lives in pkg/xmltree and pkg/executor.
//
// # Errors
//
// Client.Send separates the two failure surfaces a caller must be
// able to distinguish:
//
//   - *TransportError: the server could not be reached, the request
//     timed out, or the response body could not be read.
//   - *HTTPError: the server replied, but with an HTTP error status.
//     The response body is still returned so the caller can check it
//     for a SOAP fault before giving up.
package soap
