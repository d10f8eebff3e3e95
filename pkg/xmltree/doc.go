// Package xmltree converts raw SOAP response XML into a generic,
// loosely-typed tree and offers typed extraction helpers over it.
//
// The remote API is inconsistent about response shape: the same
// logical payload may arrive at the top level, nested under a
// `return` or `data` wrapper, with or without namespace prefixes, and
// with field names whose capitalization varies between operations and
// API versions. Parsing is therefore tolerant by construction:
//
//   - Parse never fails; unparsable input yields an empty tree.
//   - Namespace prefixes are discarded, so soap:Envelope and Envelope
//     land under the same key.
//   - Repeated sibling tags collapse into an ordered list.
//   - Typed helpers (AsInteger, AsString, ...) return nil/absent for
//     missing or malformed values instead of errors, while always
//     reporting the response's status code and message.
package xmltree
