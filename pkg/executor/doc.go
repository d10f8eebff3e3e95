// Package executor turns operation descriptors and loosely-typed
// parameter maps into SOAP calls against the remote API and classifies
// what comes back.
//
// A call flows through four stages: obtain a session token, serialize
// the request body from the descriptor's parameter order, send the
// envelope, and classify the response (SOAP fault, application status
// code, HTTP failure, or success). Benign status codes configured on
// the descriptor or the executor are treated as empty results rather
// than errors. A fault reporting an invalid session invalidates the
// cached token and the call is retried once with a fresh one.
package executor
