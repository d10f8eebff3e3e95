package soap

import "strings"

// SOAP namespace URIs.
const (
	// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

	// APINamespace is the Plunet API XML namespace used for operation
	// elements and SOAPAction URIs.
	APINamespace = "http://API.Integration/"
)

// ContentType is the media type sent with every SOAP 1.1 request.
const ContentType = "text/xml; charset=utf-8"

// Action returns the fully-qualified SOAPAction URI for an operation.
func Action(operation string) string {
	return APINamespace + operation
}

// ServiceURL joins a base endpoint with a service name. Each remote
// service (PlunetAPI, DataCustomer30, DataOrder30, ...) lives at its
// own path under the shared endpoint.
func ServiceURL(base, service string) string {
	return strings.TrimRight(base, "/") + "/" + service
}

// Fault is an application-independent SOAP fault extracted from a
// response body. It covers the SOAP 1.1 shape (faultcode/faultstring)
// and the text of a SOAP 1.2 Reason when the server uses that form.
type Fault struct {
	Code    string
	Message string
	Detail  string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Code != "" {
		return f.Code + ": " + f.Message
	}
	return f.Message
}
