// Package requestlog records the SOAP exchanges performed against the
// remote API. Entries keep truncated copies of both bodies so a failed
// translation can be diagnosed without re-running the call.
package requestlog

import (
	"time"

	"github.com/google/uuid"

	"github.com/flowbridge/plunet/pkg/util"
)

// Entry is one recorded SOAP exchange.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Operation  string    `json:"operation"`
	Service    string    `json:"service"`
	SOAPAction string    `json:"soapAction"`
	URL        string    `json:"url"`

	RequestBody  string `json:"requestBody"`
	ResponseBody string `json:"responseBody"`

	// StatusCode is the application-level status from the response, when
	// one was present.
	StatusCode *int `json:"statusCode,omitempty"`
	// HTTPStatus is the transport-level status; 0 when the request never
	// reached the server.
	HTTPStatus int `json:"httpStatus"`

	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"`
	IsFault    bool   `json:"isFault"`
	FaultCode  string `json:"faultCode,omitempty"`
}

// NewEntry stamps a fresh entry for one exchange, truncating both
// bodies to the log size limit.
func NewEntry(operation, service, soapAction, url, request string) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Operation:   operation,
		Service:     service,
		SOAPAction:  soapAction,
		URL:         url,
		RequestBody: util.Truncate(request, util.MaxLogBodySize),
	}
}

// Finish fills in the outcome side of the entry.
func (e *Entry) Finish(response string, started time.Time) {
	e.ResponseBody = util.Truncate(response, util.MaxLogBodySize)
	e.DurationMs = time.Since(started).Milliseconds()
}
