package executor

import (
	"strings"

	"github.com/flowbridge/plunet/pkg/soap"
)

// SessionParam is the parameter name under which the session token is
// sent. It is injected automatically; callers never supply it.
const SessionParam = "UUID"

// nullFlagParam, when truthy among the call parameters, makes empty
// parameter values serialize as empty tags instead of being omitted.
const nullFlagParam = "enableNullOrEmptyValues"

// Params are the loosely-typed inputs of one call, keyed by the remote
// parameter name.
type Params map[string]any

// Operation describes one remote operation: where it lives, how its
// parameters serialize, and how its response parses.
type Operation struct {
	// Name is the remote operation name, e.g. "getCustomerObject".
	Name string
	// Service is the service path the operation is exposed under,
	// e.g. "DataCustomer30".
	Service string
	// ParamOrder lists the parameter names in wire order. When it names
	// SessionParam the token goes in that position, otherwise it is
	// sent first.
	ParamOrder []string
	// NumericBools names the parameters whose boolean values serialize
	// as "1"/"0" instead of "true"/"false".
	NumericBools []string
	// BenignStatusCodes are non-zero status codes that mean "nothing
	// there" rather than failure for this operation.
	BenignStatusCodes []int
	// NoSession skips token injection; used by the authentication
	// operations themselves.
	NoSession bool
	// BuildBody overrides the default parameter serialization, for
	// operations that send a nested object instead of a flat list.
	BuildBody func(op Operation, params Params, token string) (string, error)
	// Parse turns the raw response into the operation's typed result.
	// Nil means the caller only cares about the status outcome.
	Parse func(raw string) any
}

// defaultBody serializes params in the descriptor's wire order. Empty
// values are omitted unless the call carries a truthy
// enableNullOrEmptyValues flag, in which case an explicitly supplied
// empty value becomes an empty tag. The session token is emitted
// exactly once.
func defaultBody(op Operation, params Params, token string, numeric soap.NumericBoolSet) string {
	nullOK := truthy(params[nullFlagParam])

	var b strings.Builder
	tokenPlaced := false
	for _, name := range op.ParamOrder {
		if name == SessionParam {
			writeTag(&b, SessionParam, token)
			tokenPlaced = true
			continue
		}
		v, present := params[name]
		if !present {
			continue
		}
		s := soap.ParamValue(v, name, numeric)
		if s == "" && !nullOK {
			continue
		}
		writeTag(&b, name, s)
	}
	if !op.NoSession && !tokenPlaced && !containsParam(op.ParamOrder, SessionParam) {
		return "<" + SessionParam + ">" + soap.EscapeXML(token) + "</" + SessionParam + ">" + b.String()
	}
	return b.String()
}

// NestedBody serializes params as a single wrapped object, the shape
// insert and update operations expect. Field order follows order;
// fields absent from params are omitted, empty fields follow the same
// null-flag rule as flat bodies.
func NestedBody(wrapper string, order []string, params Params, numeric soap.NumericBoolSet) string {
	nullOK := truthy(params[nullFlagParam])

	var b strings.Builder
	b.WriteString("<" + wrapper + ">")
	for _, name := range order {
		v, present := params[name]
		if !present {
			continue
		}
		s := soap.ParamValue(v, name, numeric)
		if s == "" && !nullOK {
			continue
		}
		writeTag(&b, name, s)
	}
	b.WriteString("</" + wrapper + ">")
	return b.String()
}

func writeTag(b *strings.Builder, name, value string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(soap.EscapeXML(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func containsParam(order []string, name string) bool {
	for _, p := range order {
		if p == name {
			return true
		}
	}
	return false
}

// truthy interprets the loose flag encodings hosts send: booleans,
// numeric strings, and the literal "true".
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1"
	case int:
		return val != 0
	case float64:
		return val != 0
	}
	return false
}
