package executor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowbridge/plunet/pkg/soap"
)

func TestDefaultBody_TokenFirstWhenNotInOrder(t *testing.T) {
	t.Parallel()

	op := Operation{Name: "getCustomerObject", ParamOrder: []string{"customerID"}}
	body := defaultBody(op, Params{"customerID": 42}, "tok-1", nil)
	assert.Equal(t, "<UUID>tok-1</UUID><customerID>42</customerID>", body)
}

func TestDefaultBody_TokenPosition(t *testing.T) {
	t.Parallel()

	op := Operation{Name: "seekByExternalID", ParamOrder: []string{"ExternalID", "UUID"}}
	body := defaultBody(op, Params{"ExternalID": "ext-9"}, "tok-2", nil)
	assert.Equal(t, "<ExternalID>ext-9</ExternalID><UUID>tok-2</UUID>", body)
	assert.Equal(t, 1, strings.Count(body, "<UUID>"), "token must appear exactly once")
}

func TestDefaultBody_SkipsEmptyValues(t *testing.T) {
	t.Parallel()

	op := Operation{Name: "update", ParamOrder: []string{"comment", "subject"}}
	body := defaultBody(op, Params{"comment": "", "subject": "hello"}, "tok", nil)
	assert.NotContains(t, body, "<comment>")
	assert.Contains(t, body, "<subject>hello</subject>")
}

func TestDefaultBody_NullFlagEmitsEmptyTags(t *testing.T) {
	t.Parallel()

	op := Operation{Name: "update", ParamOrder: []string{"comment", "subject"}}
	body := defaultBody(op, Params{"comment": "", "subject": "hello", "enableNullOrEmptyValues": true}, "tok", nil)
	assert.Contains(t, body, "<comment></comment>")
}

func TestDefaultBody_AbsentParamsAlwaysSkipped(t *testing.T) {
	t.Parallel()

	op := Operation{Name: "update", ParamOrder: []string{"comment", "subject"}}
	body := defaultBody(op, Params{"subject": "x", "enableNullOrEmptyValues": true}, "tok", nil)
	assert.NotContains(t, body, "<comment>", "a parameter never supplied must not serialize")
}

func TestDefaultBody_EscapesValues(t *testing.T) {
	t.Parallel()

	op := Operation{Name: "setFullName", ParamOrder: []string{"fullName"}}
	body := defaultBody(op, Params{"fullName": `A & B <Ltd>`}, "tok", nil)
	assert.Contains(t, body, "<fullName>A &amp; B &lt;Ltd&gt;</fullName>")
}

func TestDefaultBody_NumericBooleans(t *testing.T) {
	t.Parallel()

	numeric := soap.NewNumericBoolSet("enableNullOrEmptyValues")
	op := Operation{Name: "update", ParamOrder: []string{"enableNullOrEmptyValues", "subject"}}
	body := defaultBody(op, Params{"enableNullOrEmptyValues": true, "subject": "s"}, "tok", numeric)
	assert.Contains(t, body, "<enableNullOrEmptyValues>1</enableNullOrEmptyValues>")
}

func TestNestedBody(t *testing.T) {
	t.Parallel()

	body := NestedBody("CustomerIN", []string{"customerID", "fullName", "status"},
		Params{"customerID": 3, "fullName": "Acme & Co", "status": 1}, nil)
	assert.Equal(t, "<CustomerIN><customerID>3</customerID><fullName>Acme &amp; Co</fullName><status>1</status></CustomerIN>", body)
}

func TestNestedBody_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	body := NestedBody("CustomerIN", []string{"customerID", "fullName"}, Params{"customerID": 3}, nil)
	assert.Equal(t, "<CustomerIN><customerID>3</customerID></CustomerIN>", body)
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	assert.True(t, truthy(true))
	assert.True(t, truthy("true"))
	assert.True(t, truthy("1"))
	assert.True(t, truthy(1))
	assert.False(t, truthy(false))
	assert.False(t, truthy("0"))
	assert.False(t, truthy(nil))
	assert.False(t, truthy(""))
}
