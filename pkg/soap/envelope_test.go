package soap

import (
	"strings"
	"testing"
)

func TestBuildEnvelope(t *testing.T) {
	t.Parallel()

	env := BuildEnvelope("getCustomerObject", "<UUID>token</UUID><customerID>42</customerID>")

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<soap:Envelope xmlns:soap="` + EnvelopeNamespace + `"`,
		`xmlns:api="` + APINamespace + `"`,
		`<soap:Body>`,
		`<api:getCustomerObject>`,
		`<UUID>token</UUID><customerID>42</customerID>`,
		`</api:getCustomerObject>`,
		`</soap:Body>`,
		`</soap:Envelope>`,
	} {
		if !strings.Contains(env, want) {
			t.Errorf("envelope missing %q:\n%s", want, env)
		}
	}
}

func TestBuildEnvelope_Deterministic(t *testing.T) {
	t.Parallel()

	a := BuildEnvelope("login", "<username>u</username>")
	b := BuildEnvelope("login", "<username>u</username>")
	if a != b {
		t.Error("BuildEnvelope must be deterministic")
	}
}

func TestAction(t *testing.T) {
	t.Parallel()

	if got := Action("getCustomerObject"); got != "http://API.Integration/getCustomerObject" {
		t.Errorf("Action = %q", got)
	}
}
