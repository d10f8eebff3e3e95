package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/plunet/pkg/session"
	"github.com/flowbridge/plunet/pkg/soap"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{"customerID=42", "comment=", "flag=true", "name=Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, 42, params["customerID"])
	assert.Equal(t, "", params["comment"])
	assert.Equal(t, true, params["flag"])
	assert.Equal(t, "Acme Corp", params["name"])
}

func TestParseParams_Invalid(t *testing.T) {
	t.Parallel()

	_, err := parseParams([]string{"noequals"})
	assert.Error(t, err)
	_, err = parseParams([]string{"=value"})
	assert.Error(t, err)
}

func TestOpsCommand_ListsQualifiedNames(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "ops")
	require.NoError(t, err)
	assert.Contains(t, out, "DataCustomer30.getCustomerObject")
	assert.Contains(t, out, "DataOrder30.getDeliveryDeadline")
	assert.Contains(t, out, "PlunetAPI.login")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test\n", out)
}

func TestValidateCommand_MissingCredentials(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "validate", "--endpoint", "https://x.example.com")
	assert.Error(t, err)
}

func TestValidateCommand_OK(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "validate",
		"--endpoint", "https://x.example.com",
		"--username", "api",
		"--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "config ok")
}

func TestCallCommand_UnknownOperation(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "call", "noSuchOperation",
		"--endpoint", "https://x.example.com",
		"--username", "api",
		"--password", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown or ambiguous")
}

func TestCallCommand_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", soap.ContentType)
		if strings.HasSuffix(r.URL.Path, "/"+session.AuthService) {
			fmt.Fprint(w, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
			  <soap:Body><loginResponse><return>tok-1</return></loginResponse></soap:Body>
			</soap:Envelope>`)
			return
		}
		fmt.Fprint(w, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
		  <soap:Body><getCustomerObjectResponse>
		    <return>
		      <statusCode>0</statusCode>
		      <data><customerID>42</customerID><fullName>Acme Corp</fullName><status>1</status></data>
		    </return>
		  </getCustomerObjectResponse></soap:Body>
		</soap:Envelope>`)
	}))
	t.Cleanup(srv.Close)

	out, err := runCommand(t, "call", "getCustomerObject",
		"--endpoint", srv.URL,
		"--username", "api",
		"--password", "secret",
		"--param", "customerID=42")
	require.NoError(t, err)
	assert.Contains(t, out, `"CustomerID": 42`)
	assert.Contains(t, out, `"FullName": "Acme Corp"`)
	assert.Contains(t, out, `"Status": "ACTIVE"`)
}

func TestCallCommand_LogoutFailureDoesNotFailCall(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("SOAPAction"), "logout") {
			http.Error(w, "session store unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", soap.ContentType)
		if strings.HasSuffix(r.URL.Path, "/"+session.AuthService) {
			fmt.Fprint(w, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
			  <soap:Body><loginResponse><return>tok-1</return></loginResponse></soap:Body>
			</soap:Envelope>`)
			return
		}
		fmt.Fprint(w, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
		  <soap:Body><getCustomerObjectResponse>
		    <return>
		      <statusCode>0</statusCode>
		      <data><customerID>7</customerID><fullName>Beta GmbH</fullName></data>
		    </return>
		  </getCustomerObjectResponse></soap:Body>
		</soap:Envelope>`)
	}))
	t.Cleanup(srv.Close)

	out, err := runCommand(t, "call", "getCustomerObject",
		"--endpoint", srv.URL,
		"--username", "api",
		"--password", "secret",
		"--log-level", "debug",
		"--param", "customerID=7")
	require.NoError(t, err)
	assert.Contains(t, out, `"CustomerID": 7`)
	assert.Contains(t, out, "logout failed")
}

func TestCoerceValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, coerceValue("7"))
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, "", coerceValue(""))
	assert.Equal(t, "hello", coerceValue("hello"))
	assert.Equal(t, "2024-01-01", coerceValue("2024-01-01"))
}
