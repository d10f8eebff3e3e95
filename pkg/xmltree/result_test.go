package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractResultBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantCode *int
		wantMsg  string
	}{
		{
			"top level",
			`<resp><statusCode>0</statusCode><statusMessage>OK</statusMessage></resp>`,
			intp(0), "OK",
		},
		{
			"nested under return",
			`<Envelope><Body><resp><return><statusCode>-57</statusCode><statusMessage>no master project set</statusMessage></return></resp></Body></Envelope>`,
			intp(-57), "no master project set",
		},
		{
			"absent",
			`<resp><other>x</other></resp>`,
			nil, "",
		},
		{
			"non-numeric code ignored",
			`<resp><statusCode>abc</statusCode><statusMessage>weird</statusMessage></resp>`,
			nil, "weird",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			base := ExtractResultBase(Parse(tt.raw))
			if tt.wantCode == nil {
				assert.Nil(t, base.StatusCode)
			} else if assert.NotNil(t, base.StatusCode) {
				assert.Equal(t, *tt.wantCode, *base.StatusCode)
			}
			assert.Equal(t, tt.wantMsg, base.StatusMessage)
		})
	}
}

func TestResultBase_OK(t *testing.T) {
	t.Parallel()

	assert.True(t, ResultBase{StatusCode: intp(0)}.OK())
	assert.True(t, ResultBase{}.OK())
	assert.True(t, ResultBase{StatusMessage: "OK"}.OK())
	assert.False(t, ResultBase{StatusCode: intp(-57)}.OK())
	assert.False(t, ResultBase{StatusMessage: "failed"}.OK())
}

func TestFindFault_NamespaceVariants(t *testing.T) {
	t.Parallel()

	modern := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><soap:Fault><faultcode>soap:Server</faultcode><faultstring>Invalid session</faultstring></soap:Fault></soap:Body></soap:Envelope>`
	legacy := `<Envelope><Body><Fault><faultcode>Server</faultcode><faultstring>Invalid session</faultstring></Fault></Body></Envelope>`

	for name, raw := range map[string]string{"modern": modern, "legacy": legacy} {
		fault, ok := FindFault(Parse(raw))
		if !ok {
			t.Fatalf("%s: fault not detected", name)
		}
		assert.Equal(t, "Invalid session", fault.Message, name)
	}
}

func TestFindFault_SOAP12Shape(t *testing.T) {
	t.Parallel()

	raw := `<Envelope><Body><Fault><Code><Value>soap:Receiver</Value></Code><Reason><Text>backend down</Text></Reason></Fault></Body></Envelope>`
	fault, ok := FindFault(Parse(raw))
	if !ok {
		t.Fatal("fault not detected")
	}
	assert.Equal(t, "soap:Receiver", fault.Code)
	assert.Equal(t, "backend down", fault.Message)
}

func TestFindFault_NoFault(t *testing.T) {
	t.Parallel()

	_, ok := FindFault(Parse(`<Envelope><Body><resp><statusCode>0</statusCode></resp></Body></Envelope>`))
	assert.False(t, ok)
}

func intp(n int) *int { return &n }
