package ops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/plunet/pkg/executor"
)

func TestLookup_Qualified(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("DataCustomer30.getCustomerObject")
	require.True(t, ok)
	assert.Equal(t, "getCustomerObject", op.Name)
	assert.Equal(t, CustomerService, op.Service)
}

func TestLookup_BareUnambiguous(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("getCustomerObject")
	require.True(t, ok)
	assert.Equal(t, CustomerService, op.Service)
}

func TestLookup_BareAmbiguous(t *testing.T) {
	t.Parallel()

	// update exists on several services; a bare name must not guess.
	_, ok := Lookup("update")
	assert.False(t, ok)

	op, ok := Lookup("DataOrder30.update")
	require.True(t, ok)
	assert.Equal(t, OrderService, op.Service)
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("noSuchOperation")
	assert.False(t, ok)
}

func TestNames_SortedAndQualified(t *testing.T) {
	t.Parallel()

	names := Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		assert.Contains(t, name, ".", "registry names are service-qualified")
	}
	sorted := append([]string(nil), names...)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1], sorted[i])
	}
}

func TestRegistry_DescriptorSanity(t *testing.T) {
	t.Parallel()

	for _, op := range All() {
		assert.NotEmpty(t, op.Name)
		assert.NotEmpty(t, op.Service)
	}
}

func TestRegistry_BenignCodes(t *testing.T) {
	t.Parallel()

	deadline, ok := Lookup("DataOrder30.getDeliveryDeadline")
	require.True(t, ok)
	assert.ElementsMatch(t, []int{-57, 7028}, deadline.BenignStatusCodes)

	request, ok := Lookup("DataRequest30.getRequestObject")
	require.True(t, ok)
	assert.ElementsMatch(t, []int{-24}, request.BenignStatusCodes)
}

func TestCustomerIN_BodyShape(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("DataCustomer30.update")
	require.True(t, ok)
	require.NotNil(t, op.BuildBody)

	body, err := op.BuildBody(op, executor.Params{
		"customerID":              3,
		"fullName":                "Acme & Co",
		"enableNullOrEmptyValues": true,
	}, "tok-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(body, "<UUID>tok-1</UUID><CustomerIN>"))
	assert.Contains(t, body, "<customerID>3</customerID>")
	assert.Contains(t, body, "<fullName>Acme &amp; Co</fullName>")
	assert.True(t, strings.HasSuffix(body, "</CustomerIN><enableNullOrEmptyValues>true</enableNullOrEmptyValues>"))
}

func TestCustomerInsert_NoNullFlag(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("DataCustomer30.insert2")
	require.True(t, ok)
	body, err := op.BuildBody(op, executor.Params{"fullName": "New Co"}, "tok")
	require.NoError(t, err)
	assert.NotContains(t, body, "enableNullOrEmptyValues")
}

func TestJobIN_TypeOutsideWrapper(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("DataJob30.insert3")
	require.True(t, ok)
	body, err := op.BuildBody(op, executor.Params{
		"projectID":          7,
		"projectType":        3,
		"jobTypeAbbrevation": "TRA",
	}, "tok")
	require.NoError(t, err)

	assert.Contains(t, body, "<JobIN>")
	jobIN := body[strings.Index(body, "<JobIN>"):strings.Index(body, "</JobIN>")]
	assert.NotContains(t, jobIN, "jobTypeAbbrevation", "job type is a sibling of JobIN, not a field")
	assert.True(t, strings.HasSuffix(body, "<jobTypeAbbrevation>TRA</jobTypeAbbrevation>"))
}

func TestSetPropertyBody_RepeatedValueTags(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("DataCustomFields30.setPropertyValueList")
	require.True(t, ok)
	body, err := op.BuildBody(op, executor.Params{
		"PropertyNameEnglish": "Segment",
		"PropertyUsageArea":   1,
		"MainID":              42,
		"PropertyValueList":   []int{10, 11},
	}, "tok")
	require.NoError(t, err)

	assert.Contains(t, body, "<PropertyNameEnglish>Segment</PropertyNameEnglish>")
	assert.Contains(t, body, "<PropertyValueList>10</PropertyValueList><PropertyValueList>11</PropertyValueList>")
}

func TestIntList_LooseEncodings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2}, intList([]int{1, 2}))
	assert.Equal(t, []int{5}, intList(5))
	assert.Equal(t, []int{1, 2, 3}, intList([]any{1, 2.0, "3"}))
	assert.Nil(t, intList(nil))
	assert.Nil(t, intList("x"))
}

func TestJobIN_EscapesJobType(t *testing.T) {
	t.Parallel()

	op, ok := Lookup("DataJob30.insert3")
	require.True(t, ok)
	body, err := op.BuildBody(op, executor.Params{
		"projectID":          7,
		"jobTypeAbbrevation": "TRA & <X>",
	}, "tok")
	require.NoError(t, err)
	assert.Contains(t, body, "<jobTypeAbbrevation>TRA &amp; &lt;X&gt;</jobTypeAbbrevation>")
}
