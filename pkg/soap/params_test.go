package soap

import "testing"

func TestParamValue_NumericBooleans(t *testing.T) {
	t.Parallel()

	numeric := NewNumericBoolSet("enableNullOrEmptyValues", "overridePermission")

	for _, name := range []string{"enableNullOrEmptyValues", "overridePermission"} {
		if got := ParamValue(true, name, numeric); got != "1" {
			t.Errorf("ParamValue(true, %q) = %q, want \"1\"", name, got)
		}
		if got := ParamValue(false, name, numeric); got != "0" {
			t.Errorf("ParamValue(false, %q) = %q, want \"0\"", name, got)
		}
	}

	// Names outside the set serialize as textual booleans.
	if got := ParamValue(true, "isActive", numeric); got != "true" {
		t.Errorf("ParamValue(true, isActive) = %q, want \"true\"", got)
	}
	if got := ParamValue(false, "isActive", numeric); got != "false" {
		t.Errorf("ParamValue(false, isActive) = %q, want \"false\"", got)
	}
}

func TestParamValue_Types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string passthrough", "  spaced  ", "  spaced  "},
		{"int", 42, "42"},
		{"negative int", -57, "-57"},
		{"int64", int64(7028), "7028"},
		{"float", 12.5, "12.5"},
		{"float whole", 3.0, "3"},
		{"bool outside set", true, "true"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParamValue(tt.value, "anyParam", nil); got != tt.want {
				t.Errorf("ParamValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNumericBoolSet_NilSafe(t *testing.T) {
	t.Parallel()

	var s NumericBoolSet
	if s.Contains("anything") {
		t.Error("nil set should contain nothing")
	}
}
