package soap

import "testing"

func TestEscapeXML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Acme Corp", "Acme Corp"},
		{"ampersand", "a&b", "a&amp;b"},
		{"angle brackets", "<tag>", "&lt;tag&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&apos;s"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&apos;"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EscapeXML(tt.input); got != tt.want {
				t.Errorf("EscapeXML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Escaping is intentionally not reentrant-safe: applying it twice to a
// string with escapable characters produces a different result, so
// callers must escape exactly once.
func TestEscapeXML_NotIdempotent(t *testing.T) {
	t.Parallel()

	in := `a & b < c`
	once := EscapeXML(in)
	twice := EscapeXML(once)
	if once == twice {
		t.Errorf("expected double escaping to differ: once=%q twice=%q", once, twice)
	}
}

func TestEscapeXML_InjectiveOverReservedChars(t *testing.T) {
	t.Parallel()

	inputs := []string{"&", "<", ">", `"`, "'"}
	seen := make(map[string]string)
	for _, in := range inputs {
		out := EscapeXML(in)
		if prev, dup := seen[out]; dup {
			t.Errorf("EscapeXML maps both %q and %q to %q", prev, in, out)
		}
		seen[out] = in
	}
}
