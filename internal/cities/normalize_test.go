package cities

import "testing"

func TestNormalize_VariantsConverge(t *testing.T) {
	// Whitespace run length, dash character and case must not matter.
	variants := []string{
		"Denver-Aurora-Lakewood",
		"denver–aurora—lakewood",
		"  DENVER-AURORA-LAKEWOOD  ",
		"denver-aurora-lakewood",
		"Denver-Aurora-Lakewood\t",
	}

	want := "denver-aurora-lakewood"

	for _, variant := range variants {
		if got := Normalize(variant); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", variant, got, want)
		}
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("Las  Vegas-Henderson-North   Las Vegas")
	want := "las vegas-henderson-north las vegas"

	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_EmptyPassesThrough(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestCanonical_RewritesAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Denver-Aurora-Lakewood", "denver-aurora-centennial"},
		{"DC_METRO", "washington-arlington-alexandria"},
		{"Miami-Fort Lauderdale-Pompano Beach", "miami-fort lauderdale-west palm beach"},
		{"San Francisco–Oakland–Berkeley", "san francisco-oakland-fremont"},
	}

	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonical_UnmappedPassesThrough(t *testing.T) {
	if got := Canonical("Pittsburgh"); got != "pittsburgh" {
		t.Errorf("Canonical(Pittsburgh) = %q, want pittsburgh", got)
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	inputs := []string{
		"Denver-Aurora-Lakewood",
		"denver-aurora-centennial",
		"st. louis",
		"somewhere unknown",
	}

	for _, in := range inputs {
		once := Canonical(in)
		twice := Canonical(once)

		if once != twice {
			t.Errorf("Canonical not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
