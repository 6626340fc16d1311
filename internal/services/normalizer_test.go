package services

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases", "Senior Go Engineer", "senior go engineer"},
		{"strips http url", "see http://example.com/profile now", "see now"},
		{"strips www url", "portfolio at www.example.com/me here", "portfolio at here"},
		{"drops non-ascii", "café résumé naïve", "caf rsum nave"},
		{"bullets to spaces", "go * docker - kubernetes: yes", "go docker kubernetes yes"},
		{"unicode bullets dropped", "go • docker – five — years", "go docker five years"},
		{"collapses newlines", "line one\n\r\nline two", "line one line two"},
		{"collapses whitespace", "  too   many    spaces  ", "too many spaces"},
		{"bare http word kept", "the http protocol", "the http protocol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Senior Backend Engineer — Go & distributed systems",
		"see https://example.com/x\nand www.example.org too",
		"résumé • skills: Go, Kubernetes\r\n5 years",
		"already normalized plain text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeOutputIsASCII(t *testing.T) {
	got := Normalize("résumé — naïve • 简历 λ")
	for i := 0; i < len(got); i++ {
		if got[i] >= 0x80 {
			t.Fatalf("Normalize output contains non-ASCII byte 0x%x in %q", got[i], got)
		}
	}
}
