package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  bonjour  ", want: "bonjour"},
		{name: "case preserved", input: "Bonjour", want: "Bonjour"},
		{name: "compress multiple spaces", input: "se   laver", want: "se laver"},
		{name: "diacritics preserved", input: "Café", want: "Café"},
		{name: "hyphens preserved", input: "arc-en-ciel", want: "arc-en-ciel"},
		{name: "apostrophes preserved", input: "aujourd'hui", want: "aujourd'hui"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t chat \t", want: "chat"},
		{name: "no-break space", input: "à\u00a0\u00a0demain", want: "à demain"},
		{name: "ideographic space", input: "你好\u3000世界", want: "你好 世界"},
		{name: "decomposed accent composed", input: "e\u0301te\u0301", want: "été"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHeadwordKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "Bonjour", want: "bonjour"},
		{input: "ÉTÉ", want: "été"},
		{input: "  Se   Laver ", want: "se laver"},
		{input: "École", want: "école"},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		if got := HeadwordKey(tt.input); got != tt.want {
			t.Errorf("HeadwordKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
