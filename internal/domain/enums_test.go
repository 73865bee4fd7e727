package domain

import "testing"

func TestPOSCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range AllPOSCategories {
		if !c.IsValid() {
			t.Errorf("POSCategory(%q).IsValid() = false, want true", c)
		}
	}
	if POSCategory("phrase").IsValid() {
		t.Error("POSCategory(phrase).IsValid() = true, want false")
	}
}

func TestPOSCategory_String(t *testing.T) {
	t.Parallel()
	if got := POSCategoryPreposition.String(); got != "prep" {
		t.Errorf("got %q, want prep", got)
	}
}

func TestPOSCategory_DisplayName(t *testing.T) {
	t.Parallel()

	seen := make(map[string]POSCategory)
	for _, c := range AllPOSCategories {
		name := c.DisplayName()
		if name == string(c) {
			t.Errorf("%s has no display name", c)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("%s and %s share display name %q", prev, c, name)
		}
		seen[name] = c
	}
	if got := POSCategory("other").DisplayName(); got != "other" {
		t.Errorf("unknown category should fall back to its value, got %q", got)
	}
}

func TestGender_IsValid(t *testing.T) {
	t.Parallel()

	for _, g := range []Gender{GenderNone, GenderMasculine, GenderFeminine} {
		if !g.IsValid() {
			t.Errorf("Gender(%q).IsValid() = false, want true", g)
		}
	}
	if Gender("n").IsValid() {
		t.Error("Gender(n).IsValid() = true, want false")
	}
}

func TestVerbSubtype_IsValid(t *testing.T) {
	t.Parallel()

	valid := []VerbSubtype{
		VerbSubtypeNone, VerbSubtypeTransitive, VerbSubtypeIntransitive,
		VerbSubtypeReflexive, VerbSubtypeAuxiliary, VerbSubtypeImpersonal,
	}
	for _, v := range valid {
		if !v.IsValid() {
			t.Errorf("VerbSubtype(%q).IsValid() = false, want true", v)
		}
	}
	if VerbSubtype("modal").IsValid() {
		t.Error("VerbSubtype(modal).IsValid() = true, want false")
	}
}
