package styles

import "testing"

func TestForCategory(t *testing.T) {
	t.Run("known_category", func(t *testing.T) {
		s := ForCategory("Alimentación")
		if s.Icon != "cart.fill" {
			t.Errorf("expected icon cart.fill, got %s", s.Icon)
		}
		if s.Color != "orange" {
			t.Errorf("expected color orange, got %s", s.Color)
		}
	})

	t.Run("legacy_label_aliases", func(t *testing.T) {
		if ForCategory("Finanzas") != ForCategory("Finanzas y Obligaciones") {
			t.Error("expected Finanzas and Finanzas y Obligaciones to share a style")
		}
		if ForCategory("Otro") != ForCategory("Otros") {
			t.Error("expected Otro and Otros to share a style")
		}
	})

	t.Run("unknown_category_falls_back", func(t *testing.T) {
		if s := ForCategory("Mascotas"); s != Fallback {
			t.Errorf("expected fallback style, got %+v", s)
		}
	})

	t.Run("matching_is_case_sensitive", func(t *testing.T) {
		if s := ForCategory("alimentación"); s != Fallback {
			t.Errorf("lowercase label should not match, got %+v", s)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		if s := ForCategory(""); s != Fallback {
			t.Errorf("expected fallback style for empty name, got %+v", s)
		}
	})
}

func TestKnown(t *testing.T) {
	if !Known("Transporte") {
		t.Error("expected Transporte to be known")
	}
	if Known("No Existe") {
		t.Error("expected unknown label to report false")
	}
}
