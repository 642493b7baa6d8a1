package valueobject

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

func TestNewCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid name", input: "Groceries", want: "Groceries"},
		{name: "ampersand allowed", input: "Food & Drinks", want: "Food & Drinks"},
		{name: "too short", input: "G", wantErr: domainerror.ErrCategoryNameTooShort},
		{name: "too long", input: strings.Repeat("a", 51), wantErr: domainerror.ErrCategoryNameTooLong},
		{name: "invalid characters", input: "Food/Drinks", wantErr: domainerror.ErrCategoryNameInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCategoryName(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Value())
			}
		})
	}
}

func TestCategoryName_DisplayValue(t *testing.T) {
	name, err := NewCategoryName("groceries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name.DisplayValue() != "Groceries" {
		t.Errorf("expected Groceries, got %q", name.DisplayValue())
	}
	// The stored value is unchanged.
	if name.Value() != "groceries" {
		t.Errorf("expected stored value unchanged, got %q", name.Value())
	}
}

func TestCategoryName_EqualsIgnoresCase(t *testing.T) {
	a, _ := NewCategoryName("Groceries")
	b, _ := NewCategoryName("groceries")
	if !a.Equals(b) {
		t.Error("expected case-insensitive equality")
	}
}

func TestNewCategoryColor(t *testing.T) {
	t.Run("blank input maps to default", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			color, err := NewCategoryColor(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if color.Hex() != DefaultCategoryColor {
				t.Errorf("expected default color, got %q", color.Hex())
			}
		}
	})

	t.Run("normalizes to uppercase", func(t *testing.T) {
		color, err := NewCategoryColor("#ff00aa")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if color.Hex() != "#FF00AA" {
			t.Errorf("expected #FF00AA, got %q", color.Hex())
		}
	})

	t.Run("rejects malformed colors", func(t *testing.T) {
		for _, raw := range []string{"FF00AA", "#FF00A", "#FF00AAB", "#GG00AA", "red"} {
			if _, err := NewCategoryColor(raw); !errors.Is(err, domainerror.ErrInvalidCategoryColor) {
				t.Errorf("expected ErrInvalidCategoryColor for %q, got %v", raw, err)
			}
		}
	})
}

func TestCategoryColor_Brightness(t *testing.T) {
	tests := []struct {
		name      string
		hex       string
		light     bool
		textColor string
	}{
		{name: "white is light", hex: "#FFFFFF", light: true, textColor: "#000000"},
		{name: "black is dark", hex: "#000000", light: false, textColor: "#FFFFFF"},
		{name: "yellow is light", hex: "#FFFF00", light: true, textColor: "#000000"},
		{name: "navy is dark", hex: "#000080", light: false, textColor: "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, err := NewCategoryColor(tt.hex)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if color.IsLight() != tt.light {
				t.Errorf("expected IsLight=%v for %s (brightness %.1f)", tt.light, tt.hex, color.Brightness())
			}
			if color.ContrastingTextColor() != tt.textColor {
				t.Errorf("expected text color %s, got %s", tt.textColor, color.ContrastingTextColor())
			}
		})
	}
}

func TestCategoryColor_RGB(t *testing.T) {
	color, _ := NewCategoryColor("#FF8000")
	r, g, b := color.RGB()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("expected (255, 128, 0), got (%d, %d, %d)", r, g, b)
	}
}

func TestRandomCategoryColor(t *testing.T) {
	palette := make(map[string]struct{}, len(categoryColorPalette))
	for _, hex := range categoryColorPalette {
		palette[hex] = struct{}{}
	}
	for i := 0; i < 50; i++ {
		color := RandomCategoryColor()
		if _, ok := palette[color.Hex()]; !ok {
			t.Fatalf("random color %q not in palette", color.Hex())
		}
	}
}

func TestNewCategoryDescription(t *testing.T) {
	t.Run("blank input yields empty state", func(t *testing.T) {
		desc, err := NewCategoryDescription("   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !desc.IsEmpty() {
			t.Error("expected empty description")
		}
	})

	t.Run("valid description", func(t *testing.T) {
		desc, err := NewCategoryDescription("Monthly food shopping")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.Value() != "Monthly food shopping" {
			t.Errorf("unexpected value %q", desc.Value())
		}
	})

	t.Run("too long", func(t *testing.T) {
		_, err := NewCategoryDescription(strings.Repeat("a", 201))
		if !errors.Is(err, domainerror.ErrCategoryDescriptionTooLong) {
			t.Fatalf("expected ErrCategoryDescriptionTooLong, got %v", err)
		}
	})
}

func TestCategoryDescription_Truncate(t *testing.T) {
	desc, err := NewCategoryDescription(strings.Repeat("x", 80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := desc.Truncate(10); got != strings.Repeat("x", 10)+"..." {
		t.Errorf("unexpected truncation %q", got)
	}
	// Default limit applies when limit is non-positive.
	if got := desc.Truncate(0); got != strings.Repeat("x", DefaultTruncateLength)+"..." {
		t.Errorf("unexpected default truncation %q", got)
	}
	// Short values are returned unchanged.
	if got := desc.Truncate(100); got != desc.Value() {
		t.Errorf("expected unchanged value, got %q", got)
	}
}
