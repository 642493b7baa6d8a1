package valueobject

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// DefaultCategoryColor is used when no color is supplied.
const DefaultCategoryColor = "#6B7280"

// lightColorThreshold is the perceived-brightness cutoff between light and dark colors.
const lightColorThreshold = 128

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// categoryColorPalette is the fixed palette used for random color assignment.
var categoryColorPalette = [10]string{
	"#EF4444", // red
	"#F97316", // orange
	"#F59E0B", // amber
	"#10B981", // emerald
	"#06B6D4", // cyan
	"#3B82F6", // blue
	"#6366F1", // indigo
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#6B7280", // gray
}

// CategoryColor is a validated hex color in #RRGGBB form, normalized to uppercase.
type CategoryColor struct {
	hex string
}

// NewCategoryColor creates a validated CategoryColor from raw input. Blank input
// maps to DefaultCategoryColor instead of failing.
func NewCategoryColor(raw string) (CategoryColor, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryColor{hex: DefaultCategoryColor}, nil
	}

	if !hexColorRegex.MatchString(trimmed) {
		return CategoryColor{}, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryColor,
			"color must be a hex color in #RRGGBB format",
			domainerror.ErrInvalidCategoryColor,
		)
	}

	return CategoryColor{hex: strings.ToUpper(trimmed)}, nil
}

// RandomCategoryColor returns a color picked from the fixed 10-color palette.
func RandomCategoryColor() CategoryColor {
	return CategoryColor{hex: categoryColorPalette[rand.Intn(len(categoryColorPalette))]}
}

// Hex returns the normalized #RRGGBB value.
func (c CategoryColor) Hex() string {
	return c.hex
}

// RGB returns the red, green and blue components of the color.
func (c CategoryColor) RGB() (r, g, b int) {
	// The hex value is validated on construction, so parsing cannot fail.
	red, _ := strconv.ParseInt(c.hex[1:3], 16, 0)
	green, _ := strconv.ParseInt(c.hex[3:5], 16, 0)
	blue, _ := strconv.ParseInt(c.hex[5:7], 16, 0)
	return int(red), int(green), int(blue)
}

// Brightness returns the perceived brightness of the color (0–255) using the
// standard luma weights 0.299R + 0.587G + 0.114B.
func (c CategoryColor) Brightness() float64 {
	r, g, b := c.RGB()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// IsLight reports whether the color is perceived as light.
func (c CategoryColor) IsLight() bool {
	return c.Brightness() >= lightColorThreshold
}

// IsDark reports whether the color is perceived as dark.
func (c CategoryColor) IsDark() bool {
	return !c.IsLight()
}

// ContrastingTextColor returns black or white, whichever reads better on the color.
func (c CategoryColor) ContrastingTextColor() string {
	if c.IsLight() {
		return "#000000"
	}
	return "#FFFFFF"
}

// Equals reports whether two colors hold the same normalized value.
func (c CategoryColor) Equals(other CategoryColor) bool {
	return c.hex == other.hex
}
