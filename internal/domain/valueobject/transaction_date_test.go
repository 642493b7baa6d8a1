package valueobject

import (
	"errors"
	"strings"
	"testing"
	"time"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

func TestParseTransactionDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "date only", input: "2024-01-15", want: "2024-01-15"},
		{name: "rfc3339", input: "2024-01-15T10:30:00Z", want: "2024-01-15"},
		{name: "lower bound", input: "1900-01-01", want: "1900-01-01"},
		{name: "upper bound", input: "2100-12-30", want: "2100-12-30"},
		{name: "before lower bound", input: "1899-12-31", wantErr: domainerror.ErrTransactionDateOutOfRange},
		{name: "after upper bound", input: "2101-01-01", wantErr: domainerror.ErrTransactionDateOutOfRange},
		{name: "unparsable", input: "not-a-date", wantErr: domainerror.ErrInvalidTransactionDate},
		{name: "empty", input: "", wantErr: domainerror.ErrInvalidTransactionDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransactionDate(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.DateString() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.DateString())
			}
		})
	}
}

func TestNewTransactionDate_ZeroTime(t *testing.T) {
	_, err := NewTransactionDate(time.Time{})
	if !errors.Is(err, domainerror.ErrInvalidTransactionDate) {
		t.Fatalf("expected ErrInvalidTransactionDate, got %v", err)
	}
}

func TestTransactionDate_Accessors(t *testing.T) {
	date, err := ParseTransactionDate("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2024 || date.Month() != 3 || date.Day() != 1 {
		t.Errorf("unexpected components %d-%d-%d", date.Year(), date.Month(), date.Day())
	}
	if date.Weekday() != time.Friday {
		t.Errorf("expected Friday, got %v", date.Weekday())
	}
}

func TestTransactionDate_DayArithmetic(t *testing.T) {
	base, err := ParseTransactionDate("2024-02-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("add days crosses leap day", func(t *testing.T) {
		next, err := base.AddDays(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.DateString() != "2024-03-01" {
			t.Errorf("expected 2024-03-01, got %s", next.DateString())
		}
	})

	t.Run("subtract days", func(t *testing.T) {
		prev, err := base.SubtractDays(28)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev.DateString() != "2024-01-31" {
			t.Errorf("expected 2024-01-31, got %s", prev.DateString())
		}
	})

	t.Run("base is never mutated", func(t *testing.T) {
		if _, err := base.AddDays(100); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if base.DateString() != "2024-02-28" {
			t.Errorf("expected base unchanged, got %s", base.DateString())
		}
	})

	t.Run("arithmetic past the bounds fails", func(t *testing.T) {
		edge, err := ParseTransactionDate("2100-12-30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := edge.AddDays(1); !errors.Is(err, domainerror.ErrTransactionDateOutOfRange) {
			t.Fatalf("expected ErrTransactionDateOutOfRange, got %v", err)
		}
	})
}

func TestTransactionDate_DisplayString(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "today", input: "2024-03-15", want: "Today"},
		{name: "yesterday", input: "2024-03-14", want: "Yesterday"},
		{name: "same year short form", input: "2024-01-05", want: "Jan 5"},
		{name: "other year full form", input: "2023-11-20", want: "Nov 20, 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseTransactionDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := date.DisplayString(now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewTransactionDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid", input: "Groceries", want: "Groceries"},
		{name: "punctuation allowed", input: "Dinner (work), tip included!", want: "Dinner (work), tip included!"},
		{name: "empty is required error", input: "", wantErr: domainerror.ErrTransactionDescriptionRequired},
		{name: "blank is required error", input: "   ", wantErr: domainerror.ErrTransactionDescriptionRequired},
		{name: "too long", input: strings.Repeat("a", 201), wantErr: domainerror.ErrTransactionDescriptionTooLong},
		{name: "invalid characters", input: "Rent @ March", wantErr: domainerror.ErrTransactionDescriptionInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTransactionDescription(tt.input)
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
