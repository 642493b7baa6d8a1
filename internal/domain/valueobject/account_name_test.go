package valueobject

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

func TestNewAccountName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "valid name",
			input: "Sabadell",
			want:  "Sabadell",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Main Checking  ",
			want:  "Main Checking",
		},
		{
			name:  "allows digits hyphens and underscores",
			input: "Savings_2024-backup",
			want:  "Savings_2024-backup",
		},
		{
			name:  "minimum length",
			input: "AB",
			want:  "AB",
		},
		{
			name:  "maximum length",
			input: strings.Repeat("a", 100),
			want:  strings.Repeat("a", 100),
		},
		{
			name:    "too short",
			input:   "A",
			wantErr: domainerror.ErrAccountNameTooShort,
		},
		{
			name:    "empty after trim",
			input:   "   ",
			wantErr: domainerror.ErrAccountNameTooShort,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 101),
			wantErr: domainerror.ErrAccountNameTooLong,
		},
		{
			name:    "invalid characters",
			input:   "My Account!",
			wantErr: domainerror.ErrAccountNameInvalidChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAccountName(tt.input)
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
				t.Errorf("expected value %q, got %q", tt.want, got.Value())
			}
		})
	}
}

func TestNewAccountName_RoundTrip(t *testing.T) {
	// A valid name always round-trips to its trimmed form.
	inputs := []string{"Sabadell", "  Cash Wallet ", "Broker-01"}
	for _, input := range inputs {
		name, err := NewAccountName(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if name.Value() != strings.TrimSpace(input) {
			t.Errorf("expected %q, got %q", strings.TrimSpace(input), name.Value())
		}
	}
}

func TestParseAccountType(t *testing.T) {
	t.Run("accepts all supported types", func(t *testing.T) {
		for _, raw := range []string{"bank", "crypto", "investment", "cash", "savings"} {
			accountType, err := ParseAccountType(raw)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
			if string(accountType) != raw {
				t.Errorf("expected %q, got %q", raw, accountType)
			}
			if accountType.Label() == "" || accountType.Color() == "" || accountType.IconKey() == "" {
				t.Errorf("expected display attributes for %q", raw)
			}
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		accountType, err := ParseAccountType("  Bank ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accountType != AccountTypeBank {
			t.Errorf("expected bank, got %q", accountType)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := ParseAccountType("checking")
		if !errors.Is(err, domainerror.ErrInvalidAccountType) {
			t.Fatalf("expected ErrInvalidAccountType, got %v", err)
		}
	})
}
