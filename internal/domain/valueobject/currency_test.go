package valueobject

import (
	"errors"
	"testing"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

func TestNewCurrency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "EUR", input: "EUR", want: "EUR"},
		{name: "USD", input: "USD", want: "USD"},
		{name: "lowercase normalized", input: "eur", want: "EUR"},
		{name: "whitespace trimmed", input: "  usd ", want: "USD"},
		{name: "too short", input: "EU", wantErr: domainerror.ErrInvalidCurrencyFormat},
		{name: "too long", input: "EURO", wantErr: domainerror.ErrInvalidCurrencyFormat},
		{name: "digits", input: "EU1", wantErr: domainerror.ErrInvalidCurrencyFormat},
		{name: "well-formed but unsupported", input: "GBP", wantErr: domainerror.ErrCurrencyNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCurrency(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Code() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Code())
			}
		})
	}
}

func TestNewCurrency_Idempotent(t *testing.T) {
	// Re-creating a currency from its own code yields an equal value.
	for _, raw := range []string{"EUR", "usd", " Eur "} {
		first, err := NewCurrency(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		second, err := NewCurrency(first.Code())
		if err != nil {
			t.Fatalf("unexpected error re-creating %q: %v", first.Code(), err)
		}
		if !first.Equals(second) {
			t.Errorf("expected %q to be idempotent under re-creation", raw)
		}
	}
}

func TestCurrency_Symbol(t *testing.T) {
	eur, _ := NewCurrency("EUR")
	usd, _ := NewCurrency("USD")
	if eur.Symbol() != "€" {
		t.Errorf("expected €, got %q", eur.Symbol())
	}
	if usd.Symbol() != "$" {
		t.Errorf("expected $, got %q", usd.Symbol())
	}
}
