package money

import "testing"

func TestNewValidatesCurrency(t *testing.T) {
	m, err := New(30000, "pln")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Currency != "PLN" {
		t.Fatalf("expected upper-cased currency, got %q", m.Currency)
	}
	if _, err := New(100, "zloty"); err == nil {
		t.Fatal("expected error for non-ISO currency code")
	}
}

func TestFromFloatRounds(t *testing.T) {
	if got := FromFloat(299.995, "PLN").Amount; got != 30000 {
		t.Fatalf("expected 30000, got %d", got)
	}
	if got := FromFloat(0.1+0.2, "PLN").Amount; got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestFormat2(t *testing.T) {
	if got := Must(30000, "PLN").Format2(); got != "300.00" {
		t.Fatalf("expected 300.00, got %q", got)
	}
	if got := Must(12345, "PLN").Format2(); got != "123.45" {
		t.Fatalf("expected 123.45, got %q", got)
	}
}

func TestZeroMeansUnpriced(t *testing.T) {
	if !(Money{}).IsZero() {
		t.Fatal("zero value must report IsZero")
	}
	if Must(1, "PLN").IsZero() {
		t.Fatal("one minor unit must not report IsZero")
	}
}
