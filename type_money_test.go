package banque

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		name  string
		money Money
		want  string
	}{
		{name: "round amount", money: EUR(100), want: "€100.00"},
		{name: "cents", money: EUR(42.5), want: "€42.50"},
		{name: "negative", money: EUR(-30), want: "-€30.00"},
		{name: "zero", money: EUR(0), want: "€0.00"},
		{name: "weak currency defaults to EUR", money: M(7, ""), want: "€7.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.money.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := EUR(100).SignedString(); got != "+€100.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+€100.00")
	}
	if got := EUR(-30).SignedString(); got != "-€30.00" {
		t.Errorf("SignedString() = %q, want %q", got, "-€30.00")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	sum := EUR(100).Add(EUR(12.34)).Sub(EUR(40))
	if !sum.Equal(EUR(72.34)) {
		t.Errorf("100 + 12.34 - 40 = %s, want %s", sum, EUR(72.34))
	}

	// The weak "" currency (from a decoded file) resolves to its operand's.
	mixed := M(10, "").Add(EUR(5))
	if mixed.Currency() != DefaultCurrency {
		t.Errorf("weak currency resolved to %q, want %q", mixed.Currency(), DefaultCurrency)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(EUR(42.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "42.5" && string(out) != "42.50" {
		t.Errorf("Marshal() = %s, want a bare number", out)
	}

	var in Money
	if err := json.Unmarshal(out, &in); err != nil {
		t.Fatalf("Unmarshal() returned an unexpected error: %v", err)
	}
	if !in.Equal(EUR(42.5)) {
		t.Errorf("round trip = %s, want %s", in, EUR(42.5))
	}
}
