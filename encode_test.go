package banque

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// testBank builds a small bank with a bit of activity on each account.
func testBank(t *testing.T) *Bank {
	t.Helper()
	bank := NewBank()
	if _, err := bank.CreateAccount("A1", "Alice", EUR(100), EUR(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := bank.CreateAccount("A2", "Bob", EUR(0), EUR(50)); err != nil {
		t.Fatal(err)
	}
	if err := bank.Account("A1").Deposit(EUR(12.34), "salaire"); err != nil {
		t.Fatal(err)
	}
	if err := bank.Account("A2").Withdraw(EUR(30), "courses"); err != nil {
		t.Fatal(err)
	}
	if err := bank.Transfer("A1", "A2", EUR(40)); err != nil {
		t.Fatal(err)
	}
	return bank
}

func TestEncodeDecodeBank_RoundTrip(t *testing.T) {
	bank := testBank(t)

	var buf bytes.Buffer
	if err := EncodeBank(&buf, bank); err != nil {
		t.Fatalf("EncodeBank() returned an unexpected error: %v", err)
	}

	loaded, err := DecodeBank(&buf)
	if err != nil {
		t.Fatalf("DecodeBank() returned an unexpected error: %v", err)
	}

	if !bank.Equal(loaded) {
		t.Error("decoded bank differs from the encoded one")
	}

	// Loading never introduces an opening deposit beyond what was persisted.
	if got, want := len(loaded.Account("A1").History(0)), len(bank.Account("A1").History(0)); got != want {
		t.Errorf("loaded A1 history length = %d, want %d", got, want)
	}

	// A second cycle must be byte-for-byte stable (canonical order, verbatim
	// timestamps).
	var buf2 bytes.Buffer
	if err := EncodeBank(&buf2, loaded); err != nil {
		t.Fatalf("EncodeBank() returned an unexpected error: %v", err)
	}
	var buf1 bytes.Buffer
	if err := EncodeBank(&buf1, bank); err != nil {
		t.Fatalf("EncodeBank() returned an unexpected error: %v", err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Errorf("encoding is not stable across a load/save cycle:\n%s\nvs\n%s", buf1.String(), buf2.String())
	}
}

// A file written by the historical Python simulator loads as-is: French keys,
// naive isoformat timestamps, no decouvert_max.
func TestDecodeBank_HistoricalFile(t *testing.T) {
	file := `{
  "001": {
    "numero": "001",
    "titulaire": "Jean Dupont",
    "solde": 129.5,
    "historique": [
      {
        "date": "2025-01-15T10:30:00.123456",
        "type": "depot",
        "montant": 150,
        "description": "Solde initial"
      },
      {
        "date": "2025-01-16T09:00:01.000001",
        "type": "retrait",
        "montant": 20.5,
        "description": ""
      }
    ]
  }
}`
	bank, err := DecodeBank(strings.NewReader(file))
	if err != nil {
		t.Fatalf("DecodeBank() returned an unexpected error: %v", err)
	}
	account := bank.Account("001")
	if account == nil {
		t.Fatal("account 001 was not loaded")
	}
	if !account.Balance().Equal(EUR(129.5)) {
		t.Errorf("balance = %s, want %s", account.Balance(), EUR(129.5))
	}
	if !account.Overdraft().IsZero() {
		t.Errorf("overdraft = %s, want zero by default", account.Overdraft())
	}
	ops := account.History(0)
	if len(ops) != 2 {
		t.Fatalf("history length = %d, want 2", len(ops))
	}
	if got := ops[0].Stamp.String(); got != "2025-01-15T10:30:00.123456" {
		t.Errorf("first operation stamp = %q, want verbatim", got)
	}
}

func TestDecodeBank_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "not a json object",
			input: `[]`,
		},
		{
			name:  "truncated document",
			input: `{"A1": {"numero": "A1"`,
		},
		{
			name:  "missing numero",
			input: `{"A1": {"titulaire": "Alice", "solde": 0, "historique": []}}`,
		},
		{
			name:  "missing titulaire",
			input: `{"A1": {"numero": "A1", "solde": 0, "historique": []}}`,
		},
		{
			name:  "missing solde",
			input: `{"A1": {"numero": "A1", "titulaire": "Alice", "historique": []}}`,
		},
		{
			name:  "missing historique",
			input: `{"A1": {"numero": "A1", "titulaire": "Alice", "solde": 0}}`,
		},
		{
			name:  "key and numero disagree",
			input: `{"A1": {"numero": "A2", "titulaire": "Alice", "solde": 0, "historique": []}}`,
		},
		{
			name:  "negative overdraft limit",
			input: `{"A1": {"numero": "A1", "titulaire": "Alice", "solde": 0, "decouvert_max": -10, "historique": []}}`,
		},
		{
			name:  "operation missing its amount",
			input: `{"A1": {"numero": "A1", "titulaire": "Alice", "solde": 0, "historique": [{"date": "2025-01-15T10:30:00", "type": "depot"}]}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := DecodeBank(strings.NewReader(tc.input))
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("DecodeBank() error = %v, want ErrBadFormat", err)
			}
			if bank != nil {
				t.Error("DecodeBank() should not return a partially imported bank")
			}
		})
	}
}

func TestEncodeBank_FieldOrder(t *testing.T) {
	bank := NewBank()
	if _, err := bank.CreateAccount("A1", "Alice", EUR(100), EUR(50)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeBank(&buf, bank); err != nil {
		t.Fatalf("EncodeBank() returned an unexpected error: %v", err)
	}
	out := buf.String()

	// Canonical field order keeps saves diffable.
	fields := []string{`"numero"`, `"titulaire"`, `"solde"`, `"decouvert_max"`, `"historique"`}
	last := -1
	for _, field := range fields {
		idx := strings.Index(out, field)
		if idx < 0 {
			t.Fatalf("field %s is missing from the output:\n%s", field, out)
		}
		if idx < last {
			t.Errorf("field %s appears out of order:\n%s", field, out)
		}
		last = idx
	}

	// solde is a bare number.
	if strings.Contains(out, `"solde":"`) {
		t.Errorf("solde should be a number, got:\n%s", out)
	}
}
