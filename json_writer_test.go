package banque

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter_KeepsOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 1)
	w.Append("a", 2)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	want := `{"b":1,"a":2}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", "x")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	want := `{"a":1,"set":"x"}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Embed(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(map[string]int{"a": 1})
	w.Append("b", 2)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	want := `{"a":1,"b":2}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_EmptyObject(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", got)
	}
}

func TestJsonObjectWriter_PropagatesError(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {}) // functions are not marshalable
	w.Append("good", 1)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() should propagate the marshal error")
	}
}

// The writer's output must stay valid JSON.
func TestJsonObjectWriter_ValidJSON(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", []int{1, 2})
	w.Append("b", map[string]string{"k": "v"})
	out, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var check map[string]any
	if err := json.Unmarshal(out, &check); err != nil {
		t.Errorf("output is not valid JSON: %v\n%s", err, out)
	}
}
