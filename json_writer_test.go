package capgains

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1)
		w.Append("a", "sell")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"z":1,"a":"sell"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("quantity", 0)
		w.Optional("time", "")
		w.Optional("instrumentId", "US0378331005")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"quantity":0,"instrumentId":"US0378331005"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("year", 2021)
		w.Embed(json.RawMessage(`{"fees":-2,"deposits":1000}`))
		w.EmbedFrom(struct {
			Period string `json:"period"`
		}{"all"})
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"year":2021,"fees":-2,"deposits":1000,"period":"all"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", math.Inf(1))
		w.Append("good", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() succeeded, want an error")
		}
	})
}
