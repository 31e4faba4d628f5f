package listfield

import (
	"reflect"
	"testing"
)

func TestDecodeEmptyInputs(t *testing.T) {
	for _, value := range []any{nil, "", "   ", (*string)(nil), 42, map[string]any{"name": "Go"}} {
		if got := Decode(value); len(got) != 0 {
			t.Fatalf("Decode(%v) = %v, want empty", value, got)
		}
	}
}

func TestDecodeSequencePassthrough(t *testing.T) {
	entries := []Entry{Plain("Go"), {Name: "English", Level: "B2"}}
	got := Decode(entries)
	if !reflect.DeepEqual(got, entries) {
		t.Fatalf("Decode passthrough = %v, want %v", got, entries)
	}
}

func TestDecodeJSONArrayOfStrings(t *testing.T) {
	got := DecodeString(`["Go","SQL","Docker"]`)
	want := []Entry{Plain("Go"), Plain("SQL"), Plain("Docker")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeString = %v, want %v", got, want)
	}
}

func TestDecodeJSONArrayOfObjects(t *testing.T) {
	got := DecodeString(`[{"name":"English","level":"C1"},{"name":"Spanish","level":"native"}]`)
	want := []Entry{{Name: "English", Level: "C1"}, {Name: "Spanish", Level: "native"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeString = %v, want %v", got, want)
	}
}

func TestDecodeSingleJSONValueWrapped(t *testing.T) {
	got := DecodeString(`{"name":"English","level":"C1"}`)
	want := []Entry{{Name: "English", Level: "C1"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("single object = %v, want %v", got, want)
	}

	got = DecodeString(`"Go"`)
	want = []Entry{Plain("Go")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("single string = %v, want %v", got, want)
	}
}

func TestDecodeCommaFallback(t *testing.T) {
	got := DecodeString("a, b ,c")
	want := []Entry{Plain("a"), Plain("b"), Plain("c")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("comma fallback = %v, want %v", got, want)
	}

	got = DecodeString(" , a,, ")
	want = []Entry{Plain("a")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("comma fallback with empties = %v, want %v", got, want)
	}
}

func TestDecodeDiscardsMalformedElements(t *testing.T) {
	got := DecodeString(`["Go", 7, {"level":"C1"}, {"name":"English","level":"C1"}, ""]`)
	want := []Entry{Plain("Go"), {Name: "English", Level: "C1"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mixed array = %v, want %v", got, want)
	}
}

func TestEncodeCoercesNonSequence(t *testing.T) {
	if got := Encode(nil); got != "[]" {
		t.Fatalf("Encode(nil) = %q, want []", got)
	}
	if got := Encode(42); got != "[]" {
		t.Fatalf("Encode(42) = %q, want []", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]Entry{
		{},
		{Plain("Go"), Plain("SQL")},
		{{Name: "English", Level: "C1"}, Plain("Spanish")},
	}
	for _, entries := range cases {
		encoded := Encode(entries)
		decoded := DecodeString(encoded)
		if !reflect.DeepEqual(decoded, entries) && !(len(decoded) == 0 && len(entries) == 0) {
			t.Fatalf("round trip of %v produced %v (encoded %q)", entries, decoded, encoded)
		}
	}
}

func TestEncodePlainEntriesAsStrings(t *testing.T) {
	encoded := Encode([]Entry{Plain("Go"), {Name: "English", Level: "B2"}})
	want := `["Go",{"name":"English","level":"B2"}]`
	if encoded != want {
		t.Fatalf("Encode = %q, want %q", encoded, want)
	}
}

func TestDecodeStringEquivalentToDirectSequence(t *testing.T) {
	direct := Decode([]string{"Go", "SQL"})
	fromText := DecodeString(`["Go","SQL"]`)
	if !reflect.DeepEqual(direct, fromText) {
		t.Fatalf("direct %v differs from stored-text %v", direct, fromText)
	}
}
