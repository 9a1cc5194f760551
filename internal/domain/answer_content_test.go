package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestEncodeAnswerPayload_ParagraphStoresTextVerbatim(t *testing.T) {
	t.Parallel()

	got, err := EncodeAnswerPayload(AnswerTypeParagraph, json.RawMessage(`{"text":"A closure captures variables."}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A closure captures variables." {
		t.Errorf("got %q", got)
	}
}

func TestEncodeAnswerPayload_StructuredIsCanonicalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  AnswerType
		raw  string
		want string
	}{
		{"table", AnswerTypeTable, `{"rows":[["a","b"]]}`, `{"rows":[["a","b"]]}`},
		{"code sorts keys", AnswerTypeCode, `{ "lang": "js", "code": "x<1 && y>2" }`, `{"code":"x<1 && y>2","lang":"js"}`},
		{"unknown tag", "diagram", `{"nodes":3}`, `{"nodes":3}`},
		{"array value", AnswerTypeTable, `[1, 2.50, 3]`, `[1,2.50,3]`},
		{"string value", AnswerTypeCode, `"fmt.Println()"`, `"fmt.Println()"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := EncodeAnswerPayload(tt.typ, json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAnswerContent_RoundTrip(t *testing.T) {
	t.Parallel()

	payloads := map[AnswerType]string{
		AnswerTypeParagraph: `{"text":"plain <b>text</b>"}`,
		AnswerTypeTable:     `{"headers":["k","v"],"rows":[["a",1],["b",12345678901234567890]]}`,
		AnswerTypeCode:      `{"lang":"go","code":"func main() {}","lines":null}`,
		"custom":            `[{"x":true}]`,
	}

	for typ, raw := range payloads {
		original, err := ParseAnswerContent(typ, json.RawMessage(raw))
		if err != nil {
			t.Fatalf("%s: parse: %v", typ, err)
		}
		stored, err := EncodeAnswerContent(original)
		if err != nil {
			t.Fatalf("%s: encode: %v", typ, err)
		}
		decoded, err := DecodeAnswerContent(typ, stored)
		if err != nil {
			t.Fatalf("%s: decode: %v", typ, err)
		}
		if !reflect.DeepEqual(original, decoded) {
			t.Errorf("%s: round trip mismatch: %#v != %#v", typ, original, decoded)
		}
		if decoded.Type() != typ {
			t.Errorf("%s: decoded type = %q", typ, decoded.Type())
		}
	}
}

func TestParseAnswerContent_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   AnswerType
		raw   string
		field string
	}{
		{"empty type", "", `{"text":"x"}`, "type"},
		{"missing content", AnswerTypeCode, ``, "content"},
		{"null content", AnswerTypeTable, `null`, "content"},
		{"paragraph not object", AnswerTypeParagraph, `"just text"`, "content"},
		{"paragraph without text", AnswerTypeParagraph, `{"body":"x"}`, "content.text"},
		{"paragraph text not string", AnswerTypeParagraph, `{"text":42}`, "content.text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseAnswerContent(tt.typ, json.RawMessage(tt.raw))
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Errors[0].Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestEncodeAnswerContent_NilContent(t *testing.T) {
	t.Parallel()

	if _, err := EncodeAnswerContent(nil); err == nil {
		t.Fatal("expected error for nil content")
	}
}

func TestDecodeAnswerContent_InvalidStoredJSON(t *testing.T) {
	t.Parallel()

	if _, err := DecodeAnswerContent(AnswerTypeTable, "{not json"); err == nil {
		t.Fatal("expected error")
	}
}
