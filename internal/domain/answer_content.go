package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// AnswerContent is the decoded payload of an answer. The concrete type is
// selected by the answer's type tag.
type AnswerContent interface {
	Type() AnswerType
	isAnswerContent()
}

// ParagraphContent is free text. It is stored verbatim.
type ParagraphContent struct {
	Text string
}

// TableContent is an arbitrary structured value rendered as a table.
type TableContent struct {
	Value any
}

// CodeContent is an arbitrary structured value holding a code sample.
type CodeContent struct {
	Value any
}

// OtherContent carries any tag outside the built-in set.
type OtherContent struct {
	Tag   AnswerType
	Value any
}

func (ParagraphContent) Type() AnswerType { return AnswerTypeParagraph }
func (TableContent) Type() AnswerType     { return AnswerTypeTable }
func (CodeContent) Type() AnswerType      { return AnswerTypeCode }
func (c OtherContent) Type() AnswerType   { return c.Tag }

func (ParagraphContent) isAnswerContent() {}
func (TableContent) isAnswerContent()     {}
func (CodeContent) isAnswerContent()      {}
func (OtherContent) isAnswerContent()     {}

// ParseAnswerContent builds the content variant for typ from a raw JSON
// payload as received from a client.
func ParseAnswerContent(typ AnswerType, raw json.RawMessage) (AnswerContent, error) {
	if typ == "" {
		return nil, NewValidationError("type", "required")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, NewValidationError("content", "required")
	}

	if typ == AnswerTypeParagraph {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, NewValidationError("content", "must be an object with a text field")
		}
		textRaw, ok := obj["text"]
		if !ok {
			return nil, NewValidationError("content.text", "required")
		}
		var text string
		if err := json.Unmarshal(textRaw, &text); err != nil {
			return nil, NewValidationError("content.text", "must be a string")
		}
		return ParagraphContent{Text: text}, nil
	}

	value, err := decodeValue(raw)
	if err != nil {
		return nil, NewValidationError("content", "must be valid JSON")
	}

	switch typ {
	case AnswerTypeTable:
		return TableContent{Value: value}, nil
	case AnswerTypeCode:
		return CodeContent{Value: value}, nil
	default:
		return OtherContent{Tag: typ, Value: value}, nil
	}
}

// EncodeAnswerContent serializes c into the string stored on an answer.
// Paragraphs are stored as their text; every other variant is stored as
// canonical JSON of its value, with object keys sorted.
func EncodeAnswerContent(c AnswerContent) (string, error) {
	switch v := c.(type) {
	case ParagraphContent:
		return v.Text, nil
	case TableContent:
		return encodeValue(v.Value)
	case CodeContent:
		return encodeValue(v.Value)
	case OtherContent:
		return encodeValue(v.Value)
	case nil:
		return "", errors.New("encode answer content: nil content")
	default:
		return "", fmt.Errorf("encode answer content: unsupported variant %T", c)
	}
}

// DecodeAnswerContent reverses EncodeAnswerContent for a stored answer.
func DecodeAnswerContent(typ AnswerType, stored string) (AnswerContent, error) {
	if typ == AnswerTypeParagraph {
		return ParagraphContent{Text: stored}, nil
	}

	value, err := decodeValue([]byte(stored))
	if err != nil {
		return nil, fmt.Errorf("decode answer content: %w", err)
	}

	switch typ {
	case AnswerTypeTable:
		return TableContent{Value: value}, nil
	case AnswerTypeCode:
		return CodeContent{Value: value}, nil
	default:
		return OtherContent{Tag: typ, Value: value}, nil
	}
}

// EncodeAnswerPayload parses raw for typ and returns the stored form.
func EncodeAnswerPayload(typ AnswerType, raw json.RawMessage) (string, error) {
	content, err := ParseAnswerContent(typ, raw)
	if err != nil {
		return "", err
	}
	return EncodeAnswerContent(content)
}

// decodeValue keeps numbers as json.Number so that large integers and the
// exact literal survive a round trip.
func decodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func encodeValue(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode answer content: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
