package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// AnswerPayload is an answer as submitted by a client, before encoding.
type AnswerPayload struct {
	Type    AnswerType      `json:"type"`
	Content json.RawMessage `json:"content"`
}

// ParseAnswerPayloads decodes the "answers" member of a request body. It
// must be present and be an array of objects.
func ParseAnswerPayloads(raw json.RawMessage) ([]AnswerPayload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, NewValidationError("answers", "required")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, NewValidationError("answers", "must be an array")
	}

	var errs []FieldError
	payloads := make([]AnswerPayload, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &payloads[i]); err != nil || bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("answers[%d]", i),
				Message: "must be an object with type and content",
			})
		}
	}

	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}
	return payloads, nil
}

// EncodeAnswerPayloads runs the content codec over every payload and
// returns the stored forms in order. Field errors are reported per index.
func EncodeAnswerPayloads(payloads []AnswerPayload) ([]string, error) {
	var errs []FieldError
	out := make([]string, len(payloads))

	for i, p := range payloads {
		stored, err := EncodeAnswerPayload(p.Type, p.Content)
		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				return nil, fmt.Errorf("answers[%d]: %w", i, err)
			}
			for _, fe := range ve.Errors {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("answers[%d].%s", i, fe.Field),
					Message: fe.Message,
				})
			}
			continue
		}
		out[i] = stored
	}

	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}
	return out, nil
}
