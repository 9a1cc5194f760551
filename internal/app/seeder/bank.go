package seeder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// Bank is a question bank file:
//
//	categories:
//	  - name: Algorithms
//	    questions:
//	      - title: Two Sum
//	        description: Find two numbers that add up to a target.
//	        difficulty: Easy
//	        tags: [array, hash-map]
//	        answers:
//	          - type: paragraph
//	            content: {text: Use a hash map.}
type Bank struct {
	Categories []BankCategory `yaml:"categories"`
}

// BankCategory is a category with the questions seeded into it.
type BankCategory struct {
	Name      string         `yaml:"name"`
	Questions []BankQuestion `yaml:"questions"`
}

// BankQuestion is a question with its answers.
type BankQuestion struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Difficulty  domain.Difficulty `yaml:"difficulty"`
	Tags        []string          `yaml:"tags"`
	Answers     []BankAnswer      `yaml:"answers"`
}

// BankAnswer holds an answer type and its content as written in YAML.
type BankAnswer struct {
	Type    domain.AnswerType `yaml:"type"`
	Content any               `yaml:"content"`
}

// ReadBank parses a bank from r. Unknown keys are rejected.
func ReadBank(r io.Reader) (*Bank, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Bank
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return &b, nil
		}
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	return &b, nil
}

// ReadBankFile parses the bank at path.
func ReadBankFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()

	return ReadBank(f)
}

// Payloads converts the YAML answers into the payloads accepted by the
// answer codec.
func (q BankQuestion) Payloads() ([]domain.AnswerPayload, error) {
	out := make([]domain.AnswerPayload, len(q.Answers))
	for i, a := range q.Answers {
		var raw json.RawMessage
		if a.Content != nil {
			b, err := json.Marshal(a.Content)
			if err != nil {
				return nil, fmt.Errorf("answers[%d]: %w", i, err)
			}
			raw = b
		}
		out[i] = domain.AnswerPayload{Type: a.Type, Content: raw}
	}
	return out, nil
}
