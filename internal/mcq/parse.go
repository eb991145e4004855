package mcq

import (
	"encoding/json"
	"strings"
)

// record is the raw per-question shape before validation. Pointer
// fields distinguish a missing key from an empty value.
type record struct {
	Question *string  `json:"question"`
	Options  []string `json:"options"`
	Answer   *string  `json:"answer"`
}

// batchEnvelope is the object form of the response.
type batchEnvelope struct {
	Questions []json.RawMessage `json:"questions"`
}

// ParseBatch extracts the JSON document from a raw model response and
// validates it into questions. Invalid records are dropped and
// counted, not fatal; an empty surviving set is ErrNoValidQuestions.
func ParseBatch(raw string) ([]Question, int, error) {
	doc, err := extractJSON(raw)
	if err != nil {
		return nil, 0, err
	}

	records, err := decodeRecords(doc)
	if err != nil {
		return nil, 0, err
	}

	var (
		questions []Question
		dropped   int
	)
	for _, r := range records {
		q, ok := validateRecord(r)
		if !ok {
			dropped++
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, dropped, &ErrNoValidQuestions{Dropped: dropped}
	}
	return questions, dropped, nil
}

// decodeRecords accepts either a bare array of records or an object
// wrapping a "questions" array.
func decodeRecords(doc string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(doc)
	if strings.HasPrefix(trimmed, "{") {
		var env batchEnvelope
		if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
			return nil, &ErrMalformedResponse{Raw: doc}
		}
		return env.Questions, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, &ErrMalformedResponse{Raw: doc}
	}
	return items, nil
}

// validateRecord checks one raw record: required fields present, at
// least two options, and the answer matching one of them.
func validateRecord(raw json.RawMessage) (Question, bool) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Question{}, false
	}

	if r.Question == nil || strings.TrimSpace(*r.Question) == "" {
		return Question{}, false
	}
	if r.Answer == nil || strings.TrimSpace(*r.Answer) == "" {
		return Question{}, false
	}
	if len(r.Options) < 2 {
		return Question{}, false
	}

	answer := strings.TrimSpace(*r.Answer)
	matched := false
	for _, opt := range r.Options {
		if strings.TrimSpace(opt) == answer {
			matched = true
			break
		}
	}
	if !matched {
		return Question{}, false
	}

	return Question{
		Text:    strings.TrimSpace(*r.Question),
		Options: r.Options,
		Answer:  answer,
	}, true
}
