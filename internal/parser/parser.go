// Package parser recovers structured resume data from raw assistant text.
//
// Language models are an unreliable upstream: the same prompt can come back
// as the requested JSON envelope, as plain prose, or as something in between.
// Parse never fails; anything that is not the full envelope degrades to a
// plain-text reply.
package parser

import (
	"encoding/json"

	"github.com/chatfolio/chatfolio/internal/domain"
)

// Result is a display message plus optional extracted data.
type Result struct {
	Message   string
	Extracted *domain.ExtractedSection
}

type envelope struct {
	ExtractedData *domain.ExtractedSection `json:"extractedData"`
	NextQuestion  string                   `json:"nextQuestion"`
}

// Parse attempts to read raw as the JSON envelope
// {"extractedData": {...}, "nextQuestion": "..."}. Only when both fields are
// present does it return the next question as the message along with the
// extracted data; in every other case the raw text is returned verbatim with
// no data. Malformed JSON is a normal fallback path, not an error.
func Parse(raw string) Result {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Result{Message: raw}
	}

	if env.ExtractedData == nil || env.NextQuestion == "" {
		return Result{Message: raw}
	}

	return Result{Message: env.NextQuestion, Extracted: env.ExtractedData}
}
