package domain

import (
	"encoding/json"
	"errors"
	"slices"
	"time"
)

const (
	TypeResumeAnalyzer = "ResumeAnalyzer"
	TypeJobSearch      = "JobSearch"
	TypeAPITester      = "ApiTester"
)

// Types is the closed set of demo kinds a result may be recorded under.
var Types = []string{TypeResumeAnalyzer, TypeJobSearch, TypeAPITester}

func ValidType(t string) bool { return slices.Contains(Types, t) }

var (
	// ErrAnalyzerUnavailable means no AI backend is configured.
	ErrAnalyzerUnavailable = errors.New("resume analyzer is not configured")
	// ErrDocumentTooLarge is returned for documents over the configured size.
	ErrDocumentTooLarge = errors.New("document too large")
	ErrUnknownType      = errors.New("unknown demo type")
)

// DemoResult records one run of a playground demo.
type DemoResult struct {
	ID         string          `json:"id"`
	DemoType   string          `json:"demo_type"`
	InputData  json.RawMessage `json:"input_data"`
	ResultData json.RawMessage `json:"result_data"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Document is an uploaded file to analyze.
type Document struct {
	FileName string
	MimeType string
	Data     []byte
}

// Analysis is the structured ATS review of a resume.
type Analysis struct {
	Score       int      `json:"score"`
	ATSPassRate string   `json:"ats_pass_rate"`
	Feedback    []string `json:"feedback"`
}
