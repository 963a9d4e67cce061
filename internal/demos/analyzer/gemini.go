// Package analyzer reviews resumes with a generative model.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/folio-labs/portfolio-backend/internal/demos/domain"
)

const resumePrompt = "Analyze this resume for ATS compatibility. Provide a score out of 100, " +
	"an ATS pass rate percentage, and 3-5 specific feedback points for improvement."

// responseSchema pins the model output to domain.Analysis.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeInteger,
			Description: "The ATS score out of 100",
		},
		"ats_pass_rate": {
			Type:        genai.TypeString,
			Description: "The ATS pass rate percentage (e.g., '92%')",
		},
		"feedback": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3-5 specific feedback points for improvement",
		},
	},
	Required: []string{"score", "ats_pass_rate", "feedback"},
}

// GeminiAnalyzer sends the document inline to the Gemini API.
type GeminiAnalyzer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiAnalyzer(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiAnalyzer{client: client, model: model, timeout: timeout}, nil
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, doc domain.Document) (*domain.Analysis, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(doc.Data, doc.MimeType),
			genai.NewPartFromText(resumePrompt),
		}, genai.RoleUser),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	return parseAnalysis(resp.Text())
}

// parseAnalysis decodes the model's JSON answer, tolerating a fenced code block.
func parseAnalysis(text string) (*domain.Analysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty analysis response")
	}

	var out domain.Analysis
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	if out.Score < 0 || out.Score > 100 {
		return nil, fmt.Errorf("analysis score %d out of range", out.Score)
	}
	if out.Feedback == nil {
		out.Feedback = []string{}
	}
	return &out, nil
}
