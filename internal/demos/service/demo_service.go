package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/folio-labs/portfolio-backend/internal/demos/domain"
)

type Store interface {
	Create(ctx context.Context, d *domain.DemoResult) error
	List(ctx context.Context, limit int) ([]domain.DemoResult, error)
	Count(ctx context.Context) (int64, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, doc domain.Document) (*domain.Analysis, error)
}

// Runner starts work that must not affect the caller's response.
type Runner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}

type DemoService struct {
	store    Store
	analyzer Analyzer
	runner   Runner
}

// NewDemoService wires the demo playground. analyzer may be nil when no AI
// backend is configured.
func NewDemoService(store Store, analyzer Analyzer, runner Runner) *DemoService {
	return &DemoService{store: store, analyzer: analyzer, runner: runner}
}

// AnalyzeResume runs the ATS review and records the run in the background.
func (s *DemoService) AnalyzeResume(ctx context.Context, doc domain.Document) (*domain.Analysis, error) {
	if s.analyzer == nil {
		return nil, domain.ErrAnalyzerUnavailable
	}

	a, err := s.analyzer.Analyze(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("analyze resume: %w", err)
	}

	input, _ := json.Marshal(map[string]any{
		"file_name": doc.FileName,
		"mime_type": doc.MimeType,
		"size":      len(doc.Data),
	})
	result, _ := json.Marshal(a)
	rec := &domain.DemoResult{DemoType: domain.TypeResumeAnalyzer, InputData: input, ResultData: result}

	s.runner.Go(ctx, "demo-result-save", func(ctx context.Context) error {
		return s.store.Create(ctx, rec)
	})
	return a, nil
}

func (s *DemoService) Recent(ctx context.Context, limit int) ([]domain.DemoResult, error) {
	return s.store.List(ctx, limit)
}

func (s *DemoService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
