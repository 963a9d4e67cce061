package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Counter is satisfied by every collection service.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type VisitorCounter interface {
	TotalVisitors(ctx context.Context) (int64, error)
}

// Sources are the collections the dashboard summarizes.
type Sources struct {
	Visitors VisitorCounter
	Projects Counter
	Blogs    Counter
	Contacts Counter
	Demos    Counter
	Quotes   Counter
}

type Summary struct {
	TotalVisitors int64 `json:"total_visitors"`
	TotalProjects int64 `json:"total_projects"`
	TotalBlogs    int64 `json:"total_blogs"`
	TotalContacts int64 `json:"total_contacts"`
	TotalDemos    int64 `json:"total_demos"`
	TotalQuotes   int64 `json:"total_quotes"`
}

type DashboardService struct {
	src Sources
}

func NewDashboardService(src Sources) *DashboardService {
	return &DashboardService{src: src}
}

// Summary runs every count concurrently and fails if any of them does.
func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	eg, egCtx := errgroup.WithContext(ctx)

	count := func(name string, c Counter, dst *int64) {
		eg.Go(func() error {
			n, err := c.Count(egCtx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("projects", s.src.Projects, &out.TotalProjects)
	count("blogs", s.src.Blogs, &out.TotalBlogs)
	count("contacts", s.src.Contacts, &out.TotalContacts)
	count("demos", s.src.Demos, &out.TotalDemos)
	count("quotes", s.src.Quotes, &out.TotalQuotes)
	eg.Go(func() error {
		n, err := s.src.Visitors.TotalVisitors(egCtx)
		if err != nil {
			return fmt.Errorf("count visitors: %w", err)
		}
		out.TotalVisitors = n
		return nil
	})

	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return out, nil
}
