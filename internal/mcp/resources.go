// ABOUTME: MCP resource implementations for athlete performance data.
// ABOUTME: Provides perfdash://targets and perfdash://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/scurfo/perfdash/internal/engine"
)

func (s *Server) registerResources() {
	// perfdash://targets - the clinical target table
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "perfdash://targets",
		Name:        "Clinical Targets",
		Description: "Target values and thresholds used to score each test",
		MIMEType:    "application/json",
	}, s.handleTargetsResource)

	// perfdash://summary - latest report per athlete
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "perfdash://summary",
		Name:        "Athlete Summary Dashboard",
		Description: "Latest derived-metrics report for every athlete",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTargetsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.targets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal targets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "perfdash://targets",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	athletes, err := s.repo.ListAthletes()
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	reports := make(map[string]*engine.SessionReport)
	for _, athlete := range athletes {
		session, err := s.repo.LatestSession(athlete)
		if err != nil {
			continue
		}
		report, err := engine.ComputeSession(session, s.targets)
		if err != nil {
			// A bad session blanks that athlete's card, nothing more.
			continue
		}
		reports[athlete] = report
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"athletes":     reports,
		"summary": map[string]int{
			"athlete_count": len(athletes),
			"report_count":  len(reports),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "perfdash://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
