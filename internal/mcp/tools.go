// ABOUTME: MCP tool implementations for athlete performance data.
// ABOUTME: Exposes session listing and derived-metric report computation.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/scurfo/perfdash/internal/csvload"
	"github.com/scurfo/perfdash/internal/engine"
	"github.com/scurfo/perfdash/internal/models"
)

func (s *Server) registerTools() {
	// list_athletes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_athletes",
		Description: "List all athletes with recorded test sessions",
	}, s.handleListAthletes)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List test sessions, optionally filtered by athlete",
	}, s.handleListSessions)

	// get_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_report",
		Description: "Compute the derived-metrics report (normalized strength, asymmetry, target scores) for an athlete's session",
	}, s.handleGetReport)

	// get_targets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_targets",
		Description: "Show the clinical target table used for scoring",
	}, s.handleGetTargets)

	// delete_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session by ID or ID prefix",
	}, s.handleDeleteSession)
}

// Tool input/output types

type listSessionsInput struct {
	Athlete string `json:"athlete,omitempty" jsonschema:"Filter by athlete name"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type sessionOutput struct {
	ID       string  `json:"id"`
	Athlete  string  `json:"athlete"`
	Date     string  `json:"date"`
	BodyMass float64 `json:"body_mass"`
}

type getReportInput struct {
	Athlete string `json:"athlete" jsonschema:"Athlete name"`
	Date    string `json:"date,omitempty" jsonschema:"Session date (YYYY-MM-DD), defaults to the latest session"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type deleteSessionInput struct {
	ID string `json:"id" jsonschema:"Session ID or prefix"`
}

// Tool handlers

func (s *Server) handleListAthletes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	athletes, err := s.repo.ListAthletes()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	if len(athletes) == 0 {
		return nil, map[string]interface{}{"message": "No athletes found."}, nil
	}
	return nil, athletes, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	sessions, err := s.repo.ListSessions(input.Athlete, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}

	out := make([]sessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, sessionOutput{
			ID:       sess.ID.String()[:8],
			Athlete:  sess.Athlete,
			Date:     sess.Date.Format(csvload.DateLayout),
			BodyMass: sess.BodyMass,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetReport(ctx context.Context, req *mcp.CallToolRequest, input getReportInput) (*mcp.CallToolResult, any, error) {
	session, err := s.findSession(input.Athlete, input.Date)
	if err != nil {
		return nil, nil, err
	}

	report, err := engine.ComputeSession(session, s.targets)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute report: %w", err)
	}
	return nil, report, nil
}

func (s *Server) handleGetTargets(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.targets, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input deleteSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteSession(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete session: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted session: %s", input.ID),
	}, nil
}

// findSession resolves an athlete plus optional date to a stored session.
func (s *Server) findSession(athlete, date string) (*models.Session, error) {
	if date == "" {
		session, err := s.repo.LatestSession(athlete)
		if err != nil {
			return nil, fmt.Errorf("failed to find latest session: %w", err)
		}
		return session, nil
	}

	day, err := time.Parse(csvload.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}

	sessions, err := s.repo.ListSessions(athlete, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, sess := range sessions {
		if sess.Date.Year() == day.Year() && sess.Date.YearDay() == day.YearDay() {
			return sess, nil
		}
	}
	return nil, fmt.Errorf("no session for %s on %s", athlete, date)
}
