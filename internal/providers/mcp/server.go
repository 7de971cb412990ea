package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/service/agent"
	"github.com/sandevgo/muckraker/pkg/log"
	"github.com/sandevgo/muckraker/pkg/srv"
)

var _ srv.Service = (*Server)(nil)

// Server exposes the archive over MCP stdio so external agent hosts can
// search it with the same retrieval semantics the conversational path uses.
type Server struct {
	searcher core.CorpusSearcher
	browser  core.CorpusBrowser
	inner    *server.MCPServer
}

func NewServer(searcher core.CorpusSearcher, browser core.CorpusBrowser) *Server {
	s := &Server{searcher: searcher, browser: browser}

	inner := server.NewMCPServer(
		core.AppName,
		core.AppVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	inner.AddTool(mcp.NewTool("corpus_search",
		mcp.WithDescription("Search analyzed newspaper archive records. An empty query returns a diverse sample of high-potential records."),
		mcp.WithString("query", mcp.Description("Free-text search terms")),
		mcp.WithString("potential", mcp.Description("Filter by documentary potential"), mcp.Enum("YES", "MAYBE", "NO")),
		mcp.WithNumber("min_relevance", mcp.Description("Minimum relevance score, 0 to 1")),
		mcp.WithNumber("limit", mcp.Description("Maximum records to return")),
	), s.handleSearch)

	inner.AddTool(mcp.NewTool("corpus_stats",
		mcp.WithDescription("Report how many records the archive holds, broken down by documentary potential."),
	), s.handleStats)

	s.inner = inner
	return s
}

const defaultToolLimit = 10

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	potential := req.GetString("potential", "")
	minRelevance := req.GetFloat("min_relevance", 0)
	limit := req.GetInt("limit", defaultToolLimit)

	var (
		records []core.CorpusRecord
		err     error
	)
	if potential != "" || minRelevance > 0 {
		records, err = s.browser.Filtered(ctx, core.CorpusFilter{
			Query:        query,
			Potential:    core.DocumentaryPotential(potential),
			MinRelevance: minRelevance,
			Limit:        limit,
		})
	} else {
		records, err = s.searcher.Search(ctx, core.CorpusQuery{
			Keywords: agent.ExtractKeywords(query),
			Limit:    limit,
		})
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("corpus search: %v", err)), nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.browser.Stats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("corpus stats: %v", err)), nil
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("marshal stats: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// Start serves MCP over stdio until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("mcp server listening on stdio")

	stdio := server.NewStdioServer(s.inner)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	// Listen exits with the context; nothing to tear down.
	return nil
}
