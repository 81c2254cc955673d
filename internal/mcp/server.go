package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"workjournal/internal/journal"
)

// NewServer creates an MCP server with read-only tools over the journal.
func NewServer(svc *journal.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Work Journal",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("list_entries",
			mcp.WithDescription("List journal entries ordered by date, oldest first. Optionally filter by category."),
			mcp.WithString("category",
				mcp.Description("Optional: filter by category (work, learning, interest-things)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of entries to return (default: 50, max: 200)"),
			),
		),
		handleListEntries(svc),
	)

	s.AddTool(
		mcp.NewTool("get_entry",
			mcp.WithDescription("Get a single journal entry by its ID."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The entry ID (24-character hex string)"),
			),
		),
		handleGetEntry(svc),
	)

	s.AddTool(
		mcp.NewTool("list_weeks",
			mcp.WithDescription("List journal entries grouped into calendar weeks. Each week is keyed by the Sunday starting it and partitions its entries by category."),
		),
		handleListWeeks(svc),
	)

	return s
}

// EntryResult represents an entry in tool responses.
type EntryResult struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// WeekResult represents one week bucket in tool responses.
type WeekResult struct {
	Sunday   string        `json:"sunday"`
	Work     []EntryResult `json:"work"`
	Learning []EntryResult `json:"learning"`
	Interest []EntryResult `json:"interestThings"`
}

func handleListEntries(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var filter journal.Category
		if s := req.GetString("category", ""); s != "" {
			c, ok := journal.ParseCategory(s)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", s)), nil
			}
			filter = c
		}

		entries, err := svc.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list entries: %v", err)), nil
		}

		results := filterEntries(entries, filter, req.GetInt("limit", 50))

		data, _ := json.MarshalIndent(results, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

// filterEntries applies the optional category filter and the result limit.
func filterEntries(entries []journal.Entry, category journal.Category, limit int) []EntryResult {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	results := make([]EntryResult, 0, len(entries))
	for _, e := range entries {
		if category != "" && e.Category != category {
			continue
		}
		if len(results) == limit {
			break
		}
		results = append(results, entryToResult(e))
	}
	return results
}

func handleGetEntry(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		entry, err := svc.GetByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get entry: %v", err)), nil
		}

		data, _ := json.MarshalIndent(entryToResult(*entry), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleListWeeks(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		weeks, err := svc.Weeks(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to group entries: %v", err)), nil
		}

		results := make([]WeekResult, len(weeks))
		for i, week := range weeks {
			results[i] = WeekResult{
				Sunday:   week.Sunday,
				Work:     entriesToResults(week.ForCategory(journal.CategoryWork)),
				Learning: entriesToResults(week.ForCategory(journal.CategoryLearning)),
				Interest: entriesToResults(week.ForCategory(journal.CategoryInterest)),
			}
		}

		data, _ := json.MarshalIndent(results, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func entryToResult(e journal.Entry) EntryResult {
	return EntryResult{
		ID:       e.ID.Hex(),
		Date:     e.Date.Format(journal.DateLayout),
		Category: string(e.Category),
		Text:     e.Text,
	}
}

func entriesToResults(entries []journal.Entry) []EntryResult {
	results := make([]EntryResult, len(entries))
	for i, e := range entries {
		results[i] = entryToResult(e)
	}
	return results
}
