// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Kindled note tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kindledhq/kindled/internal/noteservice"
	"github.com/kindledhq/kindled/internal/query"
)

// Server wraps the MCP server with Kindled tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all Kindled tools registered.
func New(svc *noteservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Kindled",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes by text over title and content, with optional type filter."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithString("type", mcp.Description("Optional filter: general or prayer_request")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a note by its unique name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Unique name of the note (e.g. hope-river)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note. Returns the assigned unique name. "+
			"Keep the edit code: it is required to change or delete the note later."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title (1-100 characters)")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note content (1-2000 characters)")),
		mcp.WithString("type", mcp.Description("Note type: general (default) or prayer_request")),
		mcp.WithString("edit_code", mcp.Required(), mcp.Description("Secret (6-64 characters) guarding edits")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List the most recent notes."),
		mcp.WithString("type", mcp.Description("Optional filter: general or prayer_request")),
	), s.listNotes)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	params := url.Values{"q": {q}}
	if t := req.GetString("type", ""); t != "" {
		params.Set("type", t)
	}
	return s.list(ctx, params)
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := url.Values{}
	if t := req.GetString("type", ""); t != "" {
		params.Set("type", t)
	}
	return s.list(ctx, params)
}

func (s *Server) list(ctx context.Context, params url.Values) (*mcp.CallToolResult, error) {
	spec, err := query.Normalize(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	env, err := s.svc.ListNotes(ctx, spec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(env, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.svc.GetNote(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	code, err := req.RequireString("edit_code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := CreateRequest{
		Title:    title,
		Content:  content,
		Type:     req.GetString("type", ""),
		EditCode: code,
	}
	if err := body.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	note, err := s.svc.CreateNote(ctx, body.Title, body.Content, body.NoteType(), body.EditCode)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", note.UniqueName)), nil
}
