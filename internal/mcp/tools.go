// ABOUTME: MCP tools for document CRUD and block tag operations.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/export"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/sanitize"
	"github.com/deathau/editorjs-playground/internal/store"
)

func (s *Server) registerTools() {
	// add_document
	s.server.AddTool(&mcp.Tool{
		Name:        "add_document",
		Description: "Create a new document with a single tagged-text block",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Document title"},
				"text": {"type": "string", "description": "Block text (inline HTML, line breaks only)"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Optional block tags"}
			},
			"required": ["title", "text"]
		}`),
	}, s.handleAddDocument)

	// list_documents
	s.server.AddTool(&mcp.Tool{
		Name:        "list_documents",
		Description: "List documents with optional tag filtering",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tag": {"type": "string", "description": "Filter by block tag"},
				"limit": {"type": "integer", "description": "Max results", "default": 20}
			}
		}`),
	}, s.handleListDocuments)

	// get_document
	s.server.AddTool(&mcp.Tool{
		Name:        "get_document",
		Description: "Get a document by ID prefix",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Document ID or prefix (6+ chars)"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetDocument)

	// update_block_text
	s.server.AddTool(&mcp.Tool{
		Name:        "update_block_text",
		Description: "Replace the text of one block in a document",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Document ID or prefix"},
				"block": {"type": "integer", "description": "Block index, 0-based"},
				"text": {"type": "string", "description": "New block text"}
			},
			"required": ["id", "block", "text"]
		}`),
	}, s.handleUpdateBlockText)

	// toggle_tag
	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_tag",
		Description: "Toggle a tag on one block of a document",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Document ID or prefix"},
				"block": {"type": "integer", "description": "Block index, 0-based"},
				"tag": {"type": "string", "description": "Tag name"}
			},
			"required": ["id", "block", "tag"]
		}`),
	}, s.handleToggleTag)

	// delete_document
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_document",
		Description: "Delete a document",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Document ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteDocument)

	// list_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "list_tags",
		Description: "List all tags with block counts",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleListTags)

	// export_document
	s.server.AddTool(&mcp.Tool{
		Name:        "export_document",
		Description: "Export a document as JSON or markdown",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Document ID or prefix"},
				"format": {"type": "string", "description": "Format: json or md", "default": "json"}
			},
			"required": ["id"]
		}`),
	}, s.handleExportDocument)
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

// resolveDocument finds a document by full UUID or ID prefix.
func (s *Server) resolveDocument(id string) (*models.Document, error) {
	if parsed, parseErr := uuid.Parse(id); parseErr == nil {
		return store.GetDocumentByID(s.db, parsed)
	}
	return store.GetDocumentByPrefix(s.db, id)
}

// Tool handlers.
func (s *Server) handleAddDocument(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title string   `json:"title"`
		Text  string   `json:"text"`
		Tags  []string `json:"tags"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Text) == "" {
		return errorResult("block text cannot be empty"), nil
	}

	data := models.NewBlockData(sanitize.Text(params.Text), params.Tags)
	doc := models.NewDocument(params.Title, models.NewSavedBlock(block.Kind, data))
	if err := store.CreateDocument(s.db, doc); err != nil {
		return errorResult("failed to create document: %v", err), nil
	}

	return textResult("Created document %s", doc.ID.String()), nil
}

func (s *Server) handleListDocuments(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Tag   *string `json:"tag"`
		Limit int     `json:"limit"`
	}
	params.Limit = 20 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	docs, err := store.ListDocuments(s.db, params.Tag, params.Limit)
	if err != nil {
		return errorResult("failed to list documents: %v", err), nil
	}

	data, _ := json.MarshalIndent(docs, "", "  ")
	return textResult("%s", string(data)), nil
}

func (s *Server) handleGetDocument(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	doc, err := s.resolveDocument(params.ID)
	if err != nil {
		return errorResult("failed to get document: %v", err), nil
	}

	data, _ := json.MarshalIndent(doc, "", "  ")
	return textResult("%s", string(data)), nil
}

func (s *Server) handleUpdateBlockText(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID    string `json:"id"`
		Block int    `json:"block"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	doc, err := s.resolveDocument(params.ID)
	if err != nil {
		return errorResult("failed to find document: %v", err), nil
	}
	if params.Block < 0 || params.Block >= len(doc.Blocks) {
		return errorResult("block index %d out of range", params.Block), nil
	}
	if strings.TrimSpace(params.Text) == "" {
		return errorResult("block text cannot be empty"), nil
	}

	doc.Blocks[params.Block].Data.Text = sanitize.Text(params.Text)
	doc.Touch()

	if err := store.UpdateDocument(s.db, doc); err != nil {
		return errorResult("failed to update document: %v", err), nil
	}

	return textResult("Updated block %d of document %s", params.Block, doc.ID.String()), nil
}

func (s *Server) handleToggleTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID    string `json:"id"`
		Block int    `json:"block"`
		Tag   string `json:"tag"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	doc, err := s.resolveDocument(params.ID)
	if err != nil {
		return errorResult("failed to find document: %v", err), nil
	}
	if params.Block < 0 || params.Block >= len(doc.Blocks) {
		return errorResult("block index %d out of range", params.Block), nil
	}

	tags := models.NewTagList(doc.Blocks[params.Block].Data.Tags...)
	added := tags.Toggle(params.Tag)
	doc.Blocks[params.Block].Data.Tags = tags.Names()
	doc.Touch()

	if err := store.UpdateDocument(s.db, doc); err != nil {
		return errorResult("failed to update document: %v", err), nil
	}

	if added {
		return textResult("Added tag %q to block %d", params.Tag, params.Block), nil
	}
	return textResult("Removed tag %q from block %d", params.Tag, params.Block), nil
}

func (s *Server) handleDeleteDocument(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	doc, err := s.resolveDocument(params.ID)
	if err != nil {
		return errorResult("failed to find document: %v", err), nil
	}

	if err := store.DeleteDocument(s.db, doc.ID); err != nil {
		return errorResult("failed to delete document: %v", err), nil
	}

	return textResult("Deleted document %s", doc.ID.String()), nil
}

func (s *Server) handleListTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags, err := store.ListAllTags(s.db)
	if err != nil {
		return errorResult("failed to list tags: %v", err), nil
	}

	data, _ := json.MarshalIndent(tags, "", "  ")
	return textResult("%s", string(data)), nil
}

func (s *Server) handleExportDocument(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID     string `json:"id"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	doc, err := s.resolveDocument(params.ID)
	if err != nil {
		return errorResult("failed to get document: %v", err), nil
	}

	switch params.Format {
	case "md":
		return textResult("%s", export.ToMarkdown(doc)), nil
	case "", "json":
		var sb strings.Builder
		if err := export.WriteJSON([]*models.Document{doc}, &sb); err != nil {
			return errorResult("failed to export document: %v", err), nil
		}
		return textResult("%s", sb.String()), nil
	default:
		return errorResult("unknown format: %s", params.Format), nil
	}
}
