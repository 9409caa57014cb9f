package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/cal/pkg/bucket"
)

func registerResources(srv *server.MCPServer, h *handlers) {
	srv.AddResource(mcp.NewResource(
		"cal://events",
		"Events",
		mcp.WithResourceDescription("Every stored calendar event."),
		mcp.WithMIMEType("application/json"),
	), h.readEvents)

	srv.AddResourceTemplate(mcp.NewResourceTemplate(
		"cal://days/{date}",
		"Day",
		mcp.WithTemplateDescription("Events on one day, 2006-01-02."),
		mcp.WithTemplateMIMEType("application/json"),
	), h.readDay)

	srv.AddResourceTemplate(mcp.NewResourceTemplate(
		"cal://events/{id}",
		"Event Details",
		mcp.WithTemplateDescription("Detailed information about a single event."),
		mcp.WithTemplateMIMEType("application/json"),
	), h.readEvent)
}

func (h *handlers) readEvents(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	events := h.svc.List()
	return encodeResourceJSON(request.Params.URI, map[string]any{
		"count":  len(events),
		"events": toDTOs(events),
	})
}

func (h *handlers) readDay(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	raw := templateArg(request, "date")
	if raw == "" {
		return nil, fmt.Errorf("date is required")
	}
	day, err := h.form.ParseDay(raw)
	if err != nil {
		return nil, err
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	events := bucket.ByDay(h.svc.List(), day)
	return encodeResourceJSON(request.Params.URI, map[string]any{
		"date":   day.Format("2006-01-02"),
		"count":  len(events),
		"events": toDTOs(events),
	})
}

func (h *handlers) readEvent(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := templateArg(request, "id")
	if id == "" {
		return nil, fmt.Errorf("event id is required")
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	e, err := h.svc.Get(id)
	if err != nil {
		return nil, err
	}
	return encodeResourceJSON(request.Params.URI, map[string]any{"event": toDTO(e)})
}

// templateArg reads a URI template variable. Variables may arrive as a
// string or a single element list.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
