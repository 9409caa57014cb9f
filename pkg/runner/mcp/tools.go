package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/grid"
	"tableflip.dev/cal/pkg/timeutil"
)

// EventDTO is a transport-friendly projection of an event.
type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Minutes     int    `json:"minutes"`
	Color       string `json:"color"`
	Importance  string `json:"importance"`
	Type        string `json:"type"`
}

func toDTO(e *event.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start.Local().Format(time.RFC3339),
		End:         e.End.Local().Format(time.RFC3339),
		Minutes:     int(e.Duration() / time.Minute),
		Color:       string(e.Color),
		Importance:  string(e.Importance),
		Type:        string(e.Type),
	}
}

func toDTOs(events []*event.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toDTO(e))
	}
	return out
}

type handlers struct {
	svc    *app.Service
	form   *form.Form
	limits bucket.Limits
}

// fresh reloads the service so writes from other processes are visible.
func (h *handlers) fresh(ctx context.Context) error {
	return h.svc.Reload(ctx)
}

type eventArgs struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	At          string `json:"at"`
	For         string `json:"for"`
	Color       string `json:"color"`
	Importance  string `json:"importance"`
	Type        string `json:"type"`
	Date        string `json:"date"`
}

func (a eventArgs) input() form.Input {
	return form.Input{
		Title:       a.Title,
		Description: a.Description,
		Start:       a.Start,
		End:         a.End,
		At:          a.At,
		For:         a.For,
		Color:       a.Color,
		Importance:  a.Importance,
		Type:        a.Type,
	}
}

func registerTools(srv *server.MCPServer, h *handlers) {
	srv.AddTool(mcp.NewTool(
		"list_events",
		mcp.WithDescription("List events, optionally only those on one day or in one month."),
		mcp.WithString("date", mcp.Description("Day to list, 2006-01-02 or natural language. Empty lists every event.")),
		mcp.WithBoolean("month", mcp.Description("List the whole month containing date.")),
	), h.listEvents)

	srv.AddTool(mcp.NewTool(
		"get_event",
		mcp.WithDescription("Fetch one event by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Event identifier.")),
	), h.getEvent)

	srv.AddTool(mcp.NewTool("create_event", eventToolOptions("Create an event. Give start and end, or at and for.", false)...), h.createEvent)
	srv.AddTool(mcp.NewTool("update_event", eventToolOptions("Change fields of an existing event. Unset fields are kept.", true)...), h.updateEvent)

	srv.AddTool(mcp.NewTool(
		"delete_event",
		mcp.WithDescription("Delete an event. Deleting a missing id is not an error."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Event identifier.")),
	), h.deleteEvent)

	srv.AddTool(mcp.NewTool(
		"agenda",
		mcp.WithDescription("Upcoming events grouped by day."),
		mcp.WithString("for", mcp.Description("Window such as 3d, 1w or 1w2d. Defaults to 1w.")),
	), h.agenda)

	srv.AddTool(mcp.NewTool(
		"day_cell",
		mcp.WithDescription("The events of one calendar cell as the month or day view shows them, with the +N more overflow."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Day of the cell.")),
		mcp.WithNumber("hour", mcp.Description("Hour 0-23 for a day view slot. Omit for the month cell.")),
	), h.dayCell)
}

func eventToolOptions(description string, edit bool) []mcp.ToolOption {
	opts := []mcp.ToolOption{mcp.WithDescription(description)}
	if edit {
		opts = append(opts, mcp.WithString("id", mcp.Required(), mcp.Description("Event identifier.")))
		opts = append(opts, mcp.WithString("title", mcp.Description("New title. An empty string clears it.")))
	} else {
		opts = append(opts, mcp.WithString("title", mcp.Required(), mcp.Description("Event title.")))
	}
	return append(opts,
		mcp.WithString("description", mcp.Description("Free text notes.")),
		mcp.WithString("start", mcp.Description("Start time, RFC 3339, 2006-01-02 15:04 or natural language.")),
		mcp.WithString("end", mcp.Description("End time, same formats as start.")),
		mcp.WithString("at", mcp.Description("Start time used with for.")),
		mcp.WithString("for", mcp.Description("Length such as 30m or 1h30m.")),
		mcp.WithString("color", mcp.Enum(names(event.AllColors())...)),
		mcp.WithString("importance", mcp.Enum(names(event.AllImportances())...)),
		mcp.WithString("type", mcp.Enum(names(event.AllTypes())...)),
	)
}

func names[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func (h *handlers) listEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Date  string `json:"date"`
		Month bool   `json:"month"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}

	events := h.svc.List()
	if args.Date != "" {
		day, err := h.form.ParseDay(args.Date)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
		}
		if args.Month {
			events = bucket.ByMonth(events, day.Year(), day.Month())
		} else {
			events = bucket.ByDay(events, day)
		}
	}
	return toJSONResult(map[string]any{
		"count":  len(events),
		"events": toDTOs(events),
	})
}

func (h *handlers) getEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	e, err := h.svc.Get(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(toDTO(e))
}

func (h *handlers) createEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args eventArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	d, err := h.form.Draft(args.input())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	e, err := h.svc.Add(ctx, d)
	if err != nil {
		return nil, err
	}
	return toJSONResult(toDTO(e))
}

func (h *handlers) updateEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args eventArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.ID == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	in := args.input()
	given := request.GetArguments()
	_, in.ClearTitle = given["title"]
	_, in.ClearDescription = given["description"]
	in.ClearTitle = in.ClearTitle && args.Title == ""
	in.ClearDescription = in.ClearDescription && args.Description == ""

	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	current, err := h.svc.Get(args.ID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	patch, err := h.form.Edit(current, in)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if patch.IsEmpty() {
		return mcp.NewToolResultError("nothing to change, set at least one field"), nil
	}
	e, err := h.svc.Update(ctx, args.ID, patch)
	if errors.Is(err, app.ErrNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return nil, err
	}
	return toJSONResult(toDTO(e))
}

func (h *handlers) deleteEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	_, getErr := h.svc.Get(id)
	if err := h.svc.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toJSONResult(map[string]any{
		"id":      id,
		"deleted": getErr == nil,
	})
}

type agendaDayDTO struct {
	Day    string     `json:"day"`
	Events []EventDTO `json:"events"`
}

func (h *handlers) agenda(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	window, label, err := timeutil.ParseDuration(request.GetString("for", ""), timeutil.DefaultAgenda)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}
	now := h.now()
	res := h.svc.Agenda(now, now.Add(window))
	days := make([]agendaDayDTO, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, agendaDayDTO{Day: d.Day.Format("2006-01-02"), Events: toDTOs(d.Events)})
	}
	return toJSONResult(map[string]any{
		"window": label,
		"total":  res.Total,
		"days":   days,
	})
}

func (h *handlers) dayCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Date string   `json:"date"`
		Hour *float64 `json:"hour"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	day, err := h.form.ParseDay(args.Date)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}
	if err := h.fresh(ctx); err != nil {
		return nil, err
	}

	cell := map[string]any{"date": day.Format("2006-01-02")}
	var o bucket.Overflow
	if args.Hour != nil {
		hour := int(*args.Hour)
		if hour < 0 || hour >= grid.HoursPerDay {
			return mcp.NewToolResultError(fmt.Sprintf("hour %d out of range 0-23", hour)), nil
		}
		o = bucket.Truncate(bucket.ByDayHour(h.svc.List(), day, hour), h.limits.Day)
		cell["hour"] = grid.HourLabel(hour)
	} else {
		o = bucket.Truncate(bucket.ByDay(h.svc.List(), day), h.limits.Month)
	}
	cell["shown"] = toDTOs(o.Shown)
	cell["hidden"] = o.Hidden
	if o.Hidden > 0 {
		cell["more"] = o.Label()
	}
	return toJSONResult(cell)
}

func (h *handlers) now() time.Time {
	if h.svc.Now != nil {
		return h.svc.Now()
	}
	return time.Now()
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
