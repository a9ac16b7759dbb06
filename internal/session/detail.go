package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// Detail is the rendered detail view of one tool call. It is a plain
// value; the presentation layer decides how to draw it.
type Detail struct {
	Header        string // "#12 fetch_users"
	Status        models.CallStatus
	StatusLabel   string // "Success", "Running", ...
	DurationLabel string // "0.421s", "Running…", "Queued"
	SizeLabel     string // "512B", "1.5KB", empty when unknown
	Request       Content
	Response      Content
}

// Content is one payload block of the detail view.
type Content struct {
	Text        string
	JSON        bool // true when Text is pretty-printed JSON
	Placeholder bool // true when Text is a stand-in, not a payload
}

const noResponsePlaceholder = "No response yet"

// Project maps a tool call to its detail view. It is pure and total:
// malformed payloads degrade to verbatim text, never an error.
func Project(call models.ToolCall) Detail {
	d := Detail{
		Header:      fmt.Sprintf("#%d %s", call.SequenceNumber, call.ToolName),
		Status:      call.Status,
		StatusLabel: statusLabel(call.Status),
		Request:     formatContent(call.Request),
		Response:    Content{Text: noResponsePlaceholder, Placeholder: true},
	}

	switch out := call.Outcome().(type) {
	case models.Queued:
		d.DurationLabel = "Queued"
	case models.Running:
		d.DurationLabel = "Running…"
	case models.Completed:
		d.DurationLabel = formatSeconds(out.Duration)
		d.SizeLabel = formatSize(out.Size)
		if out.Response != "" {
			d.Response = formatContent(out.Response)
		}
	case models.Failed:
		d.DurationLabel = formatSeconds(out.Duration)
	}
	return d
}

func statusLabel(s models.CallStatus) string {
	switch s {
	case models.CallStatusQueued:
		return "Queued"
	case models.CallStatusRunning:
		return "Running"
	case models.CallStatusSuccess:
		return "Success"
	case models.CallStatusFailed:
		return "Failed"
	}
	return string(s)
}

func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%.3fs", seconds)
}

func formatSize(size *int64) string {
	if size == nil {
		return ""
	}
	if *size < 1024 {
		return fmt.Sprintf("%dB", *size)
	}
	return fmt.Sprintf("%.1fKB", float64(*size)/1024)
}

// formatContent pretty-prints JSON payloads and passes everything else
// through verbatim.
func formatContent(payload string) Content {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(payload), "", "  "); err != nil {
		return Content{Text: payload}
	}
	return Content{Text: buf.String(), JSON: true}
}
