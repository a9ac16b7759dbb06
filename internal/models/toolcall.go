// Package models defines the record types read from the cozyreq database.
package models

import (
	"fmt"
	"time"
)

// CallStatus represents the execution state of a tool call.
type CallStatus string

const (
	CallStatusQueued  CallStatus = "queued"
	CallStatusRunning CallStatus = "running"
	CallStatusSuccess CallStatus = "success"
	CallStatusFailed  CallStatus = "failed"
)

// ParseCallStatus validates a call status read from an external source.
func ParseCallStatus(s string) (CallStatus, error) {
	switch CallStatus(s) {
	case CallStatusQueued, CallStatusRunning, CallStatusSuccess, CallStatusFailed:
		return CallStatus(s), nil
	}
	return "", fmt.Errorf("models: invalid call status %q", s)
}

// ToolCall is a single recorded invocation of a tool by the agent.
// Calls are immutable once loaded; the dashboard only reads them.
type ToolCall struct {
	ID             string
	RunID          string
	SequenceNumber int
	ToolName       string
	Status         CallStatus
	Timestamp      time.Time
	Duration       *float64 // seconds, set only for success/failed
	Request        string   // JSON string
	Response       *string  // JSON string, nil until completion
	Size           *int64   // response bytes, nil when unknown
	Summary        string
	ResultSummary  *string // nil until completion
}

// Outcome is the tagged view of a tool call's status-dependent fields.
// Exactly one of the four variants applies to any call, so callers never
// have to infer which optional fields are legal from the status string.
type Outcome interface {
	outcome()
}

// Queued means the call has not started executing yet.
type Queued struct{}

// Running means the call is executing and has no result yet.
type Running struct{}

// Completed carries the result of a successful call.
type Completed struct {
	Duration      float64
	Response      string
	Size          *int64
	ResultSummary string
}

// Failed carries the timing and error summary of a failed call.
type Failed struct {
	Duration     float64
	ErrorSummary string
}

func (Queued) outcome()    {}
func (Running) outcome()   {}
func (Completed) outcome() {}
func (Failed) outcome()    {}

// Outcome derives the tagged variant for the call's current status.
// Missing optional fields degrade to zero values rather than panicking,
// since stored rows may predate the invariants enforced on write.
func (c ToolCall) Outcome() Outcome {
	switch c.Status {
	case CallStatusRunning:
		return Running{}
	case CallStatusSuccess:
		out := Completed{}
		if c.Duration != nil {
			out.Duration = *c.Duration
		}
		if c.Response != nil {
			out.Response = *c.Response
		}
		out.Size = c.Size
		if c.ResultSummary != nil {
			out.ResultSummary = *c.ResultSummary
		}
		return out
	case CallStatusFailed:
		out := Failed{}
		if c.Duration != nil {
			out.Duration = *c.Duration
		}
		if c.ResultSummary != nil {
			out.ErrorSummary = *c.ResultSummary
		}
		return out
	default:
		return Queued{}
	}
}
