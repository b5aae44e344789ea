// Package progress reports scan events for verbose output. The aggregator
// emits events; a handler renders them. A nil *Progress is valid and silent,
// so callers never guard their reporting calls.
package progress

import (
	"strings"
	"time"
)

// EventType identifies what happened during a scan
type EventType int

const (
	EventScanStart EventType = iota
	EventScanComplete
	EventEnterDirectory
	EventLeaveDirectory
	EventFileClassified
	EventSkipped
	EventInfo
)

// Event represents something that happened during scanning
type Event struct {
	Type      EventType
	Path      string
	Label     string
	Info      string
	Reason    string
	FileCount int
	Duration  time.Duration
	Timestamp time.Time
}

// Handler processes events and produces output
type Handler interface {
	Handle(event Event)
}

// Progress dispatches scan events to a handler
type Progress struct {
	handler Handler
}

// New creates a Progress reporting to the given handler
func New(handler Handler) *Progress {
	return &Progress{handler: handler}
}

func (p *Progress) report(event Event) {
	if p == nil || p.handler == nil {
		return
	}
	event.Timestamp = time.Now()
	p.handler.Handle(event)
}

// ScanStart reports the beginning of a scan
func (p *Progress) ScanStart(path string, excludes []string) {
	p.report(Event{Type: EventScanStart, Path: path, Info: strings.Join(excludes, ", ")})
}

// ScanComplete reports the end of a scan
func (p *Progress) ScanComplete(fileCount int, duration time.Duration) {
	p.report(Event{Type: EventScanComplete, FileCount: fileCount, Duration: duration})
}

// EnterDirectory reports descending into a directory
func (p *Progress) EnterDirectory(path string) {
	p.report(Event{Type: EventEnterDirectory, Path: path})
}

// LeaveDirectory reports leaving a directory
func (p *Progress) LeaveDirectory(path string) {
	p.report(Event{Type: EventLeaveDirectory, Path: path})
}

// FileClassified reports the resolved label for one file
func (p *Progress) FileClassified(path, label string) {
	p.report(Event{Type: EventFileClassified, Path: path, Label: label})
}

// Skipped reports an excluded or skipped entry
func (p *Progress) Skipped(path, reason string) {
	p.report(Event{Type: EventSkipped, Path: path, Reason: reason})
}

// Info reports a free-form informational message
func (p *Progress) Info(message string) {
	p.report(Event{Type: EventInfo, Info: message})
}
