// File: event.go
// Role: Journal entries produced by every session action.
package session

import (
	"time"

	"github.com/katalvlaran/lvlist/list"
)

// Action names the operation an Event records.
type Action string

// Actions recorded in the journal.
const (
	ActionAppend     Action = "append"
	ActionPrepend    Action = "prepend"
	ActionDelete     Action = "delete"
	ActionReverse    Action = "reverse"
	ActionRandom     Action = "random"
	ActionClearList  Action = "clear-list"
	ActionPush       Action = "push"
	ActionPop        Action = "pop"
	ActionPeek       Action = "peek"
	ActionSearch     Action = "search"
	ActionSize       Action = "size"
	ActionClearStack Action = "clear-stack"
	ActionTraverse   Action = "traverse"
	ActionRecursion  Action = "recursion"
	ActionReset      Action = "reset"
)

// Event is one journal entry: what was attempted, on which list kind
// (stack and recursion actions leave Kind at -1), and the log line shown to the user.
type Event struct {
	Seq     uint64
	Time    time.Time
	Action  Action
	Kind    list.Kind
	Value   string
	OK      bool
	Message string
}

// Line renders the event as a log-panel line: "[HH:MM:SS] Message".
func (e Event) Line() string {
	return "[" + e.Time.Format(time.TimeOnly) + "] " + e.Message
}

// noKind marks events that do not target a list.
const noKind list.Kind = -1
