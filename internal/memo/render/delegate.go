package render

import (
	"context"
	"sync"
)

// Actions carried by list markup.
const (
	ActionOpen   = "open"
	ActionEdit   = "edit"
	ActionDelete = "delete"

	// ActionPath is where list forms post their action.
	ActionPath = "/memos/actions"
)

// Element is one node on an event path: its data-action and data-id attributes.
type Element struct {
	Action string
	ID     string
}

// Event is a click, described by the path from the clicked element up to the
// list container, innermost first.
type Event struct {
	Path []Element
}

// Handler reacts to an action on the memo with the given id.
type Handler func(ctx context.Context, id string)

// Delegate holds one handler per action type for the whole list, so rows
// never carry listeners of their own.
type Delegate struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewDelegate() *Delegate {
	return &Delegate{handlers: make(map[string]Handler)}
}

// On binds h to action, replacing any previous binding.
func (d *Delegate) On(action string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[action] = h
}

// Dispatch walks ev.Path innermost first and calls the first bound handler,
// then stops: a click on a row's edit button never reaches the row itself.
// It reports whether any handler ran.
func (d *Delegate) Dispatch(ctx context.Context, ev Event) bool {
	for _, el := range ev.Path {
		if el.Action == "" || el.ID == "" {
			continue
		}
		if h := d.handler(el.Action); h != nil {
			h(ctx, el.ID)
			return true
		}
	}
	return false
}

func (d *Delegate) handler(action string) Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.handlers[action]
}

// ClickEvent builds the event for a click on action inside the row of memo
// id. Clicks on a row button bubble to the row's own open action.
func ClickEvent(action, id string) Event {
	row := Element{Action: ActionOpen, ID: id}
	if action == "" || action == ActionOpen {
		return Event{Path: []Element{row}}
	}
	return Event{Path: []Element{{Action: action, ID: id}, row}}
}
