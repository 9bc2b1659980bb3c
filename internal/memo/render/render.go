// Package render turns memos into list markup and routes clicks on that
// markup back to per-action handlers.
package render

import (
	"fmt"
	"strings"
	"time"

	"memo-manager/internal/model"
	"memo-manager/pkg/format"
)

// Container is the list element whose children get replaced on every render.
type Container interface {
	ReplaceChildren(markup string)
}

const emptyRow = `<li class="no-memos"><i class="fas fa-info-circle"></i> No memos saved yet.</li>`

// Renderer renders memo rows. now supplies the date shown for memos stored without one.
type Renderer struct {
	now func() time.Time
}

// New creates a Renderer. A nil clock means time.Now.
func New(now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{now: now}
}

// Render replaces the container's children with one row per memo, keeping
// the given order, or with a single placeholder row when memos is empty.
func (r *Renderer) Render(c Container, memos []model.Memo) {
	if len(memos) == 0 {
		c.ReplaceChildren(emptyRow)
		return
	}

	var sb strings.Builder
	for _, m := range memos {
		r.writeRow(&sb, m)
	}
	c.ReplaceChildren(sb.String())
}

func (r *Renderer) writeRow(sb *strings.Builder, m model.Memo) {
	id := format.EscapeHTML(m.ID)

	date := m.Date
	if date == "" {
		date = format.FormatTimestamp(r.now())
	}

	fmt.Fprintf(sb, `<li class="memo-item" data-id="%s" data-action="%s">`, id, ActionOpen)
	fmt.Fprintf(sb, `<form method="post" action="%s">`, ActionPath)
	fmt.Fprintf(sb, `<input type="hidden" name="id" value="%s">`, id)
	fmt.Fprintf(sb, `<button type="submit" class="memo-content" name="action" value="%s">`, ActionOpen)
	fmt.Fprintf(sb, `<span class="memo-title"><i class="fas fa-file-alt"></i> %s</span>`, format.EscapeHTML(m.Title))
	fmt.Fprintf(sb, `<span class="memo-text">%s</span>`, format.EscapeHTML(format.Preview(m.Content)))
	fmt.Fprintf(sb, `<span class="memo-date"><i class="fas fa-clock"></i> %s</span>`, format.EscapeHTML(date))
	sb.WriteString(`</button>`)
	sb.WriteString(`<div class="memo-actions">`)
	fmt.Fprintf(sb, `<button type="submit" class="edit-btn" name="action" value="%s" data-action="%s" data-id="%s"><i class="fas fa-edit"></i></button>`, ActionEdit, ActionEdit, id)
	fmt.Fprintf(sb, `<button type="submit" class="delete-btn" name="action" value="%s" data-action="%s" data-id="%s"><i class="fas fa-trash-alt"></i></button>`, ActionDelete, ActionDelete, id)
	sb.WriteString(`</div></form></li>`)
}
