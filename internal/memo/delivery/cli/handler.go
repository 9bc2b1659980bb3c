package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"memo-manager/internal/memo"
	"memo-manager/pkg/format"
)

// List loads memos from the remote API, or the local fallback when it is
// unreachable, and prints them.
func (h *Handler) List(ctx context.Context) error {
	h.uc.Initialize(ctx)
	return h.print()
}

// Add creates a memo and prints the updated list.
func (h *Handler) Add(ctx context.Context, title, content string) error {
	h.uc.Initialize(ctx)
	if err := h.uc.CreateMemo(ctx, title, content); err != nil {
		return err
	}
	return h.print()
}

// Edit replaces the title and content of the memo with id.
func (h *Handler) Edit(ctx context.Context, id, title, content string) error {
	h.uc.Initialize(ctx)

	m, err := h.uc.Find(id)
	if err != nil {
		h.l.Warnf(ctx, "memo.cli.Edit Find %s: %v", id, err)
		return fmt.Errorf("%w: %s", err, id)
	}
	h.uc.BeginEdit(m)
	if err := h.uc.UpdateMemo(ctx, title, content); err != nil {
		h.uc.CancelEdit()
		return err
	}
	return h.print()
}

// Remove deletes the memo with id after confirmation.
func (h *Handler) Remove(ctx context.Context, id string) error {
	h.uc.Initialize(ctx)

	if _, err := h.uc.Find(id); err != nil {
		h.l.Warnf(ctx, "memo.cli.Remove Find %s: %v", id, err)
		return fmt.Errorf("%w: %s", err, id)
	}
	if err := h.uc.DeleteMemo(ctx, id); err != nil {
		if !IsDeclined(err) {
			h.l.Errorf(ctx, "memo.cli.Remove DeleteMemo %s: %v", id, err)
		}
		return err
	}
	return h.print()
}

func (h *Handler) print() error {
	memos := h.uc.Memos()
	if len(memos) == 0 {
		_, err := fmt.Fprintln(h.out, "No memos saved yet.")
		return err
	}

	tw := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTITLE\tCONTENT")
	for _, m := range memos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.Date, m.Title, format.Preview(m.Content))
	}
	return tw.Flush()
}

// IsDeclined reports whether err is a declined confirmation, which callers
// treat as a quiet abort.
func IsDeclined(err error) bool {
	return errors.Is(err, memo.ErrConfirmationDeclined)
}
