package memo

import (
	"context"

	"memo-manager/internal/memo/render"
)

// FormHandlers are the callbacks a View invokes for its form buttons.
type FormHandlers struct {
	OnCreate func(ctx context.Context, title, content string)
	OnUpdate func(ctx context.Context, title, content string)
	OnCancel func(ctx context.Context)
}

// View is the user-facing surface the controller drives: a create form, a
// memo list container and an edit form that is shown instead of the create form.
type View interface {
	render.Container

	BindForms(h FormHandlers)

	// Alert reports a non-blocking message such as a validation failure.
	Alert(ctx context.Context, msg string)
	// Confirm asks the user to approve a destructive action.
	Confirm(ctx context.Context, msg string) bool

	ClearCreateForm()
	FillEditForm(title, content string)
	ClearEditForm()

	ShowCreateForm()
	ShowEditForm()
	ScrollToEditForm()
	ScrollToTop()
}
