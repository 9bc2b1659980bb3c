package usecase

import (
	"context"

	"memo-manager/internal/memo"
	"memo-manager/internal/memo/render"
)

// Initialize binds the form and list actions, then loads the list.
func (uc *implUseCase) Initialize(ctx context.Context) {
	uc.view.BindForms(memo.FormHandlers{
		OnCreate: func(ctx context.Context, title, content string) { _ = uc.CreateMemo(ctx, title, content) },
		OnUpdate: func(ctx context.Context, title, content string) { _ = uc.UpdateMemo(ctx, title, content) },
		OnCancel: func(context.Context) { uc.CancelEdit() },
	})

	uc.delegate.On(render.ActionEdit, uc.editByID)
	uc.delegate.On(render.ActionOpen, uc.editByID)
	uc.delegate.On(render.ActionDelete, func(ctx context.Context, id string) { _ = uc.DeleteMemo(ctx, id) })

	uc.Refresh(ctx)
}

// Dispatch routes a click on the rendered list to the bound action.
func (uc *implUseCase) Dispatch(ctx context.Context, ev render.Event) bool {
	return uc.delegate.Dispatch(ctx, ev)
}

func (uc *implUseCase) editByID(ctx context.Context, id string) {
	m, err := uc.Find(id)
	if err != nil {
		uc.l.Warnf(ctx, "uc.editByID Find %s: %v", id, err)
		return
	}
	uc.BeginEdit(m)
}
