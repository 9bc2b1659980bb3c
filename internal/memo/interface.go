package memo

import (
	"context"

	"memo-manager/internal/memo/render"
	"memo-manager/internal/model"
)

// UseCase is the application controller behind one memo page. Each instance
// owns its own edit state.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Initialize(ctx context.Context)
	Refresh(ctx context.Context)

	CreateMemo(ctx context.Context, title, content string) error
	BeginEdit(memo model.Memo)
	CancelEdit()
	UpdateMemo(ctx context.Context, title, content string) error
	DeleteMemo(ctx context.Context, id string) error

	// Find looks a memo up in the list that was rendered last.
	Find(id string) (model.Memo, error)
	// Memos returns a copy of the list that was rendered last.
	Memos() []model.Memo
	CurrentEditID() string
	// Dispatch routes a list event to the bound edit/delete/open handlers.
	Dispatch(ctx context.Context, ev render.Event) bool
}
