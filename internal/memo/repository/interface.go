package repository

import (
	"context"

	"memo-manager/internal/model"
)

// RemoteRepository is the authoritative memo collection behind /api/memos.
// Every failure is reported as a *RemoteError.
type RemoteRepository interface {
	List(ctx context.Context) ([]model.Memo, error)
	Create(ctx context.Context, memo model.Memo) error
	Update(ctx context.Context, id string, memo model.Memo) error
	Remove(ctx context.Context, id string) error
}

// FallbackRepository is the on-device mirror used only when the remote call
// fails. Mutations return the list as stored afterwards so it can be rendered
// without another read.
type FallbackRepository interface {
	LoadAll(ctx context.Context) []model.Memo
	SaveAll(ctx context.Context, memos []model.Memo) error
	Append(ctx context.Context, memo model.Memo) ([]model.Memo, error)
	Replace(ctx context.Context, id string, updated model.Memo) ([]model.Memo, error)
	RemoveByID(ctx context.Context, id string) ([]model.Memo, error)
}
