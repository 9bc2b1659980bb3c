package usecase

import (
	"context"

	"memo-manager/internal/model"
	"memo-manager/pkg/format"
)

// CreateMemo validates the input, stores a new memo remotely and falls back
// to the local store when the remote call fails.
func (uc *implUseCase) CreateMemo(ctx context.Context, title, content string) error {
	title, content, err := uc.validate(ctx, title, content)
	if err != nil {
		return err
	}

	now := uc.now()
	m := model.Memo{
		ID:      uc.newID(now),
		Title:   title,
		Content: content,
		Date:    format.FormatTimestamp(now),
	}

	if err := uc.remote.Create(ctx, m); err != nil {
		uc.l.Errorf(ctx, "uc.CreateMemo remote.Create: %v", err)

		memos, ferr := uc.fallback.Append(ctx, m)
		if ferr != nil {
			uc.l.Errorf(ctx, "uc.CreateMemo fallback.Append: %v", ferr)
		}
		uc.view.ClearCreateForm()
		uc.render(memos)
		return nil
	}

	uc.view.ClearCreateForm()
	uc.Refresh(ctx)
	return nil
}
