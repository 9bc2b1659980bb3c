package usecase

import (
	"context"

	"memo-manager/internal/model"
	"memo-manager/pkg/format"
)

// UpdateMemo saves the edit form over the memo being edited. It does nothing
// when no memo is being edited.
func (uc *implUseCase) UpdateMemo(ctx context.Context, title, content string) error {
	id := uc.CurrentEditID()
	if id == "" {
		return nil
	}

	title, content, err := uc.validate(ctx, title, content)
	if err != nil {
		return err
	}

	m := model.Memo{
		ID:      id,
		Title:   title,
		Content: content,
		Date:    format.FormatTimestamp(uc.now()),
	}

	if err := uc.remote.Update(ctx, id, m); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateMemo remote.Update: %v", err)

		memos, ferr := uc.fallback.Replace(ctx, id, m)
		if ferr != nil {
			uc.l.Errorf(ctx, "uc.UpdateMemo fallback.Replace: %v", ferr)
		}
		uc.render(memos)
		uc.CancelEdit()
		return nil
	}

	uc.CancelEdit()
	uc.Refresh(ctx)
	return nil
}
