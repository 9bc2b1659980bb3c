package usecase

import (
	"context"
	"strings"

	"memo-manager/internal/memo"
	"memo-manager/internal/model"
)

// validate trims both fields and reports ErrValidation to the user when
// either ends up empty.
func (uc *implUseCase) validate(ctx context.Context, title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		uc.view.Alert(ctx, memo.MsgRequired)
		return "", "", memo.ErrValidation
	}
	return title, content, nil
}

// render draws memos and remembers them for Find.
func (uc *implUseCase) render(memos []model.Memo) {
	uc.mu.Lock()
	uc.shown = append([]model.Memo(nil), memos...)
	uc.mu.Unlock()

	uc.renderer.Render(uc.view, memos)
}

// Find returns the memo with id from the last rendered list.
func (uc *implUseCase) Find(id string) (model.Memo, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, m := range uc.shown {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Memo{}, memo.ErrMemoNotFound
}

func (uc *implUseCase) Memos() []model.Memo {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]model.Memo(nil), uc.shown...)
}
