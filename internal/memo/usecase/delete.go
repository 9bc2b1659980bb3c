package usecase

import (
	"context"

	"memo-manager/internal/memo"
)

// DeleteMemo removes a memo after the user confirms. A declined confirmation
// returns memo.ErrConfirmationDeclined and changes nothing.
func (uc *implUseCase) DeleteMemo(ctx context.Context, id string) error {
	if !uc.view.Confirm(ctx, memo.MsgConfirmDelete) {
		return memo.ErrConfirmationDeclined
	}

	if err := uc.remote.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteMemo remote.Remove: %v", err)

		memos, ferr := uc.fallback.RemoveByID(ctx, id)
		if ferr != nil {
			uc.l.Errorf(ctx, "uc.DeleteMemo fallback.RemoveByID: %v", ferr)
		}
		uc.render(memos)
		return nil
	}

	uc.Refresh(ctx)
	return nil
}
