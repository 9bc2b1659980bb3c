package usecase

import (
	"context"
)

// Refresh renders the remote list, or the fallback list when the remote
// call fails. The failure is only logged.
func (uc *implUseCase) Refresh(ctx context.Context) {
	memos, err := uc.remote.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh remote.List: %v", err)
		memos = uc.fallback.LoadAll(ctx)
	}
	uc.render(memos)
}
