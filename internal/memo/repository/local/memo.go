package local

import (
	"context"
	"encoding/json"
	"fmt"

	"memo-manager/internal/memo/repository"
	"memo-manager/internal/model"
	"memo-manager/pkg/localstore"
	pkgLog "memo-manager/pkg/log"
	"memo-manager/pkg/metrics"
)

// DefaultSlot is the storage slot that holds the memo list.
const DefaultSlot = "memos"

type implRepository struct {
	storage localstore.Storage
	slot    string
	metrics *metrics.Metrics
	l       pkgLog.Logger
}

// New creates the fallback repository keeping its list in one slot of storage.
func New(storage localstore.Storage, slot string, m *metrics.Metrics, l pkgLog.Logger) repository.FallbackRepository {
	if storage == nil {
		panic("memo/repository/local: storage is required")
	}
	if slot == "" {
		slot = DefaultSlot
	}
	return &implRepository{
		storage: storage,
		slot:    slot,
		metrics: m,
		l:       l,
	}
}

// LoadAll never fails: a missing or corrupt slot reads as an empty list.
func (r *implRepository) LoadAll(ctx context.Context) []model.Memo {
	r.metrics.ObserveFallbackRead()

	raw, ok, err := r.storage.GetItem(r.slot)
	if err != nil {
		r.l.Warnf(ctx, "local repository: read slot %s: %v", r.slot, err)
		return []model.Memo{}
	}
	if !ok || raw == "" {
		return []model.Memo{}
	}

	var memos []model.Memo
	if err := json.Unmarshal([]byte(raw), &memos); err != nil {
		r.l.Warnf(ctx, "local repository: slot %s is not a memo list: %v", r.slot, err)
		return []model.Memo{}
	}
	if memos == nil {
		memos = []model.Memo{}
	}
	return memos
}

func (r *implRepository) SaveAll(ctx context.Context, memos []model.Memo) error {
	if memos == nil {
		memos = []model.Memo{}
	}
	data, err := json.Marshal(memos)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	if err := r.storage.SetItem(r.slot, string(data)); err != nil {
		r.l.Errorf(ctx, "local repository: write slot %s: %v", r.slot, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	return nil
}

func (r *implRepository) Append(ctx context.Context, memo model.Memo) ([]model.Memo, error) {
	memos := append(r.LoadAll(ctx), memo)
	r.metrics.ObserveFallbackWrite("append")
	return memos, r.SaveAll(ctx, memos)
}

func (r *implRepository) Replace(ctx context.Context, id string, updated model.Memo) ([]model.Memo, error) {
	memos := r.LoadAll(ctx)
	for i, m := range memos {
		if m.ID == id {
			memos[i] = updated
		}
	}
	r.metrics.ObserveFallbackWrite("replace")
	return memos, r.SaveAll(ctx, memos)
}

func (r *implRepository) RemoveByID(ctx context.Context, id string) ([]model.Memo, error) {
	stored := r.LoadAll(ctx)
	memos := make([]model.Memo, 0, len(stored))
	for _, m := range stored {
		if m.ID != id {
			memos = append(memos, m)
		}
	}
	r.metrics.ObserveFallbackWrite("remove")
	return memos, r.SaveAll(ctx, memos)
}
