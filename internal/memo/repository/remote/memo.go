package remote

import (
	"context"

	"memo-manager/internal/memo/repository"
	"memo-manager/internal/model"
	pkgLog "memo-manager/pkg/log"
	"memo-manager/pkg/metrics"
)

type implRepository struct {
	client  *Client
	metrics *metrics.Metrics
	l       pkgLog.Logger
}

// New creates the remote memo repository on top of client.
func New(client *Client, m *metrics.Metrics, l pkgLog.Logger) repository.RemoteRepository {
	return &implRepository{
		client:  client,
		metrics: m,
		l:       l,
	}
}

func (r *implRepository) List(ctx context.Context) ([]model.Memo, error) {
	memos, err := r.client.ListMemos(ctx)
	r.metrics.ObserveRemote(repository.OpList, err)
	if err != nil {
		r.l.Debugf(ctx, "remote repository: list failed: %v", err)
		return nil, err
	}
	return memos, nil
}

func (r *implRepository) Create(ctx context.Context, memo model.Memo) error {
	err := r.client.CreateMemo(ctx, memo)
	r.metrics.ObserveRemote(repository.OpCreate, err)
	if err != nil {
		r.l.Debugf(ctx, "remote repository: create %s failed: %v", memo.ID, err)
	}
	return err
}

func (r *implRepository) Update(ctx context.Context, id string, memo model.Memo) error {
	err := r.client.UpdateMemo(ctx, id, memo)
	r.metrics.ObserveRemote(repository.OpUpdate, err)
	if err != nil {
		r.l.Debugf(ctx, "remote repository: update %s failed: %v", id, err)
	}
	return err
}

func (r *implRepository) Remove(ctx context.Context, id string) error {
	err := r.client.DeleteMemo(ctx, id)
	r.metrics.ObserveRemote(repository.OpRemove, err)
	if err != nil {
		r.l.Debugf(ctx, "remote repository: remove %s failed: %v", id, err)
	}
	return err
}
