package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memo-manager/internal/memo"
	"memo-manager/internal/memo/repository"
	"memo-manager/internal/memo/repository/local"
	"memo-manager/internal/memo/usecase"
	"memo-manager/internal/model"
	"memo-manager/pkg/localstore"
	"memo-manager/pkg/log"
)

type memRemote struct {
	memos   []model.Memo
	offline bool
}

var errDown = &repository.RemoteError{Op: "test", Err: errors.New("no route to host")}

func (r *memRemote) List(context.Context) ([]model.Memo, error) {
	if r.offline {
		return nil, errDown
	}
	return append([]model.Memo(nil), r.memos...), nil
}

func (r *memRemote) Create(_ context.Context, m model.Memo) error {
	if r.offline {
		return errDown
	}
	r.memos = append(r.memos, m)
	return nil
}

func (r *memRemote) Update(_ context.Context, id string, m model.Memo) error {
	if r.offline {
		return errDown
	}
	for i := range r.memos {
		if r.memos[i].ID == id {
			r.memos[i] = m
		}
	}
	return nil
}

func (r *memRemote) Remove(_ context.Context, id string) error {
	if r.offline {
		return errDown
	}
	kept := r.memos[:0]
	for _, m := range r.memos {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.memos = kept
	return nil
}

type fixture struct {
	remote   *memRemote
	fallback repository.FallbackRepository
	out      *bytes.Buffer
}

func newFixture(t *testing.T, seed ...model.Memo) *fixture {
	t.Helper()
	storage, err := localstore.NewFileStorage(afero.NewMemMapFs(), "/fallback")
	require.NoError(t, err)
	return &fixture{
		remote:   &memRemote{memos: seed},
		fallback: local.New(storage, "", nil, log.NewNop()),
		out:      &bytes.Buffer{},
	}
}

func (f *fixture) handler(t *testing.T, stdin string, yes bool) *Handler {
	t.Helper()
	f.out.Reset()
	h, err := New(log.NewNop(), func(v memo.View) memo.UseCase {
		return usecase.New(f.remote, f.fallback, v, log.NewNop())
	}, Options{In: strings.NewReader(stdin), Out: f.out, AssumeYes: yes})
	require.NoError(t, err)
	return h
}

func TestListPrintsTable(t *testing.T) {
	f := newFixture(t, model.Memo{ID: "1", Title: "Groceries", Content: "milk", Date: "2024-01-01 10:00"})

	require.NoError(t, f.handler(t, "", false).List(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "2024-01-01 10:00")
}

func TestListEmpty(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.handler(t, "", false).List(context.Background()))
	assert.Contains(t, f.out.String(), "No memos saved yet.")
}

func TestAddValidation(t *testing.T) {
	f := newFixture(t)

	err := f.handler(t, "", false).Add(context.Background(), " ", "body")
	assert.ErrorIs(t, err, memo.ErrValidation)
	assert.Contains(t, f.out.String(), memo.MsgRequired)
	assert.Empty(t, f.remote.memos)
}

func TestAddOfflineUsesFallback(t *testing.T) {
	f := newFixture(t)
	f.remote.offline = true

	require.NoError(t, f.handler(t, "", false).Add(context.Background(), "Offline", "saved locally"))

	assert.Contains(t, f.out.String(), "Offline")
	assert.Len(t, f.fallback.LoadAll(context.Background()), 1)
}

func TestEdit(t *testing.T) {
	f := newFixture(t, model.Memo{ID: "7", Title: "Old", Content: "Old body"})
	ctx := context.Background()

	require.NoError(t, f.handler(t, "", false).Edit(ctx, "7", "New", "New body"))
	assert.Equal(t, "New", f.remote.memos[0].Title)

	err := f.handler(t, "", false).Edit(ctx, "404", "x", "y")
	assert.ErrorIs(t, err, memo.ErrMemoNotFound)
}

func TestRemoveConfirmation(t *testing.T) {
	f := newFixture(t, model.Memo{ID: "7", Title: "Doomed", Content: "c"})
	ctx := context.Background()

	err := f.handler(t, "n\n", false).Remove(ctx, "7")
	assert.True(t, IsDeclined(err))
	assert.Contains(t, f.out.String(), memo.MsgConfirmDelete)
	assert.Len(t, f.remote.memos, 1)

	// EOF on stdin declines too
	err = f.handler(t, "", false).Remove(ctx, "7")
	assert.True(t, IsDeclined(err))

	require.NoError(t, f.handler(t, "yes\n", false).Remove(ctx, "7"))
	assert.Empty(t, f.remote.memos)
}

func TestRemoveAssumeYes(t *testing.T) {
	f := newFixture(t, model.Memo{ID: "7", Title: "Doomed", Content: "c"})

	require.NoError(t, f.handler(t, "", true).Remove(context.Background(), "7"))
	assert.Empty(t, f.remote.memos)
	assert.NotContains(t, f.out.String(), memo.MsgConfirmDelete)
}
