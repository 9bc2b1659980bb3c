package usecase

import (
	"strconv"
	"sync"
	"time"

	"memo-manager/internal/memo"
	"memo-manager/internal/memo/render"
	"memo-manager/internal/memo/repository"
	"memo-manager/internal/model"
	"memo-manager/pkg/log"
)

// implUseCase is the private implementation of memo.UseCase. One instance
// backs one page, so its edit state is never shared.
type implUseCase struct {
	remote   repository.RemoteRepository
	fallback repository.FallbackRepository
	view     memo.View
	renderer *render.Renderer
	delegate *render.Delegate
	l        log.Logger
	now      func() time.Time
	newID    func(time.Time) string

	mu            sync.Mutex
	currentEditID string
	shown         []model.Memo
}

// Option customises a use case instance.
type Option func(*implUseCase)

// WithClock replaces time.Now for ids, dates and rendering.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithIDGenerator replaces the millisecond-timestamp id scheme.
func WithIDGenerator(gen func(time.Time) string) Option {
	return func(uc *implUseCase) { uc.newID = gen }
}

// New creates a memo controller driving view.
func New(remote repository.RemoteRepository, fallback repository.FallbackRepository, view memo.View, l log.Logger, opts ...Option) memo.UseCase {
	uc := &implUseCase{
		remote:   remote,
		fallback: fallback,
		view:     view,
		delegate: render.NewDelegate(),
		l:        l,
		now:      time.Now,
		newID:    timeID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.renderer = render.New(uc.now)
	return uc
}

func timeID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
