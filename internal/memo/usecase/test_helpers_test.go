package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"

	"memo-manager/internal/memo"
	"memo-manager/internal/memo/repository"
	"memo-manager/internal/memo/repository/local"
	"memo-manager/internal/model"
	"memo-manager/pkg/localstore"
)

// mockLogger records error lines so tests can check what was logged.
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {
	m.record(fmt.Sprint(arg...))
}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.record(fmt.Sprintf(template, arg...))
}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) record(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, s)
}

func (m *mockLogger) errorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.errors)
}

// mockRemote is an in-memory remote collection that can be switched offline.
type mockRemote struct {
	memos   []model.Memo
	offline bool
	calls   []string
}

var errOffline = &repository.RemoteError{Op: "test", Err: errors.New("network unreachable")}

func (r *mockRemote) List(ctx context.Context) ([]model.Memo, error) {
	r.calls = append(r.calls, repository.OpList)
	if r.offline {
		return nil, errOffline
	}
	return append([]model.Memo(nil), r.memos...), nil
}

func (r *mockRemote) Create(ctx context.Context, m model.Memo) error {
	r.calls = append(r.calls, repository.OpCreate)
	if r.offline {
		return errOffline
	}
	r.memos = append(r.memos, m)
	return nil
}

func (r *mockRemote) Update(ctx context.Context, id string, m model.Memo) error {
	r.calls = append(r.calls, repository.OpUpdate)
	if r.offline {
		return errOffline
	}
	for i := range r.memos {
		if r.memos[i].ID == id {
			r.memos[i] = m
			return nil
		}
	}
	return &repository.RemoteError{Op: repository.OpUpdate, StatusCode: 404}
}

func (r *mockRemote) Remove(ctx context.Context, id string) error {
	r.calls = append(r.calls, repository.OpRemove)
	if r.offline {
		return errOffline
	}
	for i := range r.memos {
		if r.memos[i].ID == id {
			r.memos = append(r.memos[:i], r.memos[i+1:]...)
			return nil
		}
	}
	return &repository.RemoteError{Op: repository.OpRemove, StatusCode: 404}
}

// mockView records everything the controller asks of the page.
type mockView struct {
	handlers memo.FormHandlers

	markup  string
	renders int

	alerts        []string
	confirmAnswer bool
	confirms      int

	createCleared int
	editTitle     string
	editContent   string
	editVisible   bool
	scrolledTo    string
}

func (v *mockView) ReplaceChildren(markup string) {
	v.markup = markup
	v.renders++
}
func (v *mockView) BindForms(h memo.FormHandlers)         { v.handlers = h }
func (v *mockView) Alert(ctx context.Context, msg string) { v.alerts = append(v.alerts, msg) }
func (v *mockView) Confirm(ctx context.Context, msg string) bool {
	v.confirms++
	return v.confirmAnswer
}
func (v *mockView) ClearCreateForm() { v.createCleared++ }
func (v *mockView) FillEditForm(title, content string) {
	v.editTitle, v.editContent = title, content
}
func (v *mockView) ClearEditForm()    { v.editTitle, v.editContent = "", "" }
func (v *mockView) ShowCreateForm()   { v.editVisible = false }
func (v *mockView) ShowEditForm()     { v.editVisible = true }
func (v *mockView) ScrollToEditForm() { v.scrolledTo = "edit" }
func (v *mockView) ScrollToTop()      { v.scrolledTo = "top" }

type fixture struct {
	uc       *implUseCase
	remote   *mockRemote
	fallback repository.FallbackRepository
	view     *mockView
	log      *mockLogger
}

var testNow = time.Date(2024, time.June, 7, 8, 9, 10, 0, time.Local)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	storage, err := localstore.NewFileStorage(afero.NewMemMapFs(), "/local")
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	f := &fixture{
		remote: &mockRemote{},
		view:   &mockView{},
		log:    &mockLogger{},
	}
	f.fallback = local.New(storage, "", nil, f.log)

	seq := 0
	f.uc = New(f.remote, f.fallback, f.view, f.log,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func(t time.Time) string {
			seq++
			return fmt.Sprintf("%d-%d", t.UnixMilli(), seq)
		}),
	).(*implUseCase)
	return f
}
