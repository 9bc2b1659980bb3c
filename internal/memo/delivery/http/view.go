package http

import (
	"context"
	"sync"

	"memo-manager/internal/memo"
)

const (
	anchorEditForm = "memo-edit"
	anchorTop      = "top"
)

// confirmPrompt is a pending destructive action waiting for the user's answer.
type confirmPrompt struct {
	Message string
	Action  string
	ID      string
}

// pageView is the server-side state of one browser page. The controller
// drives it through memo.View; the handlers turn it into HTML.
type pageView struct {
	mu sync.Mutex

	handlers memo.FormHandlers

	listMarkup    string
	createTitle   string
	createContent string
	editTitle     string
	editContent   string
	editVisible   bool

	flash  []string
	scroll string

	// per request
	target  confirmPrompt
	answer  *bool
	pending *confirmPrompt

	// stale is false right after an action, so the following GET shows
	// that result instead of reloading.
	stale bool
}

func newPageView() *pageView {
	return &pageView{stale: true}
}

func (v *pageView) ReplaceChildren(markup string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listMarkup = markup
	v.stale = false
}

func (v *pageView) BindForms(h memo.FormHandlers) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handlers = h
}

func (v *pageView) Alert(_ context.Context, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.flash = append(v.flash, msg)
}

// Confirm answers from the current request. Without an answer the prompt
// is parked on the page and the action is treated as declined for now.
func (v *pageView) Confirm(_ context.Context, msg string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.answer != nil {
		return *v.answer
	}
	p := v.target
	p.Message = msg
	v.pending = &p
	return false
}

func (v *pageView) ClearCreateForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.createTitle, v.createContent = "", ""
}

func (v *pageView) FillEditForm(title, content string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editTitle, v.editContent = title, content
}

func (v *pageView) ClearEditForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editTitle, v.editContent = "", ""
}

func (v *pageView) ShowCreateForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editVisible = false
}

func (v *pageView) ShowEditForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editVisible = true
}

func (v *pageView) ScrollToEditForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scroll = anchorEditForm
}

func (v *pageView) ScrollToTop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scroll = anchorTop
}

// beginAction resets per-request state before a form or list action runs.
func (v *pageView) beginAction(target confirmPrompt, answer *bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.target = target
	v.answer = answer
	v.pending = nil
	v.scroll = ""
	v.stale = false
}

// typeCreate keeps what the user typed so a failed validation does not lose it.
func (v *pageView) typeCreate(title, content string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.createTitle, v.createContent = title, content
}

func (v *pageView) typeEdit(title, content string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editTitle, v.editContent = title, content
}

func (v *pageView) formHandlers() memo.FormHandlers {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.handlers
}

// scrollAnchor returns and clears the requested scroll target.
func (v *pageView) scrollAnchor() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	a := v.scroll
	v.scroll = ""
	return a
}

func (v *pageView) needsRefresh() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stale
}

// snapshot copies the page state for rendering, consuming flash messages
// and marking the list stale for the next plain reload.
func (v *pageView) snapshot() pageState {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := pageState{
		ListMarkup:    v.listMarkup,
		CreateTitle:   v.createTitle,
		CreateContent: v.createContent,
		EditTitle:     v.editTitle,
		EditContent:   v.editContent,
		EditVisible:   v.editVisible,
		Flash:         v.flash,
		Confirm:       v.pending,
	}
	v.flash = nil
	v.pending = nil
	v.stale = true
	return s
}
