package http

import (
	"html/template"

	"memo-manager/internal/memo/render"
)

// --- Request DTOs ---

type memoFormReq struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

// Emptiness is checked by the controller after trimming, so the binding
// only caps sizes.
func (r memoFormReq) validate() error {
	if len(r.Title) > maxTitleBytes || len(r.Content) > maxContentBytes {
		return errFieldTooLong
	}
	return nil
}

// ---

type actionReq struct {
	Action  string `form:"action"  binding:"required,oneof=open edit delete"`
	ID      string `form:"id"      binding:"required,max=128"`
	Confirm string `form:"confirm" binding:"omitempty,oneof=yes no"`
}

func (r actionReq) toEvent() render.Event {
	return render.ClickEvent(r.Action, r.ID)
}

// answer is nil when the request carries no confirmation answer.
func (r actionReq) answer() *bool {
	if r.Confirm == "" {
		return nil
	}
	yes := r.Confirm == "yes"
	return &yes
}

func (r actionReq) target() confirmPrompt {
	return confirmPrompt{Action: r.Action, ID: r.ID}
}

// --- Page model ---

type pageState struct {
	ListMarkup    string
	CreateTitle   string
	CreateContent string
	EditTitle     string
	EditContent   string
	EditVisible   bool
	Flash         []string
	Confirm       *confirmPrompt
}

type pageData struct {
	pageState
	List       template.HTML
	ActionPath string
}

// newPageData wraps the list markup, which the renderer has already escaped.
func newPageData(s pageState) pageData {
	return pageData{
		pageState:  s,
		List:       template.HTML(s.ListMarkup),
		ActionPath: render.ActionPath,
	}
}
