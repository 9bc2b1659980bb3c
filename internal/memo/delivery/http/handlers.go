package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	ginRender "github.com/gin-gonic/gin/render"

	"memo-manager/pkg/response"
)

// Page godoc
// @Summary     Memo page
// @Description Renders the memo page for the caller's session. A plain reload lists memos again; right after an action it shows that action's result.
// @Tags        Memo
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Page(c *gin.Context) {
	ctx := operationContext(c)

	sess := h.sessions.get(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.view.needsRefresh() {
		sess.uc.Refresh(ctx)
	}
	h.renderPage(c, sess.view.snapshot())
}

// Create godoc
// @Summary     Create a memo
// @Description Submits the create form. Empty fields are reported on the page; an unreachable remote API stores the memo locally.
// @Tags        Memo
// @Accept      x-www-form-urlencoded
// @Param       title   formData string true "Memo title"
// @Param       content formData string true "Memo content"
// @Success     303 "Redirect to the page"
// @Failure     413 {object} response.Resp "Field too long"
// @Router      /memos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := operationContext(c)

	req, err := h.processMemoFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "memo.http.Create processMemoFormReq: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	sess := h.sessions.get(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.view.beginAction(confirmPrompt{}, nil)
	sess.view.typeCreate(req.Title, req.Content)
	if onCreate := sess.view.formHandlers().OnCreate; onCreate != nil {
		onCreate(ctx, req.Title, req.Content)
	}
	h.redirect(c, sess.view)
}

// Update godoc
// @Summary     Update the memo being edited
// @Description Submits the edit form for the memo opened with the edit or open action. Does nothing when no memo is being edited.
// @Tags        Memo
// @Accept      x-www-form-urlencoded
// @Param       title   formData string true "Memo title"
// @Param       content formData string true "Memo content"
// @Success     303 "Redirect to the page"
// @Failure     413 {object} response.Resp "Field too long"
// @Router      /memos/edit [POST]
func (h *handler) Update(c *gin.Context) {
	ctx := operationContext(c)

	req, err := h.processMemoFormReq(c)
	if err != nil {
		h.l.Warnf(ctx, "memo.http.Update processMemoFormReq: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	sess := h.sessions.get(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.view.beginAction(confirmPrompt{}, nil)
	if sess.uc.CurrentEditID() != "" {
		sess.view.typeEdit(req.Title, req.Content)
	}
	if onUpdate := sess.view.formHandlers().OnUpdate; onUpdate != nil {
		onUpdate(ctx, req.Title, req.Content)
	}
	h.redirect(c, sess.view)
}

// Cancel godoc
// @Summary     Cancel editing
// @Description Closes the edit form and shows the create form again.
// @Tags        Memo
// @Success     303 "Redirect to the page"
// @Router      /memos/edit/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := operationContext(c)

	sess := h.sessions.get(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.view.beginAction(confirmPrompt{}, nil)
	if onCancel := sess.view.formHandlers().OnCancel; onCancel != nil {
		onCancel(ctx)
	}
	h.redirect(c, sess.view)
}

// Action godoc
// @Summary     List action
// @Description Delegated action on a rendered memo row. open and edit open the edit form; delete asks for confirmation first, answered with confirm=yes|no.
// @Tags        Memo
// @Accept      x-www-form-urlencoded
// @Param       action  formData string true  "open, edit or delete"
// @Param       id      formData string true  "Memo ID"
// @Param       confirm formData string false "Confirmation answer: yes or no"
// @Success     303 "Redirect to the page"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown action"
// @Router      /memos/actions [POST]
func (h *handler) Action(c *gin.Context) {
	ctx := operationContext(c)

	req, err := h.processActionReq(c)
	if err != nil {
		h.l.Warnf(ctx, "memo.http.Action processActionReq: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	sess := h.sessions.get(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.view.beginAction(req.target(), req.answer())
	if !sess.uc.Dispatch(ctx, req.toEvent()) {
		response.Error(c, h.mapError(errUnknownAction), nil)
		return
	}
	h.redirect(c, sess.view)
}

// operationContext keeps request values but drops cancellation: a remote
// call that was issued finishes even if the browser goes away.
func operationContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func (h *handler) renderPage(c *gin.Context, s pageState) {
	c.Render(http.StatusOK, ginRender.HTML{
		Template: h.tmpl,
		Name:     pageTemplate,
		Data:     newPageData(s),
	})
}

// redirect sends the browser back to the page, scrolled where the
// controller asked.
func (h *handler) redirect(c *gin.Context, v *pageView) {
	location := "/"
	if anchor := v.scrollAnchor(); anchor != "" {
		location += "#" + anchor
	}
	c.Redirect(http.StatusSeeOther, location)
}
