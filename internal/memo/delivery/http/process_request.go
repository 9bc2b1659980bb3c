package http

import (
	"github.com/gin-gonic/gin"
)

// processMemoFormReq binds the create/edit form fields.
func (h *handler) processMemoFormReq(c *gin.Context) (memoFormReq, error) {
	var req memoFormReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processActionReq binds and validates a delegated list action.
func (h *handler) processActionReq(c *gin.Context) (actionReq, error) {
	var req actionReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}
