package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"memo-manager/internal/memo"
	memoHTTP "memo-manager/internal/memo/delivery/http"
	memoUC "memo-manager/internal/memo/usecase"
	"memo-manager/internal/middleware"
)

// setupMemoDomain wires the memo page. Repositories are shared; every
// browser session gets its own controller.
func (srv HTTPServer) setupMemoDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase factory
	factory := func(view memo.View) memo.UseCase {
		return memoUC.New(srv.remote, srv.fallback, view, srv.l)
	}

	// 2. HTTP Handler
	h, err := memoHTTP.New(srv.l, factory, srv.sessionSize)
	if err != nil {
		return err
	}

	// 3. Routes: the page lives at the root
	memoHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Memo domain registered")
	return nil
}
