package http

import (
	"embed"
	"errors"
	"html/template"

	"github.com/gin-gonic/gin"

	"memo-manager/pkg/log"
)

const pageTemplate = "page.html"

//go:embed templates/*.html
var templateFS embed.FS

// Handler is the public interface for the memo page delivery layer.
type Handler interface {
	Page(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Cancel(c *gin.Context)
	Action(c *gin.Context)
}

type handler struct {
	l        log.Logger
	sessions *sessions
	tmpl     *template.Template
}

// New creates the memo page handler. Every browser session gets its own
// controller from factory; at most sessionSize of them are kept.
func New(l log.Logger, factory UseCaseFactory, sessionSize int) (Handler, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if factory == nil {
		return nil, errors.New("use case factory is required")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	sess, err := newSessions(sessionSize, factory)
	if err != nil {
		return nil, err
	}

	return &handler{
		l:        l,
		sessions: sess,
		tmpl:     tmpl,
	}, nil
}
