package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"memo-manager/internal/memo"
)

const (
	sessionCookie       = "memo_session"
	sessionCookieMaxAge = 30 * 24 * 60 * 60
	defaultSessionSize  = 256
)

// UseCaseFactory builds a controller for a freshly opened page.
type UseCaseFactory func(view memo.View) memo.UseCase

// session is one open page: its controller and the view it drives. mu
// serialises the user's actions, matching a single UI thread.
type session struct {
	mu   sync.Mutex
	uc   memo.UseCase
	view *pageView
}

type sessions struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, *session]
	factory UseCaseFactory
}

func newSessions(size int, factory UseCaseFactory) (*sessions, error) {
	if size <= 0 {
		size = defaultSessionSize
	}
	cache, err := lru.New[string, *session](size)
	if err != nil {
		return nil, err
	}
	return &sessions{cache: cache, factory: factory}, nil
}

// get returns the caller's session, opening and initialising a new page when
// the cookie is missing or its session was evicted.
func (s *sessions) get(c *gin.Context) *session {
	s.mu.Lock()
	if id, err := c.Cookie(sessionCookie); err == nil {
		if sess, ok := s.cache.Get(id); ok {
			s.mu.Unlock()
			return sess
		}
	}

	view := newPageView()
	sess := &session{uc: s.factory(view), view: view}
	// hold the page until its first load is done
	sess.mu.Lock()
	defer sess.mu.Unlock()

	id := uuid.NewString()
	s.cache.Add(id, sess)
	s.mu.Unlock()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, sessionCookieMaxAge, "/", "", false, true)

	sess.uc.Initialize(operationContext(c))
	return sess
}

func (s *sessions) len() int {
	return s.cache.Len()
}
