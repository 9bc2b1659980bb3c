package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"memo-manager/internal/memo/repository"
	"memo-manager/internal/memo/repository/remote"
	"memo-manager/internal/model"
)

func isRemoteError(err error) bool {
	var re *repository.RemoteError
	return errors.As(err, &re)
}

// fakeAPI is an in-memory /api/memos collection.
type fakeAPI struct {
	mu         sync.Mutex
	memos      []model.Memo
	failStatus int
	lastAuth   string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/memos", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lastAuth = r.Header.Get("Authorization")
		if f.failStatus != 0 {
			http.Error(w, "upstream unavailable", f.failStatus)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(f.memos)
		case http.MethodPost:
			var m model.Memo
			if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.memos = append(f.memos, m)
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/memos/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failStatus != 0 {
			w.WriteHeader(f.failStatus)
			return
		}
		id := r.PathValue("id")
		idx := -1
		for i, m := range f.memos {
			if m.ID == id {
				idx = i
			}
		}
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var m model.Memo
			json.NewDecoder(r.Body).Decode(&m)
			f.memos[idx] = m
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			f.memos = append(f.memos[:idx], f.memos[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func TestMemosClient(t *testing.T) {
	api := &fakeAPI{}
	ts := httptest.NewServer(api.handler())
	defer ts.Close()

	client := remote.NewClient(ts.URL+"/", "test-token")
	ctx := context.Background()

	t.Run("ListEmpty", func(t *testing.T) {
		memos, err := client.ListMemos(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if memos == nil || len(memos) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", memos)
		}
		if api.lastAuth != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %q", api.lastAuth)
		}
	})

	t.Run("CreateThenList", func(t *testing.T) {
		err := client.CreateMemo(ctx, model.Memo{ID: "1", Title: "T", Content: "C", Date: "2024-01-01 10:00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		memos, err := client.ListMemos(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(memos) != 1 || memos[0].Title != "T" || memos[0].Content != "C" {
			t.Errorf("unexpected list: %+v", memos)
		}
	})

	t.Run("UpdateMemo", func(t *testing.T) {
		err := client.UpdateMemo(ctx, "1", model.Memo{ID: "1", Title: "New", Content: "Body"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.memos[0].Title != "New" {
			t.Errorf("update not applied: %+v", api.memos[0])
		}

		err = client.UpdateMemo(ctx, "missing", model.Memo{ID: "missing"})
		var re *repository.RemoteError
		if !errors.As(err, &re) || re.StatusCode != http.StatusNotFound || re.Op != repository.OpUpdate {
			t.Errorf("expected 404 RemoteError, got %v", err)
		}
	})

	t.Run("DeleteMemo", func(t *testing.T) {
		if err := client.DeleteMemo(ctx, "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(api.memos) != 0 {
			t.Errorf("expected empty collection, got %+v", api.memos)
		}
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		api.failStatus = http.StatusServiceUnavailable
		defer func() { api.failStatus = 0 }()

		_, err := client.ListMemos(ctx)
		var re *repository.RemoteError
		if !errors.As(err, &re) {
			t.Fatalf("expected RemoteError, got %v", err)
		}
		if re.StatusCode != http.StatusServiceUnavailable || re.Body != "upstream unavailable" {
			t.Errorf("unexpected error detail: %+v", re)
		}

		if err := client.CreateMemo(ctx, model.Memo{ID: "2"}); !isRemoteError(err) {
			t.Errorf("expected RemoteError on create, got %v", err)
		}
		if err := client.DeleteMemo(ctx, "2"); !isRemoteError(err) {
			t.Errorf("expected RemoteError on delete, got %v", err)
		}
	})

	// Server Down
	t.Run("Server Down", func(t *testing.T) {
		badClient := remote.NewClient("http://localhost:59999", "")
		_, err := badClient.ListMemos(ctx)
		var re *repository.RemoteError
		if !errors.As(err, &re) || re.StatusCode != 0 {
			t.Errorf("expected transport RemoteError, got %v", err)
		}
	})
}

func TestListUnparsableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	_, err := remote.NewClient(ts.URL, "").ListMemos(context.Background())
	if !isRemoteError(err) {
		t.Fatalf("expected RemoteError for bad body, got %v", err)
	}
}

func TestPathEscapesID(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if err := remote.NewClient(ts.URL, "").DeleteMemo(context.Background(), "a/b c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/memos/a%2Fb%20c" {
		t.Errorf("unexpected path: %s", gotPath)
	}
}

func TestRateLimitHonoursContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := remote.NewClient(ts.URL, "", remote.WithRateLimit(0.001, 1))
	ctx := context.Background()
	if _, err := client.ListMemos(ctx); err != nil {
		t.Fatalf("first call should use the burst: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := client.ListMemos(cancelled); !isRemoteError(err) {
		t.Errorf("expected RemoteError from limiter, got %v", err)
	}
}
