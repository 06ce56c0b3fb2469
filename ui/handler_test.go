package ui

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/youssefsiam38/recoverpg"
	"github.com/youssefsiam38/recoverpg/snapshot"
)

func newTestRecovery(t *testing.T) *recoverpg.Recovery {
	t.Helper()

	rec, err := recoverpg.New(
		recoverpg.WithWorkspace(t.TempDir()),
		recoverpg.WithLogger(log.New(io.Discard, "", 0)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rec
}

func saveSnapshot(t *testing.T, rec *recoverpg.Recovery, passages ...string) {
	t.Helper()

	snap := snapshot.Snapshot{
		Timestamp:       time.Now(),
		CompactionCount: 1,
		Passages:        passages,
	}
	if err := rec.Store().Save(context.Background(), snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestIndexEmpty(t *testing.T) {
	h := Handler(newTestRecovery(t), nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No snapshot saved yet") {
		t.Error("expected empty state message")
	}
}

func TestIndexRendersSnapshot(t *testing.T) {
	rec := newTestRecovery(t)
	saveSnapshot(t, rec, "User: Fix the login bug")

	h := Handler(rec, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Task Context Snapshot") {
		t.Error("expected rendered snapshot heading")
	}
	if !strings.Contains(body, "Fix the login bug") {
		t.Error("expected snapshot passage in page")
	}
}

func TestIndexSanitizesSnapshot(t *testing.T) {
	rec := newTestRecovery(t)
	saveSnapshot(t, rec, "User: <script>alert(1)</script>")

	h := Handler(rec, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Contains(rr.Body.String(), "<script>alert(1)</script>") {
		t.Error("conversation-derived markup must be sanitized")
	}
}

func TestRawSnapshot(t *testing.T) {
	rec := newTestRecovery(t)
	saveSnapshot(t, rec, "User: Fix the login bug")

	h := Handler(rec, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snapshot.md", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "# Task Context Snapshot") {
		t.Error("expected raw markdown body")
	}
}

func TestRawSnapshotMissing(t *testing.T) {
	h := Handler(newTestRecovery(t), nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snapshot.md", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing snapshot, got %d", rr.Code)
	}
}

func TestClearSnapshot(t *testing.T) {
	rec := newTestRecovery(t)
	saveSnapshot(t, rec, "User: Fix the login bug")

	h := Handler(rec, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/clear", nil))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
	if _, ok, _ := rec.Store().Load(context.Background()); ok {
		t.Error("expected snapshot to be cleared")
	}
}

func TestClearReadOnly(t *testing.T) {
	rec := newTestRecovery(t)
	saveSnapshot(t, rec, "User: Fix the login bug")

	h := Handler(rec, &Config{ReadOnly: true})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/clear", nil))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 in read-only mode, got %d", rr.Code)
	}
	if _, ok, _ := rec.Store().Load(context.Background()); !ok {
		t.Error("read-only mode must not clear the snapshot")
	}
}

func TestInvalidConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid configuration")
		}
	}()
	Handler(newTestRecovery(t), &Config{RefreshInterval: time.Millisecond})
}
