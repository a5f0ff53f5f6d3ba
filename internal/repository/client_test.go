package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/model"
)

// staticToken satisfies auth.TokenSource with a function so tests can
// observe and vary the credential handed out per call.
func staticToken(f func() (string, error)) auth.TokenSource {
	return auth.TokenFunc(func(context.Context) (string, error) { return f() })
}

func TestCollection_ListAttachesFreshBearerPerCall(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]model.Show{})
	}))
	defer srv.Close()

	calls := 0
	tokens := staticToken(func() (string, error) {
		calls++
		if calls == 1 {
			return "tok-1", nil
		}
		return "tok-2", nil
	})
	shows := NewShows(NewClient(srv.URL, tokens, 5*time.Second))

	if _, err := shows.List(context.Background()); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if _, err := shows.List(context.Background()); err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if len(seen) != 2 || seen[0] != "Bearer tok-1" || seen[1] != "Bearer tok-2" {
		t.Fatalf("expected a fresh bearer per call, saw %v", seen)
	}
}

func TestCollection_AuthUnavailableBlocksRequest(t *testing.T) {
	reached := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	defer srv.Close()

	tokens := staticToken(func() (string, error) { return "", auth.ErrAuthUnavailable })
	shows := NewShows(NewClient(srv.URL, tokens, 5*time.Second))

	_, err := shows.List(context.Background())
	if !errors.Is(err, auth.ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable, got %v", err)
	}
	if reached {
		t.Fatalf("request must not be issued without a credential")
	}
}

func TestCollection_NonSuccessStatusBecomesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	tokens := staticToken(func() (string, error) { return "tok", nil })
	classes := NewClassNames(NewClient(srv.URL, tokens, 5*time.Second))

	_, err := classes.List(context.Background())
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RemoteError, got %v", err)
	}
	if re.Collection != "class names" || re.Op != "list" || re.Status != http.StatusBadGateway {
		t.Fatalf("unexpected error fields: %+v", re)
	}
}

func TestCollection_CreateOmitsIDAndDecodesServerCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/events" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Errorf("create body must not carry an id, got %v", body)
		}
		saved := model.Show{ID: "srv-1", Title: body["title"].(string), Date: "2024-06-03", Slot: "Daily Mile"}
		_ = json.NewEncoder(w).Encode(saved)
	}))
	defer srv.Close()

	tokens := staticToken(func() (string, error) { return "tok", nil })
	shows := NewShows(NewClient(srv.URL, tokens, 5*time.Second))

	saved, err := shows.Create(context.Background(), model.Show{Title: "Morning run", Date: "2024-06-03", Slot: "Daily Mile"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if saved.ID != "srv-1" || saved.Title != "Morning run" {
		t.Fatalf("unexpected server copy: %+v", saved)
	}
}

func TestCollection_UpdateAndDeleteHitRecordPath(t *testing.T) {
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Reference{ID: "p1", Name: "Sam"})
	}))
	defer srv.Close()

	tokens := staticToken(func() (string, error) { return "tok", nil })
	producers := NewProducers(NewClient(srv.URL, tokens, 5*time.Second))

	if _, err := producers.Update(context.Background(), "p1", model.Reference{Name: "Sam"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := producers.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	want := []string{"PUT /producers/p1", "DELETE /producers/p1"}
	for i := range want {
		if gotPaths[i] != want[i] {
			t.Fatalf("request %d = %q, want %q", i, gotPaths[i], want[i])
		}
	}
}
