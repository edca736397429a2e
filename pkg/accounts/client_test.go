package accounts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oarkflow/signup/pkg/models"
)

func TestCreateAccountPostsJSONPayload(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/users", time.Second, nil)
	status, err := c.CreateAccount(context.Background(), models.AccountPayload{
		Email:    "ada@example.com",
		Password: "lovelace",
		Username: "ada",
		Nickname: "Countess",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("status = %d", status)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %s", gotMethod)
	}
	if gotType != "application/json" {
		t.Fatalf("content type = %q", gotType)
	}
	if gotBody["username"] != "ada" || gotBody["email"] != "ada@example.com" {
		t.Fatalf("body = %v", gotBody)
	}
	if _, ok := gotBody["gender"]; ok {
		t.Fatalf("unset gender should be omitted: %v", gotBody)
	}
	if _, ok := gotBody["confirm"]; ok {
		t.Fatalf("confirm must not be sent: %v", gotBody)
	}
}

func TestCreateAccountReturnsErrorStatuses(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusTeapot} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		status, err := NewClient(srv.URL, time.Second, nil).CreateAccount(context.Background(), models.AccountPayload{})
		srv.Close()
		if err != nil {
			t.Fatalf("%d: unexpected error %v", code, err)
		}
		if status != code {
			t.Fatalf("status = %d, want %d", status, code)
		}
	}
}

func TestCreateAccountUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewClient(url, time.Second, nil).CreateAccount(context.Background(), models.AccountPayload{}); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestCreateAccountCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient("http://127.0.0.1:1", time.Second, nil).CreateAccount(ctx, models.AccountPayload{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
