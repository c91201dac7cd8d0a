package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/souqlabs/souq/internal/session"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

func TestLoginRequiresBothFields(t *testing.T) {
	loc := testLocalizer(t, "en")
	m := newLoginModel(client.New("http://unreachable.invalid", 0, nil), loc, testStore(t))

	m.inputs[loginFieldEmail].SetValue("a@b.com")
	m, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("expected no request without a password")
	}
	if m.submitting {
		t.Error("expected submitting to stay false")
	}
}

func TestLoginSuccessSavesSessionAndNavigatesHome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success": true,
			"user":    map[string]any{"email": "a@b.com", "name": "Amina"},
		})
	}))
	defer srv.Close()

	loc := testLocalizer(t, "en")
	store := testStore(t)
	m := newLoginModel(client.New(srv.URL, 0, nil), loc, store)
	m.inputs[loginFieldEmail].SetValue("a@b.com")
	m.inputs[loginFieldPassword].SetValue("secret")

	m, cmd := m.Update(keyEnter())
	if !m.submitting {
		t.Fatal("expected submitting after enter")
	}
	if cmd == nil {
		t.Fatal("expected a login command")
	}

	result, ok := cmd().(loginResultMsg)
	if !ok {
		t.Fatalf("expected loginResultMsg, got %T", result)
	}
	if result.err != nil {
		t.Fatalf("login result error: %v", result.err)
	}

	m, cmd = m.Update(result)
	if m.submitting {
		t.Error("expected submitting cleared after the result")
	}
	saved, savedOK := store.Load()
	if !savedOK || saved.Email != "a@b.com" {
		t.Fatalf("expected session saved for a@b.com, got %+v ok=%v", saved, savedOK)
	}

	var gotSession, gotNavigate bool
	for _, msg := range runCmd(cmd) {
		switch msg := msg.(type) {
		case sessionChangedMsg:
			gotSession = msg.user != nil && msg.user.Email == "a@b.com"
		case navigateMsg:
			gotNavigate = msg.to == viewHome
		}
	}
	if !gotSession {
		t.Error("expected a session change announcement")
	}
	if !gotNavigate {
		t.Error("expected navigation to the home view")
	}
}

func TestLoginDeniedShowsServerMessage(t *testing.T) {
	loc := testLocalizer(t, "en")
	store := testStore(t)
	m := newLoginModel(client.New("http://unreachable.invalid", 0, nil), loc, store)

	m, cmd := m.Update(loginResultMsg{err: &client.DeniedError{Message: "wrong password"}})
	if cmd != nil {
		t.Error("expected no follow-up command on failure")
	}
	if m.errMsg != "wrong password" {
		t.Errorf("errMsg = %q, want the server's own message", m.errMsg)
	}
	if _, ok := store.Load(); ok {
		t.Error("a failed login must not create a session")
	}
}

func TestLoginTransportFailureShowsGenericMessage(t *testing.T) {
	loc := testLocalizer(t, "en")
	m := newLoginModel(client.New("http://unreachable.invalid", 0, nil), loc, testStore(t))

	m, _ = m.Update(loginResultMsg{err: errors.New("connection refused")})
	if m.errMsg != loc.T("login.genericError") {
		t.Errorf("errMsg = %q, want the localized generic message", m.errMsg)
	}
}

func TestLoginIgnoresEnterWhileSubmitting(t *testing.T) {
	loc := testLocalizer(t, "en")
	m := newLoginModel(client.New("http://unreachable.invalid", 0, nil), loc, testStore(t))
	m.inputs[loginFieldEmail].SetValue("a@b.com")
	m.inputs[loginFieldPassword].SetValue("secret")
	m.submitting = true

	_, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("expected the second enter to be inert while a request is outstanding")
	}
}

func TestLoginStoreWriteFailureShowsGenericMessage(t *testing.T) {
	loc := testLocalizer(t, "en")
	// A store path nested under a plain file cannot be created.
	blocking := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocking, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	store := session.NewStore(filepath.Join(blocking, "sub", "session.json"))

	m := newLoginModel(client.New("http://unreachable.invalid", 0, nil), loc, store)
	m, _ = m.Update(loginResultMsg{user: &domain.User{Email: "a@b.com"}})
	if m.errMsg != loc.T("login.genericError") {
		t.Errorf("errMsg = %q, want the localized generic message", m.errMsg)
	}
}
