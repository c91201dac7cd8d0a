package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/souqlabs/souq/pkg/client"
)

func TestRegisterPasswordMismatchStaysLocal(t *testing.T) {
	loc := testLocalizer(t, "en")
	m := newRegisterModel(client.New("http://unreachable.invalid", 0, nil), loc, testStore(t))
	m.inputs[registerFieldName].SetValue("Karim")
	m.inputs[registerFieldEmail].SetValue("k@b.com")
	m.inputs[registerFieldPassword].SetValue("secret")
	m.inputs[registerFieldConfirm].SetValue("different")

	m, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("a password mismatch must never reach the network")
	}
	if m.submitting {
		t.Error("expected submitting to stay false")
	}
	if m.errMsg != loc.T("register.passwordMismatch") {
		t.Errorf("errMsg = %q, want the mismatch message", m.errMsg)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	loc := testLocalizer(t, "en")
	m := newRegisterModel(client.New("http://unreachable.invalid", 0, nil), loc, testStore(t))
	m.inputs[registerFieldEmail].SetValue("k@b.com")
	m.inputs[registerFieldPassword].SetValue("secret")
	m.inputs[registerFieldConfirm].SetValue("secret")

	_, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("expected no request without a name")
	}
}

func TestRegisterSuccessSavesSessionAndNavigatesHome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			http.NotFound(w, r)
			return
		}
		var reg client.Registration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success": true,
			"user":    map[string]any{"email": reg.Email, "name": reg.Name},
		})
	}))
	defer srv.Close()

	loc := testLocalizer(t, "en")
	store := testStore(t)
	m := newRegisterModel(client.New(srv.URL, 0, nil), loc, store)
	m.inputs[registerFieldName].SetValue("Karim")
	m.inputs[registerFieldEmail].SetValue("k@b.com")
	m.inputs[registerFieldPassword].SetValue("secret")
	m.inputs[registerFieldConfirm].SetValue("secret")

	m, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("expected a register command")
	}
	result, ok := cmd().(registerResultMsg)
	if !ok || result.err != nil {
		t.Fatalf("register result = %+v ok=%v", result, ok)
	}

	_, cmd = m.Update(result)
	saved, savedOK := store.Load()
	if !savedOK || saved.Email != "k@b.com" {
		t.Fatalf("expected session saved for k@b.com, got %+v ok=%v", saved, savedOK)
	}

	var gotNavigate bool
	for _, msg := range runCmd(cmd) {
		if nav, navOK := msg.(navigateMsg); navOK && nav.to == viewHome {
			gotNavigate = true
		}
	}
	if !gotNavigate {
		t.Error("expected navigation to the home view")
	}
}

func TestRegisterDeniedShowsServerMessage(t *testing.T) {
	loc := testLocalizer(t, "en")
	m := newRegisterModel(client.New("http://unreachable.invalid", 0, nil), loc, testStore(t))

	m, _ = m.Update(registerResultMsg{err: &client.DeniedError{Message: "email already registered"}})
	if m.errMsg != "email already registered" {
		t.Errorf("errMsg = %q, want the server's own message", m.errMsg)
	}
}
