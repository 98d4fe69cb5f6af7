package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user_service/internal/models"
	"user_service/internal/service"
)

func doJSON(t *testing.T, s *service.Service, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return m
}

func authedService(users *mockUsers) *service.Service {
	return &service.Service{
		Users:         users,
		Authorization: &mockAuth{parseEmail: "a@x.io"},
	}
}

func TestListUsers(t *testing.T) {
	users := &mockUsers{listResp: []models.User{
		{ID: "u1", Name: "alice", Email: "a@x.io", Password: "h1"},
		{ID: "u2", Name: "bob", Email: "b@x.io", Password: "h2"},
	}}

	w := doJSON(t, authedService(users), http.MethodGet, "/", "", "tok")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["message"] != "User fetched successfully" {
		t.Fatalf("unexpected message %v", m["message"])
	}
	data, ok := m["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 users in data, got %v", m["data"])
	}
}

func TestListUsers_EmptyIsNotFound(t *testing.T) {
	users := &mockUsers{listResp: []models.User{}}

	w := doJSON(t, authedService(users), http.MethodGet, "/", "", "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if m := decodeBody(t, w); m["message"] != "No users found" {
		t.Fatalf("unexpected message %v", m["message"])
	}
}

func TestListUsers_StoreErrorIsHandled500(t *testing.T) {
	users := &mockUsers{listErr: errors.New("db down")}

	w := doJSON(t, authedService(users), http.MethodGet, "/", "", "tok")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	// The underlying error never reaches the client.
	if bytes.Contains(w.Body.Bytes(), []byte("db down")) {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}
}

func TestListUsers_RequiresAuth(t *testing.T) {
	users := &mockUsers{listResp: []models.User{{ID: "u1"}}}

	w := doJSON(t, authedService(users), http.MethodGet, "/", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateUser(t *testing.T) {
	users := &mockUsers{createResp: models.User{ID: "u3", Name: "carol", Email: "c@x.io", Password: "plain"}}

	w := doJSON(t, authedService(users), http.MethodPost, "/post",
		`{"name":"carol","email":"c@x.io","password":"plain"}`, "tok")
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["message"] != "User created successfully" {
		t.Fatalf("unexpected message %v", m["message"])
	}
	data := m["data"].(map[string]any)
	// The create route stores and echoes the password verbatim.
	if data["password"] != "plain" {
		t.Fatalf("expected verbatim password in response, got %v", data["password"])
	}
	if users.lastCreateInput.Password != "plain" {
		t.Fatalf("expected service to receive raw password, got %q", users.lastCreateInput.Password)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"name":"carol"}`,
		`{"name":"carol","email":"c@x.io"}`,
		`{"name":"","email":"c@x.io","password":"p"}`,
	} {
		users := &mockUsers{}
		w := doJSON(t, authedService(users), http.MethodPost, "/post", body, "tok")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d", body, w.Code)
		}
		if m := decodeBody(t, w); m["message"] != "Name and email are required" {
			t.Fatalf("body %s: unexpected message %v", body, m["message"])
		}
	}
}

func TestUpdateUser_ReturnsPreUpdateSnapshot(t *testing.T) {
	old := &models.User{ID: "u1", Name: "old", Email: "old@x.io", Password: "oldpw"}
	users := &mockUsers{updateResp: old}

	w := doJSON(t, authedService(users), http.MethodPut, "/u1",
		`{"name":"new","email":"new@x.io","password":"newpw"}`, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["message"] != "User updated successfully" {
		t.Fatalf("unexpected message %v", m["message"])
	}
	data := m["data"].(map[string]any)
	if data["name"] != "old" {
		t.Fatalf("expected pre-update snapshot, got %v", data)
	}
	if users.lastUpdateID != "u1" {
		t.Fatalf("expected id u1, got %q", users.lastUpdateID)
	}
}

func TestUpdateUser_MissingIDIsNullSuccess(t *testing.T) {
	users := &mockUsers{updateResp: nil}

	w := doJSON(t, authedService(users), http.MethodPut, "/missing",
		`{"name":"n","email":"e@x.io","password":"p"}`, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if data, present := m["data"]; !present || data != nil {
		t.Fatalf("expected data:null, got %v", m)
	}
}

func TestUpdateUser_MissingFields(t *testing.T) {
	users := &mockUsers{}

	w := doJSON(t, authedService(users), http.MethodPut, "/u1", `{"name":"only"}`, "tok")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if m := decodeBody(t, w); m["message"] != "Name and email are required" {
		t.Fatalf("unexpected message %v", m["message"])
	}
}

func TestDeleteUser(t *testing.T) {
	deleted := &models.User{ID: "u1", Name: "alice", Email: "a@x.io", Password: "h1"}
	users := &mockUsers{deleteResp: deleted}

	w := doJSON(t, authedService(users), http.MethodDelete, "/u1", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["message"] != "User deleted successfully" {
		t.Fatalf("unexpected message %v", m["message"])
	}
	data := m["data"].(map[string]any)
	if data["id"] != "u1" {
		t.Fatalf("expected deleted record, got %v", data)
	}
	if users.lastDeleteID != "u1" {
		t.Fatalf("expected id u1, got %q", users.lastDeleteID)
	}
}

func TestDeleteUser_MissingIDIsNullSuccess(t *testing.T) {
	users := &mockUsers{deleteResp: nil}

	w := doJSON(t, authedService(users), http.MethodDelete, "/missing", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if data, present := m["data"]; !present || data != nil {
		t.Fatalf("expected data:null, got %v", m)
	}
}
