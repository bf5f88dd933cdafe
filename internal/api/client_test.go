package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/models"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newClient(t *testing.T, token string, status int, response string) (*api.Client, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second, func() string { return token }), rec
}

func TestClientSendsBearerToken(t *testing.T) {
	client, rec := newClient(t, "secret", http.StatusOK, `[]`)

	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if rec.auth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", rec.auth)
	}
}

func TestClientOmitsAuthWhenSignedOut(t *testing.T) {
	client, rec := newClient(t, "", http.StatusOK, `{"access_token": "t", "user": {"id": 1, "name": "A", "email": "a@x", "role": "Admin"}}`)

	if _, err := client.Login(context.Background(), "a@x", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.auth != "" {
		t.Errorf("Authorization = %q, want empty", rec.auth)
	}
	if rec.path != "/api/auth/login" {
		t.Errorf("path = %q, want /api/auth/login", rec.path)
	}
}

func TestClientCollectionPaths(t *testing.T) {
	tests := []struct {
		name string
		call func(c *api.Client) error
		path string
	}{
		{"projects", func(c *api.Client) error { _, err := c.Projects(context.Background()); return err }, "/api/projects/"},
		{"tasks", func(c *api.Client) error { _, err := c.Tasks(context.Background()); return err }, "/api/tasks/"},
		{"users", func(c *api.Client) error { _, err := c.Users(context.Background()); return err }, "/api/users/"},
		{"task comments", func(c *api.Client) error { _, err := c.TaskComments(context.Background(), 7); return err }, "/api/comments/task/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newClient(t, "tok", http.StatusOK, `[]`)
			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.path != tt.path {
				t.Errorf("path = %q, want %q", rec.path, tt.path)
			}
		})
	}
}

func TestClientSurfacesServerMessage(t *testing.T) {
	client, _ := newClient(t, "tok", http.StatusForbidden, `{"message": "Managers and admins only"}`)

	err := client.CreateProject(context.Background(), "Alpha", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Managers and admins only" {
		t.Errorf("error = %q, want the server message", err.Error())
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *api.Error", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", apiErr.Status)
	}
}

func TestClientFallsBackToStatusMessage(t *testing.T) {
	client, _ := newClient(t, "tok", http.StatusBadGateway, `upstream exploded`)

	err := client.DeleteTask(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "request failed (HTTP 502)" {
		t.Errorf("error = %q, want generic HTTP message", err.Error())
	}
}

func TestUpdateTaskStatusSendsEnumName(t *testing.T) {
	client, rec := newClient(t, "tok", http.StatusOK, `{}`)

	if err := client.UpdateTaskStatus(context.Background(), 9, models.StatusInProgress); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if rec.method != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", rec.method)
	}
	if rec.path != "/api/tasks/9/status" {
		t.Errorf("path = %q, want /api/tasks/9/status", rec.path)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "IN_PROGRESS" {
		t.Errorf("status = %q, want IN_PROGRESS", body["status"])
	}
}

func TestRegisterSendsWireRole(t *testing.T) {
	client, rec := newClient(t, "", http.StatusCreated, `{}`)

	if err := client.Register(context.Background(), "Alice", "a@x", "pw", models.RoleManager); err != nil {
		t.Fatalf("Register: %v", err)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["role"] != "MANAGER" {
		t.Errorf("role = %q, want MANAGER", body["role"])
	}
}

func TestAssistReturnsMessage(t *testing.T) {
	client, rec := newClient(t, "tok", http.StatusOK, `{"message": "Here are three ideas"}`)

	text, err := client.Assist(context.Background(), api.AssistRequest{
		Prompt: "suggest tasks",
		Mode:   api.AssistIdeas,
	})
	if err != nil {
		t.Fatalf("Assist: %v", err)
	}
	if text != "Here are three ideas" {
		t.Errorf("text = %q", text)
	}
	if rec.path != "/api/ai/assist" {
		t.Errorf("path = %q, want /api/ai/assist", rec.path)
	}
}
