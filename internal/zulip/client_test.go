package zulip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var gotPath, gotContentType string
	var gotForm map[string]string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotUser, gotPass, _ = r.BasicAuth()

		r.ParseForm()
		gotForm = map[string]string{
			"type":    r.PostFormValue("type"),
			"to":      r.PostFormValue("to"),
			"topic":   r.PostFormValue("topic"),
			"content": r.PostFormValue("content"),
		}

		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bot@example.com", "secret-key")

	err := client.SendMessage(context.Background(), "buildkite", "My Pipeline - Build", "✅ Build passed")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if gotPath != "/api/v1/messages" {
		t.Errorf("path = %q", gotPath)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotUser != "bot@example.com" || gotPass != "secret-key" {
		t.Errorf("basic auth = %q / %q", gotUser, gotPass)
	}
	if gotForm["type"] != "stream" {
		t.Errorf("type = %q", gotForm["type"])
	}
	if gotForm["to"] != "buildkite" {
		t.Errorf("to = %q", gotForm["to"])
	}
	if gotForm["topic"] != "My Pipeline - Build" {
		t.Errorf("topic = %q", gotForm["topic"])
	}
	if gotForm["content"] != "✅ Build passed" {
		t.Errorf("content = %q", gotForm["content"])
	}
}

func TestSendMessage_TrailingSlashServerURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "bot@example.com", "key")
	if err := client.SendMessage(context.Background(), "c", "t", "m"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if gotPath != "/api/v1/messages" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestSendMessage_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"result":"error","msg":"Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bot@example.com", "wrong-key")

	err := client.SendMessage(context.Background(), "c", "t", "m")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error should carry the status code, got: %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid API key") {
		t.Errorf("error should carry the response body, got: %v", err)
	}
}

func TestSendMessage_ServerUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "bot@example.com", "key")

	if err := client.SendMessage(context.Background(), "c", "t", "m"); err == nil {
		t.Fatal("expected error when server is unreachable")
	}
}
