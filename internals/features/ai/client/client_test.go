package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJSON(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ideas\":[]}"}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gpt-test")
	content, err := c.GenerateJSON(context.Background(), "system", "user prompt", 500)

	assert.NoError(t, err)
	assert.Equal(t, `{"ideas":[]}`, content)

	assert.Equal(t, "gpt-test", captured["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, captured["response_format"])
	messages := captured["messages"].([]any)
	assert.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
}

func TestGenerateJSONUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gpt-test")
	_, err := c.GenerateJSON(context.Background(), "system", "user", 500)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateJSONNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gpt-test")
	_, err := c.GenerateJSON(context.Background(), "system", "user", 500)
	assert.Error(t, err)
}

func TestGenerateJSONBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "gpt-test")
	_, err := c.GenerateJSON(context.Background(), "system", "user", 500)
	assert.Error(t, err)
}
