package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/summary-share/pkg/config"
)

func newTestClient(baseURL string) *GroqClient {
	return NewGroqClient(&config.GroqConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "llama-3.1-70b-versatile",
		Timeout: 5 * time.Second,
	})
}

func TestGenerateSummary_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.1-70b-versatile", req.Model)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "• Key point one\n• Key point two"}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	got, err := client.GenerateSummary(context.Background(), "We talked about hiring.", "")
	require.NoError(t, err)
	assert.Equal(t, "• Key point one\n• Key point two", got)
}

func TestGenerateSummary_CustomInstructionInterpolated(t *testing.T) {
	var userContent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []map[string]string `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0]["role"])
		userContent = req.Messages[1]["content"]

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	_, err := client.GenerateSummary(context.Background(), "We talked about hiring.", "Focus on action items")
	require.NoError(t, err)
	assert.Contains(t, userContent, "Focus on action items")
	assert.Contains(t, userContent, "We talked about hiring.")
}

func TestGenerateSummary_DefaultInstruction(t *testing.T) {
	var userContent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []map[string]string `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		userContent = req.Messages[1]["content"]

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	_, err := client.GenerateSummary(context.Background(), "We talked about hiring.", "")
	require.NoError(t, err)
	assert.Contains(t, userContent, defaultInstruction)
}

func TestGenerateSummary_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	_, err := client.GenerateSummary(context.Background(), "We talked about hiring.", "")
	assert.Error(t, err)
}

func TestGenerateSummary_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	_, err := client.GenerateSummary(context.Background(), "We talked about hiring.", "")
	assert.Error(t, err)
}
