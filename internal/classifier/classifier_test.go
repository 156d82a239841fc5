package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/models"
)

func newTestClassifier(t *testing.T, handler http.HandlerFunc) Classifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPClassifier(config.Classifier{
		URL:            srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
}

func TestHTTPClassifier_Classify(t *testing.T) {
	var gotReq classifyRequest

	c := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(classifyResponse{
			Labels: []string{models.CategoryWork, models.CategoryStudy, models.CategoryHousehold, models.CategoryHealth, models.CategoryPersonalGoals},
			Scores: []float64{0.71, 0.12, 0.09, 0.05, 0.03},
		})
	})

	scores, err := c.Classify(context.Background(), "prepare quarterly report")
	require.NoError(t, err)

	assert.Equal(t, "prepare quarterly report", gotReq.Inputs)
	assert.Equal(t, models.CandidateLabels(), gotReq.Parameters.CandidateLabels)

	require.Len(t, scores, 5)
	assert.Equal(t, models.LabelScore{Label: models.CategoryWork, Score: 0.71}, scores[0])
	assert.Equal(t, models.LabelScore{Label: models.CategoryStudy, Score: 0.12}, scores[1])
}

func TestHTTPClassifier_Classify_SendsBearerToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(classifyResponse{
			Labels: []string{models.CategoryWork},
			Scores: []float64{0.9},
		})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClassifier(config.Classifier{
		URL:            srv.URL,
		Token:          "hf_secret",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())

	_, err := c.Classify(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, "Bearer hf_secret", gotAuth)
}

func TestHTTPClassifier_Classify_UnexpectedStatus(t *testing.T) {
	c := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	_, err := c.Classify(context.Background(), "text")

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestHTTPClassifier_Classify_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty arrays", `{"labels": [], "scores": []}`},
		{"length mismatch", `{"labels": ["Work"], "scores": [0.5, 0.4]}`},
		{"missing fields", `{"error": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})

			_, err := c.Classify(context.Background(), "text")

			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestHTTPClassifier_Classify_Unreachable(t *testing.T) {
	c := NewHTTPClassifier(config.Classifier{
		URL:            "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}, logger.Nop())

	_, err := c.Classify(context.Background(), "text")

	assert.ErrorIs(t, err, ErrRequestFailed)
}
