// Package classifier talks to an external zero-shot classification endpoint
// and maps free-form task text onto the application's category labels.
//
// The adapter is deliberately thin: it sends the text with a fixed set of
// candidate labels and returns the model's ranked (label, score) pairs.
// Deciding what to do with the ranking belongs to the service layer.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/models"
)

// Classifier ranks the candidate category labels for a piece of text.
type Classifier interface {
	// Classify returns (label, score) pairs ordered best-first. The labels
	// are always drawn from models.CandidateLabels. Any transport, status
	// or decoding problem is returned as an error; the caller decides how
	// to degrade.
	Classify(ctx context.Context, text string) ([]models.LabelScore, error)
}

var (
	// ErrRequestFailed indicates the endpoint could not be reached or the
	// request could not be sent.
	ErrRequestFailed = errors.New("classification request failed")
	// ErrUnexpectedStatus indicates the endpoint answered with a non-2xx
	// status code.
	ErrUnexpectedStatus = errors.New("classification endpoint returned unexpected status")
	// ErrMalformedResponse indicates the endpoint's answer could not be
	// interpreted as a label ranking.
	ErrMalformedResponse = errors.New("malformed classification response")
)

// classifyRequest is the inference request body. The endpoint performs
// zero-shot classification: it receives the raw text plus the candidate
// labels and needs no task-specific training.
type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// classifyResponse mirrors the endpoint's answer: two parallel arrays,
// already sorted by descending score.
type classifyResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// httpClassifier is the resty-backed implementation of [Classifier].
type httpClassifier struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPClassifier constructs a [Classifier] that posts to the configured
// inference URL. When cfg.Token is non-empty it is sent as a bearer token
// with every request.
func NewHTTPClassifier(cfg config.Classifier, logger *logger.Logger) Classifier {
	logger.Debug().Str("url", cfg.URL).Msg("creating HTTP classifier")

	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &httpClassifier{
		client: client,
		logger: logger,
	}
}

// Classify posts text to the inference endpoint and returns the ranked
// label scores.
func (c *httpClassifier) Classify(ctx context.Context, text string) ([]models.LabelScore, error) {
	log := logger.FromContext(ctx)

	var result classifyResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(classifyRequest{
			Inputs: text,
			Parameters: classifyParameters{
				CandidateLabels: models.CandidateLabels(),
			},
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		log.Warn().Err(err).Str("func", "*httpClassifier.Classify").Msg("classification request failed")
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Warn().
			Str("func", "*httpClassifier.Classify").
			Int("status", resp.StatusCode()).
			Msg("classification endpoint returned unexpected status")
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	if len(result.Labels) == 0 || len(result.Labels) != len(result.Scores) {
		return nil, ErrMalformedResponse
	}

	scores := make([]models.LabelScore, 0, len(result.Labels))
	for i, label := range result.Labels {
		scores = append(scores, models.LabelScore{
			Label: label,
			Score: result.Scores[i],
		})
	}

	return scores, nil
}
