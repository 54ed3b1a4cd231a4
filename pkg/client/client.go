package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/gamingleaderboard/loadgen/pkg/contracts"
	"github.com/gamingleaderboard/loadgen/pkg/metrics"
	"github.com/gamingleaderboard/loadgen/pkg/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	scoreMin = 100
	scoreMax = 10000
)

// Client issues requests against the leaderboard API.
//
// Every method follows the same contract: it never returns an error, it
// always returns a printable status line, and it records exactly one latency
// sample once the HTTP round trip has started. The timer starts before the
// request is sent, so a transport failure records the time to the failure
// and a non-200 response records the full round trip.
type Client struct {
	baseURL    string
	httpClient *http.Client
	recorder   *stats.Recorder
}

// New creates a Client for the API at baseURL. Every request uses the given
// timeout; latency samples go to rec.
func New(baseURL string, timeout time.Duration, rec *stats.Recorder) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		recorder:   rec,
	}
}

// BaseURL returns the target API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitScore posts a random score in [100,10000] for userID.
func (c *Client) SubmitScore(ctx context.Context, userID int) string {
	score := scoreMin + rand.Intn(scoreMax-scoreMin+1)
	payload, err := json.Marshal(contracts.SubmitRequest{UserID: userID, Score: score})
	if err != nil {
		return fmt.Sprintf("Exception submitting score: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submit", bytes.NewReader(payload))
	if err != nil {
		return fmt.Sprintf("Exception submitting score: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, _, elapsed, err := c.do(stats.OpSubmit, req)
	if err != nil {
		return fmt.Sprintf("Exception submitting score: %v", err)
	}
	if status != http.StatusOK {
		return fmt.Sprintf("Error submitting score for user %d: %d", userID, status)
	}
	return fmt.Sprintf("Score submitted for user %d: %d points (%.2fms)", userID, score, elapsed)
}

// TopPlayers fetches the top-players list and reports which source served it.
func (c *Client) TopPlayers(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/top", nil)
	if err != nil {
		return fmt.Sprintf("Exception fetching top players: %v", err)
	}

	status, body, elapsed, err := c.do(stats.OpTop, req)
	if err != nil {
		return fmt.Sprintf("Exception fetching top players: %v", err)
	}
	if status != http.StatusOK {
		return fmt.Sprintf("Error fetching top players: %d", status)
	}
	var top contracts.TopResponse
	if err := json.Unmarshal(body, &top); err != nil {
		return fmt.Sprintf("Exception fetching top players: %v", err)
	}
	source := top.Source
	if source == "" {
		source = "unknown"
	}
	return fmt.Sprintf("Top players fetched from %s (%.2fms)", source, elapsed)
}

// UserRank fetches the rank of userID.
func (c *Client) UserRank(ctx context.Context, userID int) string {
	url := fmt.Sprintf("%s/rank/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Sprintf("Exception fetching rank: %v", err)
	}

	status, body, elapsed, err := c.do(stats.OpRank, req)
	if err != nil {
		return fmt.Sprintf("Exception fetching rank: %v", err)
	}
	if status != http.StatusOK {
		return fmt.Sprintf("Error fetching rank for user %d: %d", userID, status)
	}
	var rr contracts.RankResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return fmt.Sprintf("Exception fetching rank: %v", err)
	}
	rank := "N/A"
	if rr.Data != nil && rr.Data.Rank != nil {
		rank = strconv.Itoa(*rr.Data.Rank)
	}
	return fmt.Sprintf("User %d rank: %s (%.2fms)", userID, rank, elapsed)
}

// do runs one round trip. It records a latency sample for op whether the
// call succeeded, failed in transport, or came back non-200; the sample
// covers the time from just before the request to the response body being
// fully read (or the failure).
func (c *Client) do(op stats.Operation, req *http.Request) (int, []byte, float64, error) {
	metrics.IncInFlight()
	defer metrics.DecInFlight()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		elapsed := msSince(start)
		c.recorder.Record(op, elapsed)
		metrics.ObserveRequest(string(op), metrics.OutcomeError, elapsed)
		return 0, nil, elapsed, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Printf("close response body: %v", cerr)
		}
	}()

	body, readErr := io.ReadAll(resp.Body)
	elapsed := msSince(start)
	c.recorder.Record(op, elapsed)

	outcome := metrics.OutcomeOK
	switch {
	case readErr != nil:
		outcome = metrics.OutcomeError
	case resp.StatusCode != http.StatusOK:
		outcome = metrics.OutcomeHTTPError
	}
	metrics.ObserveRequest(string(op), outcome, elapsed)

	if readErr != nil {
		return resp.StatusCode, nil, elapsed, readErr
	}
	return resp.StatusCode, body, elapsed, nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
