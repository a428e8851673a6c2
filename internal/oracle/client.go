// Package oracle supplies match results and generated players, either
// from a remote oracle service or from the built-in simulator.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"touchline/internal/career"
)

// Client talks to a remote oracle service over JSON HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type candidatesRequest struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

type candidatesResponse struct {
	Players []career.Player `json:"players"`
}

type prospectRequest struct {
	AcademyLevel int `json:"academy_level"`
}

func (c *Client) SimulateMatch(ctx context.Context, req career.MatchRequest) (career.MatchResult, error) {
	var out career.MatchResult
	if err := c.postJSON(ctx, "/v1/simulate", req, &out); err != nil {
		return career.MatchResult{}, err
	}
	if out.HomeTeam == "" || out.AwayTeam == "" {
		return career.MatchResult{}, fmt.Errorf("oracle returned incomplete result")
	}
	return out, nil
}

func (c *Client) TransferCandidates(ctx context.Context, count int, averageRating float64) ([]career.Player, error) {
	var out candidatesResponse
	err := c.postJSON(ctx, "/v1/candidates", candidatesRequest{Count: count, AverageRating: averageRating}, &out)
	if err != nil {
		return nil, err
	}
	return out.Players, nil
}

func (c *Client) AcademyProspect(ctx context.Context, academyLevel int) (career.Player, error) {
	var out career.Player
	if err := c.postJSON(ctx, "/v1/prospect", prospectRequest{AcademyLevel: academyLevel}, &out); err != nil {
		return career.Player{}, err
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("oracle request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("oracle status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode oracle response: %w", err)
	}
	return nil
}
