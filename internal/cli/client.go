package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"touchline/internal/career"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Career(ctx context.Context) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/career", nil, &out)
	return out, err
}

func (c *Client) Standings(ctx context.Context, tier int) ([]career.Standing, error) {
	path := "/v1/standings"
	if tier > 0 {
		path = fmt.Sprintf("/v1/standings?tier=%d", tier)
	}
	var out struct {
		Standings []career.Standing `json:"standings"`
	}
	err := c.jsonRequest(ctx, http.MethodGet, path, nil, &out)
	return out.Standings, err
}

func (c *Client) StartMatch(ctx context.Context, speed int) (career.StartMatchOutcome, error) {
	var out career.StartMatchOutcome
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/match/start", map[string]any{
		"speed": speed,
	}, &out)
	return out, err
}

func (c *Client) CancelMatch(ctx context.Context) error {
	return c.jsonRequest(ctx, http.MethodPost, "/v1/match/cancel", nil, nil)
}

func (c *Client) LiveMatch(ctx context.Context) (career.LiveMatch, error) {
	var out career.LiveMatch
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/match/live", nil, &out)
	return out, err
}

func (c *Client) LastMatch(ctx context.Context) (career.MatchResult, error) {
	var out career.MatchResult
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/match/last", nil, &out)
	return out, err
}

func (c *Client) Pledge(ctx context.Context) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/career/pledge", nil, &out)
	return out, err
}

func (c *Client) Resign(ctx context.Context) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/career/resign", nil, &out)
	return out, err
}

func (c *Client) AcceptOffer(ctx context.Context, offerID string) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/career/offers/"+url.PathEscape(offerID)+"/accept", nil, &out)
	return out, err
}

func (c *Client) RenewContract(ctx context.Context, playerID string) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/players/"+url.PathEscape(playerID)+"/renew", nil, &out)
	return out, err
}

func (c *Client) ToggleStarter(ctx context.Context, playerID string) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/players/"+url.PathEscape(playerID)+"/starter", nil, &out)
	return out, err
}

func (c *Client) UpdateTactics(ctx context.Context, formation, mentality, focus string) (career.CareerView, error) {
	body := map[string]any{}
	if formation != "" {
		body["formation"] = formation
	}
	if mentality != "" {
		body["mentality"] = mentality
	}
	if focus != "" {
		body["focus"] = focus
	}
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPut, "/v1/tactics", body, &out)
	return out, err
}

func (c *Client) RefreshTransfers(ctx context.Context) ([]career.Player, error) {
	var out struct {
		Transfers []career.Player `json:"transfers"`
	}
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/transfers/refresh", nil, &out)
	return out.Transfers, err
}

func (c *Client) BuyPlayer(ctx context.Context, playerID string) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/transfers/"+url.PathEscape(playerID)+"/buy", nil, &out)
	return out, err
}

func (c *Client) RecruitProspect(ctx context.Context) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/academy/recruit", nil, &out)
	return out, err
}

func (c *Client) UpgradeAcademy(ctx context.Context) (career.CareerView, error) {
	var out career.CareerView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/academy/upgrade", nil, &out)
	return out, err
}

func (c *Client) Save(ctx context.Context) error {
	return c.jsonRequest(ctx, http.MethodPost, "/v1/save", nil, nil)
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
