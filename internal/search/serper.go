package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sales-assistant/internal/model"
)

const defaultBaseURL = "https://google.serper.dev"

// Client calls the Serper shopping endpoint. An empty result slice with a
// nil error means the search simply found nothing; failures come back as
// errors and the caller decides what to do. No retries here.
type Client struct {
	apiKey   string
	baseURL  string
	location string
	gl       string
	http     *http.Client
}

func NewClient(apiKey, baseURL, location, gl string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		location: location,
		gl:       gl,
		http:     &http.Client{},
	}
}

type shoppingRequest struct {
	Q        string `json:"q"`
	Location string `json:"location,omitempty"`
	GL       string `json:"gl,omitempty"`
}

type shoppingResponse struct {
	Shopping []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
		Price string `json:"price"`
	} `json:"shopping"`
}

func (c *Client) Search(ctx context.Context, query string) ([]model.Product, error) {
	body, err := json.Marshal(shoppingRequest{Q: query, Location: c.location, GL: c.gl})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shopping", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search API status %d: %s", resp.StatusCode, string(b))
	}

	var sr shoppingResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	products := make([]model.Product, 0, len(sr.Shopping))
	for _, item := range sr.Shopping {
		products = append(products, model.Product{
			Title: item.Title,
			Link:  item.Link,
			Price: item.Price,
		})
	}
	return products, nil
}
