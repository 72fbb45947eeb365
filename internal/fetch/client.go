// Package fetch implements the API Ninjas animals client using gocolly.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/wildpages/wildpages/internal/record"
)

// ErrMissingAPIKey is returned when no API key was configured.
// Set API_NINJAS_KEY (or API_KEY) in the environment, or api.key in config.
var ErrMissingAPIKey = errors.New("api key missing: set API_NINJAS_KEY or api.key")

// Config controls client behavior.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client fetches animal records from the animals endpoint.
type Client struct {
	cfg           Config
	logger        *zap.Logger
	baseCollector *colly.Collector
}

// NewClient builds a Client. The API key is required; there is no
// built-in default.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.URL == "" {
		return nil, errors.New("api url must be set")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}

	c := colly.NewCollector(colly.Async(false))
	c.IgnoreRobotsTxt = true
	c.AllowURLRevisit = true

	return &Client{
		cfg:           cfg,
		logger:        logger,
		baseCollector: c,
	}, nil
}

// Animals fetches the records matching the given animal name.
// A non-2xx response or a non-array body is an error; an empty array is a
// valid, empty result.
func (c *Client) Animals(ctx context.Context, name string) ([]record.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("animal name must be non-empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}

	target, err := c.queryURL(name)
	if err != nil {
		return nil, err
	}

	var (
		body     []byte
		status   int
		fetchErr error
	)

	collector := c.baseCollector.Clone()
	collector.SetRequestTimeout(c.cfg.Timeout)
	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("X-Api-Key", c.cfg.APIKey)
		r.Headers.Set("Accept", "application/json")
	})
	collector.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = err
	})

	start := time.Now()
	visitErr := collector.Visit(target)
	collector.Wait()

	// A synchronous Visit surfaces the failure itself; the OnError hook
	// only contributes the status code it saw. Fold both together.
	if visitErr != nil || fetchErr != nil {
		err := fetchErr
		if err == nil {
			err = visitErr
		}
		if status != 0 {
			return nil, fmt.Errorf("fetch animals %q (status %d): %w", name, status, err)
		}
		return nil, fmt.Errorf("fetch animals %q: %w", name, err)
	}

	c.logger.Debug("Fetched animals",
		zap.String("name", name),
		zap.Int("status", status),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return decodeAnimals(body, name)
}

func (c *Client) queryURL(name string) (string, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("parse api url %s: %w", c.cfg.URL, err)
	}
	q := u.Query()
	q.Set("name", name)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodeAnimals parses the response body, which must be a JSON array of
// record objects. Non-object entries are dropped.
func decodeAnimals(body []byte, name string) ([]record.Record, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode animals response for %q: %w", name, err)
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected animals response for %q: not an array", name)
	}
	recs := make([]record.Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			recs = append(recs, normalizeItem(m))
		}
	}
	return recs, nil
}

// normalizeItem coerces one API item to the expected structure: name
// untouched, taxonomy and characteristics forced to maps, locations forced
// to a trimmed list of strings.
func normalizeItem(item map[string]any) record.Record {
	out := record.Record{"name": item["name"]}

	if taxonomy, ok := item["taxonomy"].(map[string]any); ok {
		out["taxonomy"] = taxonomy
	} else {
		out["taxonomy"] = map[string]any{}
	}

	locations := []any{}
	switch raw := item["locations"].(type) {
	case []any:
		for _, loc := range raw {
			if s := strings.TrimSpace(fmt.Sprint(loc)); s != "" {
				locations = append(locations, s)
			}
		}
	case string:
		if s := strings.TrimSpace(raw); s != "" {
			locations = append(locations, s)
		}
	}
	out["locations"] = locations

	if characteristics, ok := item["characteristics"].(map[string]any); ok {
		out["characteristics"] = characteristics
	} else {
		out["characteristics"] = map[string]any{}
	}

	return out
}
