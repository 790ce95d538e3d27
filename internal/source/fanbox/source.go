package fanbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"post_archiver/internal/domain"
)

const (
	Service = "fanbox"
	Version = 2

	sessionCookie = "FANBOXSESSID"
	origin        = "https://fanbox.cc"
)

// Config holds fanbox client configuration.
type Config struct {
	BaseURL        string
	ProfileURL     string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the fanbox listing and creator profile endpoints.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	profileURL     string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new fanbox client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		profileURL:     cfg.ProfileURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", Service),
	}
}

// ServiceName returns the platform identifier.
func (c *Client) ServiceName() string {
	return Service
}

// SchemaVersion returns the post schema version this platform produces.
func (c *Client) SchemaVersion() int {
	return Version
}

// FirstPageURL returns the listing endpoint for the start of a crawl.
func (c *Client) FirstPageURL() string {
	return fmt.Sprintf("%s/post.listSupporting?limit=%d", c.baseURL, c.pageSize)
}

// FetchPage fetches one listing page, retrying transient failures with
// bounded exponential backoff.
func (c *Client) FetchPage(ctx context.Context, sessionKey, url string) (*domain.Page, error) {
	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doListing(ctx, sessionKey, url)
		if err == nil {
			return c.transform(resp), nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("listing request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doListing(ctx context.Context, sessionKey, url string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cookie", sessionCookie+"="+sessionKey)
	req.Header.Set("Origin", origin)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

// CreatorName resolves a creator's display name via the public profile
// endpoint. No retry: the resolver treats failures as per-creator errors.
func (c *Client) CreatorName(ctx context.Context, creatorID string) (string, error) {
	url := fmt.Sprintf("%s?userId=%s", c.profileURL, creatorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var profile CreatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	name := profile.Body.Creator.User.Name
	if name == "" {
		return "", fmt.Errorf("profile for %s has no name", creatorID)
	}
	return name, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(resp *APIResponse) *domain.Page {
	page := &domain.Page{
		Items:   make([]domain.PostSummary, 0, len(resp.Body.Items)),
		NextURL: resp.Body.NextURL,
	}

	for _, item := range resp.Body.Items {
		summary := domain.PostSummary{
			ID:        item.ID,
			Title:     item.Title,
			CreatorID: item.User.UserID,
			Type:      domain.PostType(item.Type),
		}

		if item.PublishedDatetime != "" {
			published, err := time.Parse(time.RFC3339, item.PublishedDatetime)
			if err != nil {
				c.logger.Warn("failed to parse publish date",
					"post_id", item.ID,
					"date", item.PublishedDatetime,
				)
			} else {
				summary.PublishedAt = &published
			}
		}

		if item.Body != nil {
			summary.Body = transformBody(item.Body)
		}

		page.Items = append(page.Items, summary)
	}

	return page
}

func transformBody(b *APIBody) *domain.Body {
	body := &domain.Body{
		Text: b.Text,
		HTML: b.HTML,
	}

	for _, img := range b.Images {
		body.Images = append(body.Images, imageInfo(img))
	}
	for _, f := range b.Files {
		body.Files = append(body.Files, fileInfo(f))
	}
	for _, blk := range b.Blocks {
		body.Blocks = append(body.Blocks, domain.Block{
			Type:    domain.BlockType(blk.Type),
			Text:    blk.Text,
			ImageID: blk.ImageID,
			FileID:  blk.FileID,
			EmbedID: blk.EmbedID,
		})
	}

	if len(b.ImageMap) > 0 {
		body.ImageMap = make(map[string]domain.FileInfo, len(b.ImageMap))
		for id, img := range b.ImageMap {
			body.ImageMap[id] = imageInfo(img)
		}
	}
	if len(b.FileMap) > 0 {
		body.FileMap = make(map[string]domain.FileInfo, len(b.FileMap))
		for id, f := range b.FileMap {
			body.FileMap[id] = fileInfo(f)
		}
	}
	if len(b.EmbedMap) > 0 {
		body.EmbedMap = make(map[string]domain.EmbedInfo, len(b.EmbedMap))
		for id, e := range b.EmbedMap {
			body.EmbedMap[id] = domain.EmbedInfo{
				ID:        e.ID,
				Provider:  domain.EmbedProvider(e.ServiceProvider),
				ContentID: e.ContentID,
			}
		}
	}

	return body
}

func imageInfo(img APIImage) domain.FileInfo {
	return domain.FileInfo{
		ID:        img.ID,
		Extension: img.Extension,
		URL:       img.OriginalURL,
	}
}

func fileInfo(f APIFile) domain.FileInfo {
	return domain.FileInfo{
		ID:        f.ID,
		Name:      f.Name,
		Extension: f.Extension,
		URL:       f.URL,
	}
}
