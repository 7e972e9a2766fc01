package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/wanderplan/wanderplan/app/metrics"
	"github.com/wanderplan/wanderplan/config"
)

// Fixed substitutes used whenever the photo provider is unreachable or
// errors out. The plan page must never render without images.
var placeholderImages = []string{
	"https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&q=80",
	"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800&q=80",
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// ImageServiceImpl looks up destination photos on Unsplash.
type ImageServiceImpl struct {
	client  *http.Client
	baseURL string
	apiKey  string
	perPage int
	timeout time.Duration
	logger  *slog.Logger
}

func NewImageService(cfg *config.Config, logger *slog.Logger) *ImageServiceImpl {
	return &ImageServiceImpl{
		client:  &http.Client{},
		baseURL: cfg.Unsplash.BaseURL,
		apiKey:  cfg.UnsplashAPIKey,
		perPage: cfg.Unsplash.PerPage,
		timeout: cfg.Unsplash.Timeout,
		logger:  logger,
	}
}

// CityImages returns up to perPage landscape photo URLs for the city. It
// never fails: network errors, non-2xx responses and bad payloads all
// collapse to the fixed placeholder list. An empty result from a healthy
// provider is passed through as-is.
func (s *ImageServiceImpl) CityImages(ctx context.Context, city string) []string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	l := s.logger.With(slog.String("service", "images"), slog.String("city", city))

	query := url.Values{}
	query.Set("query", city+" travel landscape")
	query.Set("per_page", fmt.Sprintf("%d", s.perPage))
	query.Set("orientation", "landscape")
	query.Set("client_id", s.apiKey)
	endpoint := fmt.Sprintf("%s/search/photos?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		l.ErrorContext(ctx, "Failed to build photo search request", slog.Any("error", err))
		return s.placeholders(ctx)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		l.WarnContext(ctx, "Photo search request failed", slog.Any("error", err))
		return s.placeholders(ctx)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.WarnContext(ctx, "Photo search returned non-2xx status", slog.Int("status", resp.StatusCode))
		return s.placeholders(ctx)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		l.WarnContext(ctx, "Failed to decode photo search response", slog.Any("error", err))
		return s.placeholders(ctx)
	}

	urls := make([]string, 0, s.perPage)
	for _, result := range payload.Results {
		// Providers are not trusted to honor per_page; the result set is
		// capped here so the page never renders more than perPage photos.
		if len(urls) == s.perPage {
			break
		}
		if result.URLs.Regular != "" {
			urls = append(urls, result.URLs.Regular)
		}
	}
	return urls
}

func (s *ImageServiceImpl) placeholders(ctx context.Context) []string {
	metrics.Get().ImageLookupErrorsTotal.Add(ctx, 1)
	return append([]string(nil), placeholderImages...)
}
