package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// MovieMetadata is the poster/overview data attached to a thumbs-round movie.
type MovieMetadata struct {
	TMDBID     int64  `json:"tmdb_id"`
	Title      string `json:"title"`
	Overview   string `json:"overview,omitempty"`
	PosterPath string `json:"poster_path,omitempty"`
	ReleaseUTC string `json:"release_date,omitempty"`
}

// MetadataService looks up movie metadata from TMDB. Lookups are decoration
// only: every failure path returns nil metadata so a TMDB outage can never
// take a game page down with it.
type MetadataService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	enabled bool
}

// NewMetadataService creates a new metadata service. An empty API key
// disables it; lookups then return no metadata.
func NewMetadataService(apiKey, baseURL string) *MetadataService {
	if apiKey == "" {
		log.Println("Metadata service disabled: TMDB_API_KEY not configured")
	}
	return &MetadataService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		enabled: apiKey != "",
	}
}

// tmdbMovie mirrors the fields we use from TMDB's movie payloads
type tmdbMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

type tmdbSearchResponse struct {
	Results []tmdbMovie `json:"results"`
}

// LookupByID fetches metadata for a known TMDB movie id. Returns nil when
// the service is disabled or the lookup fails for any reason.
func (s *MetadataService) LookupByID(ctx context.Context, id int64) *MovieMetadata {
	if !s.enabled {
		return nil
	}

	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s", s.baseURL, id, url.QueryEscape(s.apiKey))
	var movie tmdbMovie
	if err := s.getJSON(ctx, endpoint, &movie); err != nil {
		log.Printf("TMDB lookup failed for id %d: %v", id, err)
		return nil
	}
	return toMetadata(movie)
}

// LookupByTitle searches TMDB by title and release year and returns the best
// match, or nil when nothing matches or the lookup fails.
func (s *MetadataService) LookupByTitle(ctx context.Context, title string, year int) *MovieMetadata {
	if !s.enabled || title == "" {
		return nil
	}

	query := url.Values{}
	query.Set("api_key", s.apiKey)
	query.Set("query", title)
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	endpoint := s.baseURL + "/search/movie?" + query.Encode()

	var resp tmdbSearchResponse
	if err := s.getJSON(ctx, endpoint, &resp); err != nil {
		log.Printf("TMDB search failed for %q (%d): %v", title, year, err)
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}
	return toMetadata(resp.Results[0])
}

func (s *MetadataService) getJSON(ctx context.Context, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func toMetadata(movie tmdbMovie) *MovieMetadata {
	return &MovieMetadata{
		TMDBID:     movie.ID,
		Title:      movie.Title,
		Overview:   movie.Overview,
		PosterPath: movie.PosterPath,
		ReleaseUTC: movie.ReleaseDate,
	}
}
