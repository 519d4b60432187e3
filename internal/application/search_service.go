package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexchen/identity-vault/internal/domain/entity"
)

// SearchService mirrors processed progress updates into Elasticsearch
// and serves full-text search over their raw text. Indexing is
// best-effort; Postgres stays the source of truth.
type SearchService struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

var _ UpdateIndexer = (*SearchService)(nil)

func (s *SearchService) IndexUpdate(ctx context.Context, p *entity.ProgressUpdate) error {
	if s.ES == nil || s.Index == "" {
		return nil
	}
	doc := map[string]any{
		"id":               p.ID.String(),
		"user_id":          p.UserID.String(),
		"raw_text":         p.RawText,
		"education_count":  len(p.Extracted.Education),
		"experience_count": len(p.Extracted.Experience),
		"project_count":    len(p.Extracted.Projects),
		"skill_count":      len(p.Extracted.Skills),
		"award_count":      len(p.Extracted.Awards),
		"created_at":       p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.Index, DocumentID: p.ID.String(), Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("update_id", p.ID).Warn("es index response error")
	}
	return nil
}

// SearchHit is one search result row.
type SearchHit struct {
	ID      string  `json:"id"`
	RawText string  `json:"rawText"`
	Score   float64 `json:"score"`
}

// Search runs a match query over raw_text for one user's updates.
func (s *SearchService) Search(ctx context.Context, userID uuid.UUID, q string, size int) ([]SearchHit, error) {
	if s.ES == nil || s.Index == "" {
		return []SearchHit{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"match": map[string]any{"raw_text": q},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID.String()},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		// A missing index just means nothing was indexed yet.
		if res.StatusCode == 404 {
			return []SearchHit{}, nil
		}
		return nil, errESResponse(res.Status())
	}

	var body struct {
		Hits struct {
			Hits []struct {
				Score  float64 `json:"_score"`
				Source struct {
					ID      string `json:"id"`
					RawText string `json:"raw_text"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(body.Hits.Hits))
	for _, h := range body.Hits.Hits {
		hits = append(hits, SearchHit{ID: h.Source.ID, RawText: h.Source.RawText, Score: h.Score})
	}
	return hits, nil
}

type esResponseError string

func (e esResponseError) Error() string { return "elasticsearch: " + string(e) }

func errESResponse(status string) error { return esResponseError(status) }
