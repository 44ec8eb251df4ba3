package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/tourguard/tourguard-backend/internal/models"
)

// Tourists runs a fuzzy multi_match over the tourist index and returns
// the total hit count plus the requested page.
func Tourists(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Tourist, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "passport_number", "nationality"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Tourist `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	tourists := make([]models.Tourist, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		tourists[i] = hit.Source
	}
	return r.Hits.Total.Value, tourists, nil
}

// IndexTourist upserts one tourist document, keyed by its id.
func IndexTourist(ctx context.Context, es *elasticsearch.Client, index string, t models.Tourist) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("search: encode tourist: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithDocumentID(t.ID),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index tourist: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search: index tourist: %s", res.Status())
	}
	return nil
}
