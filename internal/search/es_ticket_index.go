package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

type esTicketIndex struct {
	client *elasticsearch.Client
	index  string
}

// NewESTicketIndex creates a new Elasticsearch-based ticket index.
func NewESTicketIndex(client *elasticsearch.Client, index string) TicketIndex {
	return &esTicketIndex{
		client: client,
		index:  index,
	}
}

func (r *esTicketIndex) Index(ctx context.Context, doc TicketDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(data),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(strconv.FormatInt(doc.ID, 10)),
	)
	if err != nil {
		return fmt.Errorf("failed to index ticket: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch error: %s", res.String())
	}
	return nil
}

func (r *esTicketIndex) Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	body := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"identifier", "title", "description"},
			},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(data)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var result esResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	hits := make([]domain.TicketSearchResult, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var ticket domain.TicketSearchResult
		if err := json.Unmarshal(hit.Source, &ticket); err != nil {
			continue
		}
		hits = append(hits, ticket)
	}

	return &domain.SearchResult{
		Query:       query,
		ResultCount: result.Hits.Total.Value,
		TimeTook:    result.Took,
		Results:     hits,
	}, nil
}

// esResponse is the generic Elasticsearch search response structure.
type esResponse struct {
	Took int `json:"took"`
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}
