// internal/common/database/elasticsearch.go
package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"saas-benchmarks/internal/common/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ElasticsearchClient wraps the Elasticsearch client
type ElasticsearchClient struct {
	Client *elasticsearch.Client
}

func NewElasticsearch(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	addresses := cfg.Addresses
	if len(addresses) == 0 && cfg.URL != "" {
		addresses = []string{cfg.URL}
	}

	esCfg := elasticsearch.Config{Addresses: addresses}
	if cfg.Username != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &ElasticsearchClient{Client: es}, nil
}

func (c *ElasticsearchClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := c.Client.Ping(c.Client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}
	return nil
}

// ReportIndexer writes published report summaries to an index for search.
type ReportIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewReportIndexer(client *elasticsearch.Client, index string) *ReportIndexer {
	return &ReportIndexer{client: client, index: index}
}

func (i *ReportIndexer) Index() string {
	return i.index
}

// Put indexes doc under id, replacing any earlier version.
func (i *ReportIndexer) Put(ctx context.Context, id string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("index %s/%s: %w", i.index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("index %s/%s: %s: %s", i.index, id, res.Status(), bytes.TrimSpace(msg))
	}
	return nil
}

// SearchByBucket returns up to size indexed summaries for an ARR bucket,
// newest first. Hits are decoded into raw JSON.
func (i *ReportIndexer) SearchByBucket(ctx context.Context, bucket string, size int) ([]json.RawMessage, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{"bucket": bucket},
		},
		"sort": []interface{}{
			map[string]interface{}{"publishedAt": map[string]interface{}{"order": "desc"}},
		},
	}
	body, _ := json.Marshal(query)

	req := esapi.SearchRequest{
		Index: []string{i.index},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", i.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", i.index, res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]json.RawMessage, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
