// internal/workers/reporting/publish-benchmark-report/handler_test.go
package publishbenchmarkreport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/database"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyPrefix = "benchmark:report:"

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	mr      *miniredis.Miniredis
	store   *database.ReportStore
	indexer *database.ReportIndexer
	indexed *[]string
}

func newFixture(t *testing.T, esStatus int) *fixture {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		paths = append(paths, r.URL.Path)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(esStatus)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}, MaxRetries: 1})
	require.NoError(t, err)

	return &fixture{
		mr:      mr,
		store:   database.NewReportStore(rdb, keyPrefix, time.Hour),
		indexer: database.NewReportIndexer(es, "benchmark-reports"),
		indexed: &paths,
	}
}

func testConfig() *Config {
	cfg := LoadConfig(42)
	cfg.Now = func() time.Time { return fixedNow }
	return cfg
}

func defaultInput() *Input {
	m := models.DefaultCompanyMetrics()
	f := models.DefaultFundingProfile()
	return &Input{CompanyName: "Acme Analytics", Company: &m, Funding: &f, CurrentYear: 2025}
}

func TestHandler_Execute_PublishesAndIndexes(t *testing.T) {
	fx := newFixture(t, http.StatusCreated)
	h := NewHandler(testConfig(), benchmark.NewEngine(), fx.store, fx.indexer, logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), defaultInput())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ReportID)
	assert.Equal(t, "$10M-$25M", out.Bucket)
	assert.Equal(t, 53, out.IPOReadinessScore)
	assert.Equal(t, 95, out.ResilienceScore)
	assert.Equal(t, fixedNow.Add(time.Hour), out.ExpiresAt)
	assert.True(t, out.Indexed)

	require.True(t, fx.mr.Exists(keyPrefix+out.ReportID))
	assert.Equal(t, time.Hour, fx.mr.TTL(keyPrefix+out.ReportID))

	raw, err := fx.mr.Get(keyPrefix + out.ReportID)
	require.NoError(t, err)
	var stored StoredReport
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, out.ReportID, stored.Envelope.ReportID)
	assert.Equal(t, "Acme Analytics", stored.Envelope.CompanyName)
	require.NotNil(t, stored.Report.Funding)
	assert.NotNil(t, stored.Report.Series.Peers)
	assert.Len(t, stored.Report.Series.Scenarios, 3)

	assert.Equal(t, []string{"/benchmark-reports/_doc/" + out.ReportID}, *fx.indexed)
}

func TestHandler_Execute_SeedMakesPeersReproducible(t *testing.T) {
	fx := newFixture(t, http.StatusCreated)
	h := NewHandler(testConfig(), benchmark.NewEngine(), fx.store, nil, logger.NewNoOpLogger())

	load := func(id string) StoredReport {
		raw, err := fx.mr.Get(keyPrefix + id)
		require.NoError(t, err)
		var s StoredReport
		require.NoError(t, json.Unmarshal([]byte(raw), &s))
		return s
	}

	a, err := h.Execute(context.Background(), defaultInput())
	require.NoError(t, err)
	b, err := h.Execute(context.Background(), defaultInput())
	require.NoError(t, err)

	assert.NotEqual(t, a.ReportID, b.ReportID)
	assert.False(t, a.Indexed)
	assert.Equal(t, load(a.ReportID).Report.Series.Peers.Peers, load(b.ReportID).Report.Series.Peers.Peers)
}

func TestHandler_Execute_IndexFailure(t *testing.T) {
	tests := []struct {
		name         string
		requireIndex bool
		wantErr      bool
	}{
		{name: "best effort", requireIndex: false, wantErr: false},
		{name: "required", requireIndex: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t, http.StatusBadRequest)
			cfg := testConfig()
			cfg.RequireIndex = tt.requireIndex
			h := NewHandler(cfg, benchmark.NewEngine(), fx.store, fx.indexer, logger.NewNoOpLogger())

			out, err := h.Execute(context.Background(), defaultInput())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeReportIndexFailed, errors.Normalize(err).Code)
				assert.Empty(t, fx.mr.Keys(), "unindexed report must not stay in the store")
				return
			}
			require.NoError(t, err)
			assert.False(t, out.Indexed)
			assert.True(t, fx.mr.Exists(keyPrefix+out.ReportID))
		})
	}
}

func TestHandler_Execute_StoreFailure(t *testing.T) {
	fx := newFixture(t, http.StatusCreated)
	fx.mr.Close()
	h := NewHandler(testConfig(), benchmark.NewEngine(), fx.store, fx.indexer, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), defaultInput())
	require.Error(t, err)

	stdErr := errors.Normalize(err)
	assert.Equal(t, errors.ErrCodeReportStoreFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Empty(t, *fx.indexed)
}

func TestHandler_Execute_YearFromConfigClock(t *testing.T) {
	fx := newFixture(t, http.StatusCreated)
	h := NewHandler(testConfig(), benchmark.NewEngine(), fx.store, nil, logger.NewNoOpLogger())

	in := defaultInput()
	in.CurrentYear = 0
	in.Funding.FoundingYear = 2015
	out, err := h.Execute(context.Background(), in)
	require.NoError(t, err)

	raw, err := fx.mr.Get(keyPrefix + out.ReportID)
	require.NoError(t, err)
	var stored StoredReport
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.NotNil(t, stored.Report.Funding)
	assert.Equal(t, fixedNow.Year()-2015, stored.Report.Funding.Metrics.YearsFromFounding)
}

func TestHandler_Execute_MissingCompany(t *testing.T) {
	fx := newFixture(t, http.StatusCreated)
	h := NewHandler(testConfig(), benchmark.NewEngine(), fx.store, fx.indexer, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), &Input{CompanyName: "Acme"})
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.Normalize(err).Code)
}
