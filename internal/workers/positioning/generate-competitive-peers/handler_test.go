// internal/workers/positioning/generate-competitive-peers/handler_test.go
package generatecompetitivepeers

import (
	"context"
	"testing"

	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(v uint64) *uint64 { return &v }

func TestHandler_Execute_SeedIsReproducible(t *testing.T) {
	h := NewHandler(LoadConfig(7), logger.NewTestLogger(t))
	m := models.DefaultCompanyMetrics()

	a, err := h.Execute(context.Background(), &Input{Company: &m, Seed: seed(42)})
	require.NoError(t, err)
	b, err := h.Execute(context.Background(), &Input{Company: &m, Seed: seed(42)})
	require.NoError(t, err)

	assert.Equal(t, uint64(42), a.Seed)
	assert.Equal(t, a.Positioning.Peers, b.Positioning.Peers)
	require.Len(t, a.Positioning.Peers, 5)
	assert.True(t, a.Positioning.Company.IsCompany)
}

func TestHandler_Execute_DefaultSeed(t *testing.T) {
	h := NewHandler(LoadConfig(7), logger.NewTestLogger(t))
	m := models.DefaultCompanyMetrics()

	out, err := h.Execute(context.Background(), &Input{Company: &m})
	require.NoError(t, err)
	pinned, err := h.Execute(context.Background(), &Input{Company: &m, Seed: seed(7)})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), out.Seed)
	assert.Equal(t, pinned.Positioning.Peers, out.Positioning.Peers)
}

func TestHandler_Execute_Axes(t *testing.T) {
	tests := []struct {
		name           string
		input          Input
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "growth vs fcf draws the rule of 40 line",
			input: Input{XAxis: "arrGrowth", YAxis: "fcfMargin"},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, []series.XY{{X: 0, Y: 40}, {X: 40, Y: 0}}, out.Positioning.RuleOf40Line)
				assert.Equal(t, "High Growth & Profitable", out.Positioning.Quadrants.TopRight)
				assert.Empty(t, out.Fallbacks)
			},
		},
		{
			name:  "efficiency axes",
			input: Input{XAxis: "magicNumber", YAxis: "burnMultiple"},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Empty(t, out.Positioning.RuleOf40Line)
				assert.Equal(t, "Capital & Sales Efficient", out.Positioning.Quadrants.BottomLeft)
			},
		},
		{
			name:  "unknown axes fall back",
			input: Input{XAxis: "valuation", YAxis: "headcount"},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "arrGrowth", out.Positioning.X.ID)
				assert.Equal(t, "fcfMargin", out.Positioning.Y.ID)
				assert.Len(t, out.Fallbacks, 2)
			},
		},
	}

	h := NewHandler(LoadConfig(1), logger.NewNoOpLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.DefaultCompanyMetrics()
			tt.input.Company = &m

			out, err := h.Execute(context.Background(), &tt.input)
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestPeersAhead(t *testing.T) {
	x, _ := series.FindAxis("arrGrowth")
	y, _ := series.FindAxis("burnMultiple")
	pm := series.PositioningMap{
		X:       x,
		Y:       y,
		Company: series.Peer{Name: "Your Company", ARRGrowth: 50, BurnMultiple: 1.5},
		Peers: []series.Peer{
			{Name: "fast and lean", ARRGrowth: 60, BurnMultiple: 1.0},
			{Name: "fast but burning", ARRGrowth: 60, BurnMultiple: 2.0},
			{Name: "slow", ARRGrowth: 40, BurnMultiple: 1.0},
		},
	}

	assert.Equal(t, []string{"fast and lean"}, peersAhead(pm))
}

func TestHandler_Execute_MissingCompany(t *testing.T) {
	h := NewHandler(LoadConfig(1), logger.NewNoOpLogger())
	_, err := h.Execute(context.Background(), &Input{})
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.Normalize(err).Code)
}
