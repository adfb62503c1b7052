// internal/benchmark/series/peers.go
package series

import (
	"fmt"
	"math/rand/v2"

	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/models"
)

// Peer is one point on the competitive positioning map.
type Peer struct {
	Name         string  `json:"name"`
	ARRGrowth    float64 `json:"arrGrowth"`
	NetRetention float64 `json:"netRetention"`
	FCFMargin    float64 `json:"fcfMargin"`
	MagicNumber  float64 `json:"magicNumber"`
	ARRPerFTE    float64 `json:"arrPerFte"`
	GrossMargin  float64 `json:"grossMargin"`
	BurnMultiple float64 `json:"burnMultiple"`
	IsCompany    bool    `json:"isCompany,omitempty"`
}

// Axis describes a metric that can be plotted on the map.
type Axis struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Unit           string     `json:"unit"`
	Domain         [2]float64 `json:"domain"`
	Divider        float64    `json:"divider,omitempty"`
	HigherIsBetter bool       `json:"higherIsBetter"`
}

type Quadrants struct {
	TopRight    string `json:"topRight"`
	TopLeft     string `json:"topLeft"`
	BottomRight string `json:"bottomRight"`
	BottomLeft  string `json:"bottomLeft"`
}

type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositioningMap is the full scatter plot payload.
type PositioningMap struct {
	X            Axis      `json:"xAxis"`
	Y            Axis      `json:"yAxis"`
	Peers        []Peer    `json:"peers"`
	Company      Peer      `json:"company"`
	Quadrants    Quadrants `json:"quadrants"`
	RuleOf40Line []XY      `json:"ruleOf40Line"`
}

// Axes lists the plottable metrics. Only burn multiple is lower-is-better.
func Axes() []Axis {
	return []Axis{
		{ID: "arrGrowth", Name: "ARR Growth", Unit: "%", Domain: [2]float64{0, 200}, HigherIsBetter: true},
		{ID: "netRetention", Name: "Net Retention", Unit: "%", Domain: [2]float64{50, 150}, HigherIsBetter: true},
		{ID: "fcfMargin", Name: "FCF Margin", Unit: "%", Domain: [2]float64{-100, 50}, HigherIsBetter: true},
		{ID: "magicNumber", Name: "Magic Number", Unit: "x", Domain: [2]float64{0, 3}, HigherIsBetter: true},
		{ID: "arrPerFte", Name: "ARR per FTE", Unit: "K", Domain: [2]float64{0, 350}, Divider: 1000, HigherIsBetter: true},
		{ID: "grossMargin", Name: "Gross Margin", Unit: "%", Domain: [2]float64{40, 100}, HigherIsBetter: true},
		{ID: "burnMultiple", Name: "Burn Multiple", Unit: "x", Domain: [2]float64{0, 5}},
	}
}

// FindAxis resolves an axis id, falling back to ARR growth.
func FindAxis(id string) (Axis, bool) {
	axes := Axes()
	for _, a := range axes {
		if a.ID == id {
			return a, true
		}
	}
	return axes[0], false
}

// Value returns the peer's value for an axis id.
func (p Peer) Value(id string) (float64, bool) {
	switch id {
	case "arrGrowth":
		return p.ARRGrowth, true
	case "netRetention":
		return p.NetRetention, true
	case "fcfMargin":
		return p.FCFMargin, true
	case "magicNumber":
		return p.MagicNumber, true
	case "arrPerFte":
		return p.ARRPerFTE, true
	case "grossMargin":
		return p.GrossMargin, true
	case "burnMultiple":
		return p.BurnMultiple, true
	}
	return 0, false
}

type archetype struct {
	name string
	Peer
}

// jitter draws a factor in [lo, lo+width).
func jitter(r *rand.Rand, lo, width float64) float64 {
	return lo + r.Float64()*width
}

// archetypes derives the five peer profiles from the company. The similar
// profile draws its own per-metric jitter.
func archetypes(m models.CompanyMetrics, r *rand.Rand) []archetype {
	return []archetype{
		{name: "High-Growth Focus", Peer: Peer{
			ARRGrowth: m.ARRGrowth * 1.3, NetRetention: m.NetRetention * 1.1, FCFMargin: m.FCFMargin - 15,
			MagicNumber: m.MagicNumber * 0.9, ARRPerFTE: m.ARRPerFTE * 0.85, GrossMargin: m.GrossMargin - 5,
			BurnMultiple: m.BurnMultiple * 1.3,
		}},
		{name: "Balanced Growth", Peer: Peer{
			ARRGrowth: m.ARRGrowth * 0.9, NetRetention: m.NetRetention * 1.05, FCFMargin: m.FCFMargin + 10,
			MagicNumber: m.MagicNumber * 1.1, ARRPerFTE: m.ARRPerFTE * 1.1, GrossMargin: m.GrossMargin + 3,
			BurnMultiple: m.BurnMultiple * 0.8,
		}},
		{name: "Efficiency Focus", Peer: Peer{
			ARRGrowth: m.ARRGrowth * 0.7, NetRetention: m.NetRetention * 0.95, FCFMargin: m.FCFMargin + 25,
			MagicNumber: m.MagicNumber * 1.3, ARRPerFTE: m.ARRPerFTE * 1.3, GrossMargin: m.GrossMargin + 7,
			BurnMultiple: m.BurnMultiple * 0.6,
		}},
		{name: "Retention Focus", Peer: Peer{
			ARRGrowth: m.ARRGrowth * 0.85, NetRetention: m.NetRetention * 1.2, FCFMargin: m.FCFMargin + 5,
			MagicNumber: m.MagicNumber * 1.15, ARRPerFTE: m.ARRPerFTE * 1.05, GrossMargin: m.GrossMargin + 2,
			BurnMultiple: m.BurnMultiple * 0.9,
		}},
		{name: "Similar Profile", Peer: Peer{
			ARRGrowth:    m.ARRGrowth * jitter(r, 0.9, 0.2),
			NetRetention: m.NetRetention * jitter(r, 0.95, 0.1),
			FCFMargin:    m.FCFMargin * jitter(r, 0.9, 0.2),
			MagicNumber:  m.MagicNumber * jitter(r, 0.9, 0.2),
			ARRPerFTE:    m.ARRPerFTE * jitter(r, 0.9, 0.2),
			GrossMargin:  m.GrossMargin * jitter(r, 0.95, 0.1),
			BurnMultiple: m.BurnMultiple * jitter(r, 0.9, 0.2),
		}},
	}
}

// Peers generates the synthetic peer set. All randomness comes from r, so a
// fixed seed reproduces the same peers.
func Peers(m models.CompanyMetrics, r *rand.Rand) []Peer {
	types := archetypes(m, r)
	out := make([]Peer, 0, len(types))
	for i, a := range types {
		f := jitter(r, 0.9, 0.2)
		out = append(out, Peer{
			Name:         fmt.Sprintf("Peer %d (%s)", i+1, a.name),
			ARRGrowth:    calculator.Round(a.ARRGrowth*f, 0),
			NetRetention: calculator.Round(a.NetRetention*f, 0),
			FCFMargin:    calculator.Round(a.FCFMargin*f, 0),
			MagicNumber:  calculator.Round(a.MagicNumber*f, 1),
			ARRPerFTE:    calculator.Round(a.ARRPerFTE*f, 0),
			GrossMargin:  calculator.Round(a.GrossMargin*f, 0),
			BurnMultiple: calculator.Round(a.BurnMultiple*f, 1),
		})
	}
	return out
}

// CompanyPoint is the company itself as a map point.
func CompanyPoint(m models.CompanyMetrics) Peer {
	return Peer{
		Name:         "Your Company",
		ARRGrowth:    m.ARRGrowth,
		NetRetention: m.NetRetention,
		FCFMargin:    m.FCFMargin,
		MagicNumber:  m.MagicNumber,
		ARRPerFTE:    m.ARRPerFTE,
		GrossMargin:  m.GrossMargin,
		BurnMultiple: m.BurnMultiple,
		IsCompany:    true,
	}
}

// Positioning builds the map for the chosen axes. Unknown axis ids fall
// back to ARR growth for x and FCF margin for y.
func Positioning(m models.CompanyMetrics, xID, yID string, r *rand.Rand) PositioningMap {
	x, ok := FindAxis(xID)
	if !ok {
		x, _ = FindAxis("arrGrowth")
	}
	y, ok := FindAxis(yID)
	if !ok {
		y, _ = FindAxis("fcfMargin")
	}

	pm := PositioningMap{
		X:            x,
		Y:            y,
		Peers:        Peers(m, r),
		Company:      CompanyPoint(m),
		Quadrants:    quadrantsFor(x.ID, y.ID),
		RuleOf40Line: []XY{},
	}
	if x.ID == "arrGrowth" && y.ID == "fcfMargin" {
		pm.RuleOf40Line = []XY{{X: 0, Y: 40}, {X: 40, Y: 0}}
	}
	return pm
}

func quadrantsFor(x, y string) Quadrants {
	switch {
	case x == "arrGrowth" && y == "fcfMargin":
		return Quadrants{
			TopRight:    "High Growth & Profitable",
			TopLeft:     "Efficient but Slower Growth",
			BottomRight: "High Growth but Unprofitable",
			BottomLeft:  "Challenged Position",
		}
	case x == "arrGrowth" && y == "netRetention":
		return Quadrants{
			TopRight:    "Strong Growth & Retention",
			TopLeft:     "Strong Retention, Lower Growth",
			BottomRight: "High Growth but Retention Issues",
			BottomLeft:  "Challenging Position",
		}
	case x == "magicNumber" && y == "burnMultiple":
		return Quadrants{
			TopRight:    "Inefficient Capital Usage",
			TopLeft:     "Sales Efficient but Capital Inefficient",
			BottomRight: "Sales Inefficient but Capital Efficient",
			BottomLeft:  "Capital & Sales Efficient",
		}
	default:
		return Quadrants{
			TopRight:    "Leading Position",
			TopLeft:     "Strong in Y-axis",
			BottomRight: "Strong in X-axis",
			BottomLeft:  "Lagging Position",
		}
	}
}
