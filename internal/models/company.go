// internal/models/company.go
package models

// GrowthMotion is the go-to-market motion selector.
type GrowthMotion string

const (
	MotionSalesLed   GrowthMotion = "Sales-led Growth"
	MotionProductLed GrowthMotion = "Product-led Growth"
	MotionHybrid     GrowthMotion = "Hybrid"
)

// IsProductLed reports whether the motion is product-led.
func (m GrowthMotion) IsProductLed() bool {
	return m == MotionProductLed
}

const (
	SegmentMidMarketEnterprise = "Mid-Market to Enterprise"
	SegmentSMBMidMarket        = "SMB to Mid-Market"
)

// CompanyMetrics is the raw snapshot a user submits. Percentages are in
// percent units (80 means 80%). Nothing here is range-checked; the engine
// substitutes safe values where a formula would otherwise divide by zero.
type CompanyMetrics struct {
	ARRScale              string       `json:"arrScale" yaml:"arrScale"`
	ARRGrowth             float64      `json:"arrGrowth" yaml:"arrGrowth"`
	NetRetention          float64      `json:"netRetention" yaml:"netRetention"`
	FCFMargin             float64      `json:"fcfMargin" yaml:"fcfMargin"`
	MagicNumber           float64      `json:"magicNumber" yaml:"magicNumber"`
	ARRPerFTE             float64      `json:"arrPerFte" yaml:"arrPerFte"`
	SalesMarketingPercent float64      `json:"salesMarketingPercent" yaml:"salesMarketingPercent"`
	RDPercent             float64      `json:"rdPercent" yaml:"rdPercent"`
	GAPercent             float64      `json:"gaPercent" yaml:"gaPercent"`
	GrossMargin           float64      `json:"grossMargin" yaml:"grossMargin"`
	BurnMultiple          float64      `json:"burnMultiple" yaml:"burnMultiple"`
	NewLogoPercent        float64      `json:"newLogoPercent" yaml:"newLogoPercent"`
	ExpansionPercent      float64      `json:"expansionPercent" yaml:"expansionPercent"`
	ChurnRate             float64      `json:"churnRate" yaml:"churnRate"`
	Runway                float64      `json:"runway" yaml:"runway"`
	TargetCustomer        string       `json:"targetCustomer" yaml:"targetCustomer"`
	GrowthMotion          GrowthMotion `json:"growthMotion" yaml:"growthMotion"`
	Industry              string       `json:"industry,omitempty" yaml:"industry,omitempty"`

	// Plan attainment in percent of plan; zero means "not reported".
	ToplineAttainment    float64 `json:"toplineAttainment,omitempty" yaml:"toplineAttainment,omitempty"`
	BottomlineAttainment float64 `json:"bottomlineAttainment,omitempty" yaml:"bottomlineAttainment,omitempty"`
}

// RuleOf40 is growth plus FCF margin.
func (c CompanyMetrics) RuleOf40() float64 {
	return c.ARRGrowth + c.FCFMargin
}

// DefaultCompanyMetrics returns the sample company the dashboard opens with.
func DefaultCompanyMetrics() CompanyMetrics {
	return CompanyMetrics{
		ARRScale:              "$10M-$25M",
		ARRGrowth:             80,
		NetRetention:          110,
		FCFMargin:             -20,
		MagicNumber:           0.8,
		ARRPerFTE:             150000,
		SalesMarketingPercent: 55,
		RDPercent:             30,
		GAPercent:             15,
		GrossMargin:           75,
		BurnMultiple:          1.5,
		NewLogoPercent:        65,
		ExpansionPercent:      35,
		ChurnRate:             10,
		Runway:                24,
		TargetCustomer:        SegmentMidMarketEnterprise,
		GrowthMotion:          MotionSalesLed,
		Industry:              "all",
	}
}
