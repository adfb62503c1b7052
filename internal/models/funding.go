// internal/models/funding.go
package models

// FundingRound is one historical raise. Amounts are in $M.
type FundingRound struct {
	Year         int     `json:"year" yaml:"year"`
	AmountRaised float64 `json:"amountRaised" yaml:"amountRaised"`
	ARRAtTime    float64 `json:"arrAtTime" yaml:"arrAtTime"`
	Valuation    float64 `json:"valuation" yaml:"valuation"`
}

// FundingProfile is the capital history used by the funding efficiency
// analysis. Rounds keep input order.
type FundingProfile struct {
	TotalCapitalRaised float64        `json:"totalCapitalRaised" yaml:"totalCapitalRaised"`
	CurrentARR         float64        `json:"currentArr" yaml:"currentArr"`
	TotalARR           float64        `json:"totalArr" yaml:"totalArr"`
	FoundingYear       int            `json:"foundingYear" yaml:"foundingYear"`
	FirstFundingYear   int            `json:"firstFundingYear" yaml:"firstFundingYear"`
	Rounds             []FundingRound `json:"fundingRounds" yaml:"fundingRounds"`
}

func DefaultFundingProfile() FundingProfile {
	return FundingProfile{
		TotalCapitalRaised: 50,
		CurrentARR:         10,
		TotalARR:           15,
		FoundingYear:       2020,
		FirstFundingYear:   2021,
		Rounds: []FundingRound{
			{Year: 2021, AmountRaised: 5, ARRAtTime: 1, Valuation: 20},
			{Year: 2022, AmountRaised: 20, ARRAtTime: 4, Valuation: 80},
			{Year: 2023, AmountRaised: 25, ARRAtTime: 8, Valuation: 160},
		},
	}
}
