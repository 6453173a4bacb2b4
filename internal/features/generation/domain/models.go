package domain

// ContentAnalysis is a persona's simulated reaction to a piece of marketing content.
type ContentAnalysis struct {
	EmotionalSummary       string      `json:"emotionalSummary" description:"Overall emotional summary of how the persona feels about the content"`
	WhatTheyNotice         []string    `json:"whatTheyNotice" description:"What elements they notice first, in order of attention"`
	WhatTheyClick          []string    `json:"whatTheyClick" description:"What buttons, links, or elements they're likely to click"`
	WhatTurnsThemOff       []string    `json:"whatTurnsThemOff" description:"What elements or aspects turn them off or create friction"`
	WouldConvert           bool        `json:"wouldConvert" description:"Whether they would ultimately convert/buy based on this content"`
	EmotionalResponse      string      `json:"emotionalResponse" description:"Detailed emotional response and feelings about the content"`
	ProsAndCons            ProsAndCons `json:"prosAndCons"`
	ConversionLikelihood   int         `json:"conversionLikelihood" description:"Conversion likelihood score out of 100" validate:"min=0,max=100"`
	ImprovementSuggestions []string    `json:"improvementSuggestions" description:"Specific suggestions to improve conversion for this persona"`
	ConfidenceLevel        int         `json:"confidenceLevel" description:"Confidence level in this analysis (0-100)" validate:"min=0,max=100"`
}

type ProsAndCons struct {
	Pros []string `json:"pros" description:"Positive aspects from the persona's perspective"`
	Cons []string `json:"cons" description:"Negative aspects or concerns from the persona's perspective"`
}

// MarketAnalysis is a market overview for a product in an industry.
type MarketAnalysis struct {
	Overview        string        `json:"overview"`
	MarketSize      string        `json:"marketSize"`
	Trends          []MarketTrend `json:"trends" validate:"dive"`
	Competitors     []Competitor  `json:"competitors"`
	Opportunities   []string      `json:"opportunities"`
	Challenges      []string      `json:"challenges"`
	Recommendations []string      `json:"recommendations"`
}

type MarketTrend struct {
	Type        string `json:"type" enum:"positive,negative" validate:"oneof=positive negative"`
	Description string `json:"description"`
}

type Competitor struct {
	Name        string   `json:"name"`
	MarketShare string   `json:"marketShare"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
}

// Campaign is a marketing campaign plan.
type Campaign struct {
	Name     string             `json:"name"`
	Tagline  string             `json:"tagline"`
	Overview string             `json:"overview"`
	Phases   []CampaignPhase    `json:"phases"`
	Channels []string           `json:"channels"`
	Budget   []BudgetAllocation `json:"budget"`
	KPIs     []string           `json:"kpis"`
}

type CampaignPhase struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type BudgetAllocation struct {
	Category   string `json:"category"`
	Percentage string `json:"percentage"`
}

// Ideas is a set of marketing ideas grouped by effort.
type Ideas struct {
	QuickWins          []QuickWin     `json:"quickWins" validate:"dive"`
	Campaigns          []CampaignIdea `json:"campaigns" validate:"dive"`
	ContentIdeas       []ContentIdea  `json:"contentIdeas"`
	ImplementationTips []string       `json:"implementationTips"`
}

type QuickWin struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Difficulty  string `json:"difficulty" enum:"low,medium,high" validate:"oneof=low medium high"`
}

type CampaignIdea struct {
	Name       string `json:"name"`
	Concept    string `json:"concept"`
	Execution  string `json:"execution"`
	Impact     string `json:"impact"`
	Creativity string `json:"creativity" enum:"low,medium,high" validate:"oneof=low medium high"`
}

type ContentIdea struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
}

// Persona is a generated marketing persona.
type Persona struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Age           string   `json:"age"`
	Location      string   `json:"location"`
	Income        string   `json:"income"`
	Background    string   `json:"background"`
	Goals         []string `json:"goals"`
	PainPoints    []string `json:"painPoints"`
	MarketingTips []string `json:"marketingTips"`
}

// Schemas for every structured endpoint.
var (
	ContentAnalysisSchema = MustSchema[ContentAnalysis]("content_analysis")
	MarketAnalysisSchema  = MustSchema[MarketAnalysis]("market_analysis")
	CampaignSchema        = MustSchema[Campaign]("campaign")
	IdeasSchema           = MustSchema[Ideas]("ideas")
	PersonaSchema         = MustSchema[Persona]("persona")
)
