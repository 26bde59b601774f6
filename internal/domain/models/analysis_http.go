package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required,min=5,max=20"`
	Interval string `query:"interval" json:"interval" default:"15m"`
	Limit    int    `query:"limit" json:"limit" default:"500" validate:"gte=60,lte=1000"`
}

type CandlesRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required,min=5,max=20"`
	Interval string `query:"interval" json:"interval" default:"15m"`
	Limit    int    `query:"limit" json:"limit" default:"200" validate:"gte=1,lte=1000"`
}
