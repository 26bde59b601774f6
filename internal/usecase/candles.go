package usecase

import (
	"context"
	"fmt"

	"BiasScope/internal/domain/models"
	domrepo "BiasScope/internal/domain/repository"
)

// CandlesUseCase exposes raw candle retrieval, mostly for charting clients
// that want the same data the analysis ran on.
type CandlesUseCase struct {
	market domrepo.MarketData
}

func NewCandlesUseCase(market domrepo.MarketData) *CandlesUseCase {
	return &CandlesUseCase{market: market}
}

type GetCandlesParams struct {
	Symbol   string
	Interval domrepo.Interval
	Limit    int
}

type GetCandlesResult struct {
	Symbol   string          `json:"symbol"`
	Interval string          `json:"interval"`
	Count    int             `json:"count"`
	Candles  []models.Candle `json:"candles"`
}

func (uc *CandlesUseCase) GetCandles(ctx context.Context, p GetCandlesParams) (*GetCandlesResult, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if !domrepo.IsValidInterval(p.Interval) {
		p.Interval = domrepo.DefaultInterval()
	}
	if p.Limit <= 0 {
		p.Limit = 200
	}
	if p.Limit > 1000 {
		p.Limit = 1000
	}

	candles, err := uc.market.GetKlines(ctx, p.Symbol, p.Interval, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("get candles: %w", err)
	}

	return &GetCandlesResult{
		Symbol:   p.Symbol,
		Interval: string(p.Interval),
		Count:    len(candles),
		Candles:  candles,
	}, nil
}
