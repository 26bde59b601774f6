package binance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"BiasScope/internal/domain/models"
	drepo "BiasScope/internal/domain/repository"
	"BiasScope/internal/service/ratelimit"
	xhttp "BiasScope/pkg/http"
)

// Binance caps REST usage by request weight; one klines call at limit<=1000
// costs weight 2 of the 6000/min budget. The local bucket stays far below
// that so a burst of analyses can never trip the exchange ban.
const (
	klinesBucketKey    = "klines"
	klinesBucketSize   = 20
	klinesRefillPerSec = 5
)

// Client fetches candles from the Binance spot REST API. Implements
// repository.MarketData.
type Client struct {
	baseURL string
	client  *xhttp.Client
	limiter *ratelimit.Limiter
}

// New creates a Binance market data client.
func New(baseURL string, timeout time.Duration) drepo.MarketData {
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter: ratelimit.New(),
	}
}

// GetKlines fetches up to limit completed candles for symbol/interval,
// oldest first.
func (c *Client) GetKlines(ctx context.Context, symbol string, interval drepo.Interval, limit int) ([]models.Candle, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if limit <= 0 {
		limit = 500
	}
	if limit > 1000 {
		limit = 1000
	}
	if !c.limiter.Allow(klinesBucketKey, klinesBucketSize, klinesRefillPerSec) {
		return nil, fmt.Errorf("binance klines: local rate limit exceeded")
	}

	// Each row is a mixed-type array: timestamps as numbers, prices as strings.
	var rows [][]interface{}
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: "GET",
		URL:    c.baseURL + "/api/v3/klines",
		QueryParams: map[string]string{
			"symbol":   symbol,
			"interval": string(interval),
			"limit":    strconv.Itoa(limit),
		},
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("binance klines %s/%s: %w", symbol, interval, err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for i, row := range rows {
		candle, err := parseKline(symbol, row)
		if err != nil {
			return nil, fmt.Errorf("binance klines %s row %d: %w", symbol, i, err)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func parseKline(symbol string, row []interface{}) (models.Candle, error) {
	if len(row) < 7 {
		return models.Candle{}, fmt.Errorf("short kline row (%d fields)", len(row))
	}

	openTime, ok := row[0].(float64)
	if !ok {
		return models.Candle{}, fmt.Errorf("open time not numeric")
	}
	closeTime, ok := row[6].(float64)
	if !ok {
		return models.Candle{}, fmt.Errorf("close time not numeric")
	}

	var prices [5]float64
	for i := 1; i <= 5; i++ {
		s, ok := row[i].(string)
		if !ok {
			return models.Candle{}, fmt.Errorf("field %d not a string", i)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Candle{}, fmt.Errorf("field %d: %w", i, err)
		}
		prices[i-1] = v
	}

	return models.Candle{
		OpenTime:  time.UnixMilli(int64(openTime)),
		CloseTime: time.UnixMilli(int64(closeTime)),
		Symbol:    symbol,
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    prices[4],
	}, nil
}
