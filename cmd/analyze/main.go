// Command analyze runs a one-shot interactive analysis in the terminal:
// pick a symbol and interval, fetch candles, and print the full report.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	domrepo "BiasScope/internal/domain/repository"
	"BiasScope/internal/report"
	"BiasScope/internal/service/binance"
	"BiasScope/internal/services/confluence"
	"BiasScope/internal/services/indicators"
	"BiasScope/internal/usecase"
	"BiasScope/pkg/config"
	applogger "BiasScope/pkg/logger"
	"BiasScope/pkg/metrics"
	"BiasScope/pkg/util"
)

var symbolOptions = []string{
	"BTCUSDT", "ETHUSDT", "BNBUSDT", "ADAUSDT", "SOLUSDT",
	"XRPUSDT", "DOGEUSDT", "AVAXUSDT", "MATICUSDT", "DOTUSDT",
	"LINKUSDT", "UNIUSDT", "LTCUSDT", "BCHUSDT", "FILUSDT",
}

var intervalOptions = []struct {
	interval    string
	description string
}{
	{"1m", "1 Minute - Scalping"},
	{"3m", "3 Minute - Short Scalping"},
	{"5m", "5 Minute - Scalping"},
	{"15m", "15 Minute - Short Term"},
	{"30m", "30 Minute - Short Term"},
	{"1h", "1 Hour - Medium Term"},
	{"2h", "2 Hour - Medium Term"},
	{"4h", "4 Hour - Swing Trading"},
	{"6h", "6 Hour - Swing Trading"},
	{"12h", "12 Hour - Position"},
	{"1d", "Daily - Position Trading"},
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	symbolFlag := flag.String("symbol", "", "skip the menu and analyze this symbol")
	intervalFlag := flag.String("interval", "", "skip the menu and use this interval")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	in := bufio.NewReader(os.Stdin)

	symbol := util.NormalizeSymbol(*symbolFlag)
	if symbol == "" {
		symbol = promptSymbol(in)
	}
	interval := domrepo.Interval(*intervalFlag)
	if interval == "" {
		interval = promptInterval(in)
	}
	interval = domrepo.NormalizeInterval(string(interval))

	fmt.Printf("\nFetching data for %s on %s timeframe...\n", symbol, interval)

	// Quiet logger so the report stays readable.
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	uc := usecase.NewAnalyzeUseCase(
		binance.New(cfg.Binance.BaseURL, cfg.Binance.Timeout),
		indicators.NewBuilder(),
		confluence.NewEngine(confluence.WithThreshold(cfg.Engine.ConfluenceThreshold)),
		nil,
		metrics.New(),
		l,
	)

	r, err := uc.Analyze(context.Background(), usecase.AnalyzeParams{
		Symbol:   symbol,
		Interval: interval,
		Limit:    cfg.Binance.KlineLimit,
	})
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	report.Render(os.Stdout, r)
	report.RenderPlan(os.Stdout, r)
	report.RenderInsights(os.Stdout, r)
}

func promptSymbol(in *bufio.Reader) string {
	fmt.Println("\nSelect a token to analyze:")
	for i, s := range symbolOptions[:10] {
		fmt.Printf("%2d. %s\n", i+1, s)
	}
	fmt.Println("11. More tokens...")
	fmt.Println("12. Enter custom token")

	choice := util.ParseIntDefault(readLine(in, "\nYour choice: "), 0)
	switch {
	case choice >= 1 && choice <= 10:
		return symbolOptions[choice-1]
	case choice == 11:
		fmt.Println("\nAdditional tokens:")
		for i, s := range symbolOptions[10:] {
			fmt.Printf("%2d. %s\n", i+11, s)
		}
		sub := util.ParseIntDefault(readLine(in, "Select token: "), 0)
		if sub >= 11 && sub <= len(symbolOptions) {
			return symbolOptions[sub-1]
		}
	case choice == 12:
		custom := util.NormalizeSymbol(readLine(in, "Enter custom token symbol (e.g., ATOMUSDT): "))
		if custom != "" {
			return custom
		}
	}

	fmt.Println("Invalid choice. Defaulting to BTCUSDT.")
	return "BTCUSDT"
}

func promptInterval(in *bufio.Reader) domrepo.Interval {
	fmt.Println("\nSelect a timeframe:")
	for i, opt := range intervalOptions {
		fmt.Printf("%2d. %-3s - %s\n", i+1, opt.interval, opt.description)
	}

	choice := util.ParseIntDefault(readLine(in, "\nYour choice: "), 0)
	if choice >= 1 && choice <= len(intervalOptions) {
		return domrepo.Interval(intervalOptions[choice-1].interval)
	}
	return domrepo.DefaultInterval()
}

func readLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
