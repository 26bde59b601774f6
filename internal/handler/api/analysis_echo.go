package api

import (
	"net/http"
	"time"

	models "BiasScope/internal/domain/models"
	domrepo "BiasScope/internal/domain/repository"
	"BiasScope/internal/usecase"
	xhttp "BiasScope/pkg/http"
	xlogger "BiasScope/pkg/logger"
	"BiasScope/pkg/util"

	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler exposes the analysis and candle endpoints over Echo.
type AnalysisEchoHandler struct {
	logger  *xlogger.Logger
	analyze *usecase.AnalyzeUseCase
	candles *usecase.CandlesUseCase
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, analyze *usecase.AnalyzeUseCase, candles *usecase.CandlesUseCase) *AnalysisEchoHandler {
	return &AnalysisEchoHandler{logger: logger, analyze: analyze, candles: candles}
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	g := e.Group("/api")
	g.GET("/analyze", h.Analyze)
	g.GET("/candles", h.Candles)
}

func (h *AnalysisEchoHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.analyze.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:   util.NormalizeSymbol(req.Symbol),
		Interval: domrepo.NormalizeInterval(req.Interval),
		Limit:    req.Limit,
	})
	if err != nil {
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, report)
}

func (h *AnalysisEchoHandler) Candles(c echo.Context) error {
	req := &models.CandlesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.candles.GetCandles(c.Request().Context(), usecase.GetCandlesParams{
		Symbol:   util.NormalizeSymbol(req.Symbol),
		Interval: domrepo.NormalizeInterval(req.Interval),
		Limit:    req.Limit,
	})
	if err != nil {
		h.logger.Error("candles usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Health(c echo.Context) error {
	return xhttp.DataResponse(c, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}
