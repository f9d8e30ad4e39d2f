package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	api_types "pricefeed/api-types"
	pricefeed_errors "pricefeed/internal"
	"pricefeed/internal/metrics"
	"pricefeed/internal/resolver"
	"pricefeed/internal/util"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// PingFunc reports whether the backing database is reachable.
type PingFunc func(ctx context.Context) error

func NewRouter(cfg util.Config, r resolver.Resolver, ping PingFunc, logger logrus.FieldLogger) *gin.Engine {
	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestId)
	router.Use(requestLogger(logger))
	router.Use(requestMetrics)
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			logger.WithError(err).Error("health check failed")
			c.JSON(http.StatusServiceUnavailable, api_types.HealthResponse{Status: "unavailable"})
			return
		}
		c.JSON(http.StatusOK, api_types.HealthResponse{Status: "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	currency := router.Group(cfg.Api.BasePath())
	currency.Use(newIpRateLimiter(cfg.RateLimit).middleware(logger))

	listPrices := func(c *gin.Context) {
		var req api_types.ListPricesRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read query: %w", err), c, http.StatusBadRequest)
			return
		}

		out, err := r.ListPrices(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}

		c.JSON(http.StatusOK, out)
	}
	currency.GET("/", listPrices)
	if currency.BasePath() != "/" {
		currency.GET("", listPrices)
	}

	currency.GET("/latest", func(c *gin.Context) {
		var req api_types.GetLatestPriceRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read query: %w", err), c, http.StatusBadRequest)
			return
		}

		out, err := r.GetLatestPrice(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}

		c.JSON(http.StatusOK, out)
	})

	currency.GET("/filter", func(c *gin.Context) {
		var req api_types.FilterPricesRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read query: %w", err), c, http.StatusBadRequest)
			return
		}

		out, err := r.FilterPrices(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}

		c.JSON(http.StatusOK, out)
	})

	return router
}

// StartApi serves until ctx is cancelled, then drains in-flight requests.
func StartApi(ctx context.Context, addr string, router http.Handler, logger logrus.FieldLogger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("api listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down api")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down api: %w", err)
	}
	return nil
}

// returnErrorJson maps typed errors to a status. Anything unrecognised is
// logged in full and reported to the caller as a bare 500.
func returnErrorJson(err error, c *gin.Context, logger logrus.FieldLogger) {
	var invalidErr pricefeed_errors.ErrInvalidArgument
	var notFoundErr pricefeed_errors.ErrNotFound

	switch {
	case errors.As(err, &invalidErr):
		returnErrorJsonCode(invalidErr, c, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		returnErrorJsonCode(notFoundErr, c, http.StatusNotFound)
	default:
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, api_types.ErrorResponse{Error: "internal error"})
	}
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, api_types.ErrorResponse{
		Error: err.Error(),
	})
}
