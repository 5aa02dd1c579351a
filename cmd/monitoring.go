package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

type coverageSource interface {
	Coverage() (models.Coverage, bool)
}

// coverageReply is the body of GET /coverage.
type coverageReply struct {
	Bounds json.RawMessage `json:"bounds"`
	Center json.RawMessage `json:"center"`
	Area   float64         `json:"area_m2"`
	Tasks  int             `json:"tasks"`
}

// newMonitoringHandler serves /healthz (database ping), /metrics and /coverage.
func newMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, dtb pinger, src coverageSource) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(writer http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		status, body := http.StatusOK, "OK"
		if err := dtb.Ping(ctx); err != nil {
			log.WarnContext(ctx, "Health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
		writer.WriteHeader(status)
		if _, err := writer.Write([]byte(body)); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}
	})

	mux.HandleFunc("GET /coverage", func(writer http.ResponseWriter, req *http.Request) {
		coverage, ok := src.Coverage()
		if !ok {
			http.Error(writer, "no tasks measured yet", http.StatusNotFound)
			return
		}

		reply, err := newCoverageReply(coverage)
		if err != nil {
			log.ErrorContext(req.Context(), "failed to encode coverage", "error", err)
			http.Error(writer, "internal error", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(writer).Encode(reply); err != nil {
			log.ErrorContext(req.Context(), "failed to write reply", "error", err)
		}
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return mux
}

func newCoverageReply(coverage models.Coverage) (coverageReply, error) {
	bounds, err := coverage.Bounds.MarshalJSON()
	if err != nil {
		return coverageReply{}, err
	}
	center, err := coverage.Center.MarshalJSON()
	if err != nil {
		return coverageReply{}, err
	}
	return coverageReply{Bounds: bounds, Center: center, Area: coverage.Area, Tasks: coverage.Tasks}, nil
}

// startMonitoringServer serves handler on port until ctx is cancelled.
func startMonitoringServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "Monitoring server shutdown failed", "error", err)
		}
	}()

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Monitoring server failed", "error", err)
	}
}
