package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"mvsolver/sudokuchains/internal/grid"
	"mvsolver/sudokuchains/internal/livehints"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/solve", handleSolve)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logger.WithField("addr", addr).Info("sudokuchainsd: serving")
	return http.ListenAndServe(addr, mux)
}

// handleSolve upgrades the request to a websocket, runs the configured
// engine against the puzzle given in the "puzzle" query parameter, and
// streams every discovered hint to the client as it is found.
func handleSolve(w http.ResponseWriter, r *http.Request) {
	puzzle := r.URL.Query().Get("puzzle")
	g, err := grid.Parse(puzzle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Warn("sudokuchainsd: websocket upgrade failed")
		return
	}

	runID := uuid.NewString()
	hub := livehints.NewHub(runID, logger)
	hub.Register(ws)
	defer hub.Close()

	engine, err := buildEngine(runID)
	if err != nil {
		logger.WithError(err).Error("sudokuchainsd: failed to build engine")
		return
	}

	if err := engine.GetHintsContext(r.Context(), g, hub); err != nil && err != context.Canceled {
		logger.WithError(err).WithField("run_id", runID).Error("sudokuchainsd: GetHints failed")
	}
	logger.WithField("run_id", runID).WithField("pushed", hub.Pushed()).Info("sudokuchainsd: run complete")
}
