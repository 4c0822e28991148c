package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"serpapi/serpapi/history"
	"serpapi/serpapi/monitoring"
	"serpapi/serpapi/services"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the serpapi endpoints over a local http relay",
	Long: `Starts an http server that forwards requests to serpapi.com using the
configured defaults. Routes are mounted under /api/v1:

  GET /search, /html, /locations, /account, /searches/{search_id}, /history`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(c *cobra.Command, args []string) error {
	store, err := history.Open(config.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	monitoring.ExposeMetrics(config.MetricsPort)

	relay := services.NewRelayService(newClient(), store)

	r := chi.NewRouter()
	r.Mount("/api/v1", relay.Routes())

	slog.Info("starting relay", "port", config.Port, "engine", config.Engine)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", config.Port), r); err != nil {
		return fmt.Errorf("listen and serve returned error: %w", err)
	}
	return nil
}
