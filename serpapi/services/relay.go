package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"serpapi/serpapi/history"
	"serpapi/serpapi/monitoring"
	"serpapi/serpapi/search"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

type SearchClient interface {
	Search(ctx context.Context, parameter search.Params) (search.Value, error)
	HTML(ctx context.Context, parameter search.Params) (string, error)
	Location(ctx context.Context, parameter search.Params) (search.Value, error)
	Account(ctx context.Context, parameter search.Params) (search.Value, error)
	SearchArchive(ctx context.Context, searchId string) (search.Value, error)
}

type History interface {
	Record(entry history.Entry)
	List() ([]history.Entry, error)
}

// RelayService exposes the serpapi client over http to local callers. Query parameters of
// the incoming request are forwarded as the per-call parameters.
type RelayService struct {
	client  SearchClient
	history History
}

var _ SearchClient = (*search.Client)(nil)

// history may be nil, in which case searches are not recorded.
func NewRelayService(client SearchClient, history History) *RelayService {
	return &RelayService{client: client, history: history}
}

func (s *RelayService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(monitoring.HandlerMetrics)

	r.Get("/search", WrapRestHandler(s.Search))
	r.Get("/html", s.HTML)
	r.Get("/locations", WrapRestHandler(s.Location))
	r.Get("/account", WrapRestHandler(s.Account))
	r.Get("/searches/{search_id}", WrapRestHandler(s.SearchArchive))
	r.Get("/history", WrapRestHandler(s.History))

	return r
}

func requestLogger(r *http.Request) *slog.Logger {
	return slog.With("request_id", uuid.NewString(), "route", r.URL.Path)
}

func (s *RelayService) Search(r *http.Request) (any, error) {
	params := queryParams(r)
	logger := requestLogger(r)

	results, err := s.client.Search(r.Context(), params)
	if err != nil {
		logger.Error("relay search failed", "error", err)
		return nil, CodedError(err, clientErrorStatus(err))
	}

	if s.history != nil {
		if entry, ok := history.EntryFromResult(params, results); ok {
			s.history.Record(entry)
		} else {
			logger.Info("search result has no search id, not recording")
		}
	}

	return results, nil
}

func (s *RelayService) HTML(w http.ResponseWriter, r *http.Request) {
	html, err := s.client.HTML(r.Context(), queryParams(r))
	if err != nil {
		requestLogger(r).Error("relay html search failed", "error", err)
		http.Error(w, err.Error(), clientErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		slog.Error("error writing html response", "error", err)
	}
}

func (s *RelayService) Location(r *http.Request) (any, error) {
	locations, err := s.client.Location(r.Context(), queryParams(r))
	if err != nil {
		requestLogger(r).Error("relay location lookup failed", "error", err)
		return nil, CodedError(err, clientErrorStatus(err))
	}
	return locations, nil
}

func (s *RelayService) Account(r *http.Request) (any, error) {
	account, err := s.client.Account(r.Context(), queryParams(r))
	if err != nil {
		requestLogger(r).Error("relay account lookup failed", "error", err)
		return nil, CodedError(err, clientErrorStatus(err))
	}
	return account, nil
}

func (s *RelayService) SearchArchive(r *http.Request) (any, error) {
	searchId := chi.URLParam(r, "search_id")
	if searchId == "" {
		return nil, CodedError(fmt.Errorf("missing {search_id} url parameter"), http.StatusBadRequest)
	}

	results, err := s.client.SearchArchive(r.Context(), searchId)
	if err != nil {
		requestLogger(r).Error("relay archive lookup failed", "search_id", searchId, "error", err)
		return nil, CodedError(err, clientErrorStatus(err))
	}
	return results, nil
}

func (s *RelayService) History(r *http.Request) (any, error) {
	if s.history == nil {
		return []history.Entry{}, nil
	}

	entries, err := s.history.List()
	if err != nil {
		return nil, CodedError(fmt.Errorf("error listing search history"), http.StatusInternalServerError)
	}
	return entries, nil
}
