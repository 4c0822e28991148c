package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"serpapi/serpapi/monitoring"
	"serpapi/serpapi/search"
	"sort"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "searches"

// Entry describes a search made through the client, so that it can later be fetched
// again with SearchArchive.
type Entry struct {
	SearchId  string        `json:"search_id"`
	Engine    string        `json:"engine"`
	Params    search.Params `json:"params"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// EntryFromResult builds an entry from a search result. The api_key is never stored.
// Returns false if the result has no search_metadata.id.
func EntryFromResult(params search.Params, result search.Value) (Entry, bool) {
	id := result.Get("search_metadata.id").String()
	if id == "" {
		return Entry{}, false
	}

	stored := params.Clone()
	delete(stored, "api_key")

	engine := result.Get("search_parameters.engine").String()
	if engine == "" {
		engine = stored["engine"]
	}

	return Entry{
		SearchId:  id,
		Engine:    engine,
		Params:    stored,
		Status:    result.Get("search_metadata.status").String(),
		CreatedAt: time.Now().UTC(),
	}, true
}

type Store struct {
	db     *bbolt.DB
	bucket []byte
	logger *slog.Logger
}

func Open(path string) (*Store, error) {
	logger := slog.With("bucket", bucketName)

	logger.Info("opening search history", "path", path)

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 20 * time.Second})
	if err != nil {
		logger.Error("error opening history db", "error", err)
		return nil, fmt.Errorf("error opening search history: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		logger.Error("error creating history bucket", "error", err)
		db.Close()
		return nil, fmt.Errorf("error opening search history: %w", err)
	}

	return &Store{db: db, bucket: []byte(bucketName), logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Lookup(id string) *Entry {
	var entry *Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(s.bucket).Get([]byte(id))
		if data != nil {
			entry = new(Entry)
			if err := json.Unmarshal(data, entry); err != nil {
				return fmt.Errorf("error parsing history entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("history lookup failed", "search_id", id, "error", err)
		return nil
	}

	return entry
}

func (s *Store) Record(entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("error recording search: error serializing entry", "search_id", entry.SearchId, "error", err)
		return // History is best effort, the search itself already succeeded.
	}

	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(entry.SearchId), data)
	}); err != nil {
		s.logger.Error("error recording search", "search_id", entry.SearchId, "error", err)
		return
	}

	monitoring.HistoryEntriesRecorded.Inc()
	s.logger.Info("recorded search", "search_id", entry.SearchId, "engine", entry.Engine)
}

// List returns every recorded search, most recent first.
func (s *Store) List() ([]Entry, error) {
	entries := make([]Entry, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("error parsing history entry %s: %w", string(k), err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		s.logger.Error("error listing history", "error", err)
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
