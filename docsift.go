// Copyright 2026 Docsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package docsift

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/docsift/docsift/ai"
	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/export"
	"github.com/docsift/docsift/ingest"
	"github.com/docsift/docsift/orders"
	"github.com/docsift/docsift/report"
	"github.com/docsift/docsift/search"
	"github.com/docsift/docsift/storage"
	"github.com/docsift/docsift/storage/badger"
)

// System wires storage, the three search engines, the importer and the
// order log into one facade. Documents are persisted on add and loaded into
// every engine, so each strategy searches the same collection.
type System struct {
	repos    *badger.Repositories
	importer *ingest.Importer
	engines  map[search.Kind]*search.Engine
	embedder ai.Embedder
	menu     []string
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	logger       *slog.Logger
	embedder     ai.Embedder
	menu         []string
	inMemory     bool
	threshold    float64
	thresholdSet bool
}

// WithSystemLogger sets a custom logger. Default is slog.Default().
func WithSystemLogger(logger *slog.Logger) SystemOption {
	return func(o *systemOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEmbedder attaches an embedding model to the semantic engine.
func WithEmbedder(e ai.Embedder) SystemOption {
	return func(o *systemOptions) { o.embedder = e }
}

// WithSimilarityThreshold sets the semantic engine's minimum result score.
// Default is search.DefaultSimilarityThreshold.
func WithSimilarityThreshold(threshold float64) SystemOption {
	return func(o *systemOptions) {
		o.threshold = threshold
		o.thresholdSet = true
	}
}

// WithMenu sets the food menu orders are validated against.
func WithMenu(menu []string) SystemOption {
	return func(o *systemOptions) { o.menu = menu }
}

// WithInMemoryStorage keeps all state in memory, for tests and demos.
func WithInMemoryStorage() SystemOption {
	return func(o *systemOptions) { o.inMemory = true }
}

// DefaultMenu is the menu used when WithMenu is not given.
var DefaultMenu = []string{"sushi", "ice cream", "fish", "burger", "pizza", "pasta"}

// Open creates a System backed by a BadgerDB directory and loads any stored
// documents into the search engines.
func Open(path string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		logger: slog.Default(),
		menu:   DefaultMenu,
	}
	for _, opt := range opts {
		opt(options)
	}

	var (
		repos *badger.Repositories
		err   error
	)
	if options.inMemory {
		repos, err = badger.NewMemoryRepositories()
	} else {
		repos, err = badger.NewRepositories(path)
	}
	if err != nil {
		return nil, err
	}

	importer, err := ingest.NewImporter(repos.Documents, ingest.WithLogger(options.logger))
	if err != nil {
		repos.Close()
		return nil, err
	}

	engines := make(map[search.Kind]*search.Engine, 3)
	for _, kind := range search.SupportedKinds() {
		engineOpts := []search.Option{search.WithLogger(options.logger)}
		if kind == search.KindSemantic {
			if options.embedder != nil {
				engineOpts = append(engineOpts, search.WithEmbedderModel(options.embedder))
			}
			if options.thresholdSet {
				engineOpts = append(engineOpts, search.WithSimilarityThreshold(options.threshold))
			}
		}
		engine, err := search.NewEngine(kind, "", string(kind), engineOpts...)
		if err != nil {
			importer.Release()
			repos.Close()
			return nil, err
		}
		engines[kind] = engine
	}

	s := &System{
		repos:    repos,
		importer: importer,
		engines:  engines,
		embedder: options.embedder,
		menu:     options.menu,
		logger:   options.logger,
	}

	if err := s.loadStoredDocuments(context.Background()); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// loadStoredDocuments feeds persisted documents into every engine.
func (s *System) loadStoredDocuments(ctx context.Context) error {
	stored, err := s.repos.Documents.ListDocuments(ctx)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		return nil
	}

	docs := make([]core.Document, len(stored))
	for i, doc := range stored {
		docs[i] = *doc
	}
	for _, engine := range s.engines {
		if err := engine.AddDocuments(docs); err != nil {
			return err
		}
	}
	s.logger.Info("loaded stored documents", "count", len(docs))
	return nil
}

// AddDocument persists a document and adds it to every engine.
func (s *System) AddDocument(ctx context.Context, doc core.Document) error {
	if err := s.repos.Documents.PutDocuments(ctx, &doc); err != nil {
		return err
	}
	for _, engine := range s.engines {
		if err := engine.AddDocument(doc); err != nil {
			return err
		}
	}
	return nil
}

// ImportFile imports documents from a CSV, XML or JSON file, persists the
// survivors and adds them to every engine.
func (s *System) ImportFile(ctx context.Context, path string) (ingest.ImportStats, error) {
	imported, stats, err := s.importer.ImportFile(ctx, path)
	if err != nil {
		return stats, err
	}

	if len(imported) > 0 {
		for _, engine := range s.engines {
			if err := engine.AddDocuments(imported); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

// Search runs a query on the engine of the given kind. When userID is
// non-empty the query is recorded in that user's search history; an unknown
// user gets a profile created on first search.
func (s *System) Search(ctx context.Context, query string, kind search.Kind, userID string) (*search.Response, error) {
	engine, ok := s.engines[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", search.ErrUnknownStrategy, kind)
	}

	resp, err := engine.Search(query)
	if err != nil {
		return nil, err
	}

	if userID != "" {
		if histErr := s.recordUserSearch(ctx, userID, query); histErr != nil {
			s.logger.Warn("failed to record search history", "user", userID, "err", histErr)
		}
	}
	return resp, nil
}

// SearchPage runs a query and feeds the results through the filter, sort
// and pagination pipeline.
func (s *System) SearchPage(ctx context.Context, query string, kind search.Kind, opts search.PageOptions) (*search.Page, error) {
	engine, ok := s.engines[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", search.ErrUnknownStrategy, kind)
	}
	return engine.SearchPage(query, opts)
}

func (s *System) recordUserSearch(ctx context.Context, userID, query string) error {
	profile, err := s.repos.Profiles.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		profile = &core.UserProfile{UserID: userID}
	}
	profile.SearchHistory = append(profile.SearchHistory, query)
	return s.repos.Profiles.PutProfile(ctx, profile)
}

// Profile returns a user's stored profile.
func (s *System) Profile(ctx context.Context, userID string) (*core.UserProfile, error) {
	return s.repos.Profiles.GetProfile(ctx, userID)
}

// SaveProfile stores a user profile.
func (s *System) SaveProfile(ctx context.Context, profile *core.UserProfile) error {
	return s.repos.Profiles.PutProfile(ctx, profile)
}

// ExportResults writes search results to a file, format chosen by the
// file extension.
func (s *System) ExportResults(path string, results []core.ScoredResult) error {
	return export.WriteFile(path, results)
}

// PlaceOrder validates an order against the menu and appends it to the
// order log.
func (s *System) PlaceOrder(ctx context.Context, userID, orderText string) (*core.Order, error) {
	items, err := orders.ParseOrder(s.menu, orderText)
	if err != nil {
		return nil, err
	}
	return s.repos.Orders.AppendOrder(ctx, &core.Order{UserID: userID, Items: items})
}

// Orders returns the full order log.
func (s *System) Orders(ctx context.Context) ([]*core.Order, error) {
	return s.repos.Orders.ListOrders(ctx)
}

// Engine returns the engine of the given kind, or nil.
func (s *System) Engine(kind search.Kind) *search.Engine {
	return s.engines[kind]
}

// Menu returns the configured food menu.
func (s *System) Menu() []string {
	return s.menu
}

// Report writes the engine, document and order overview tables.
func (s *System) Report(ctx context.Context, w io.Writer) error {
	engines := make([]*search.Engine, 0, len(s.engines))
	for _, kind := range search.SupportedKinds() {
		engines = append(engines, s.engines[kind])
	}
	if err := report.RenderEngines(w, engines); err != nil {
		return err
	}
	if err := report.RenderDocuments(w, engines[0].Documents()); err != nil {
		return err
	}

	orderLog, err := s.repos.Orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	return report.RenderOrders(w, orderLog)
}

// Close releases the importer and storage.
func (s *System) Close() error {
	s.importer.Release()
	if err := s.repos.Close(); err != nil {
		s.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}
