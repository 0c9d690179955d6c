package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/docsift/docsift/core"
	"github.com/docsift/docsift/storage"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Imported int
	Skipped  int // content duplicates
	Invalid  int // failed validation
}

// Importer validates, deduplicates and persists document batches. Duplicate
// detection is content-based: two documents with the same fingerprint are
// the same document regardless of ID, and only the first one wins. The seen
// set spans the importer's lifetime, so re-importing a file is idempotent.
type Importer struct {
	docs   storage.DocumentRepository
	pool   *ants.Pool
	logger *slog.Logger

	mu   sync.Mutex
	seen map[core.Fingerprint]struct{}
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the worker pool size for concurrent fingerprinting.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(im *Importer) error {
		if size < 1 {
			size = 1
		}
		if im.pool != nil {
			im.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		im.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// NewImporter creates an importer writing to the given repository.
func NewImporter(docs storage.DocumentRepository, opts ...Option) (*Importer, error) {
	if docs == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	im := &Importer{
		docs:   docs,
		pool:   pool,
		logger: slog.Default(),
		seen:   make(map[core.Fingerprint]struct{}),
	}

	for _, opt := range opts {
		if optErr := opt(im); optErr != nil {
			im.Release()
			return nil, optErr
		}
	}
	return im, nil
}

// docCheck is the per-document outcome of the concurrent validation pass.
type docCheck struct {
	fingerprint core.Fingerprint
	err         error
}

// Import validates and fingerprints the batch on the worker pool, then
// persists the surviving documents in one repository write. Invalid and
// duplicate documents are counted, logged and dropped; they never fail the
// batch. The returned slice holds the documents that were persisted.
func (im *Importer) Import(ctx context.Context, docs []core.Document) ([]core.Document, ImportStats, error) {
	var stats ImportStats
	if len(docs) == 0 {
		return nil, stats, nil
	}

	checks := make([]docCheck, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		submitErr := im.pool.Submit(func() {
			defer wg.Done()
			if err := core.ValidateDocument(&docs[i]); err != nil {
				checks[i].err = err
				return
			}
			checks[i].fingerprint = core.FingerprintOf(&docs[i])
		})
		if submitErr != nil {
			// Pool unavailable, fall back to inline processing.
			wg.Done()
			if err := core.ValidateDocument(&docs[i]); err != nil {
				checks[i].err = err
			} else {
				checks[i].fingerprint = core.FingerprintOf(&docs[i])
			}
		}
	}
	wg.Wait()

	im.mu.Lock()
	batch := make([]*core.Document, 0, len(docs))
	for i := range docs {
		if checks[i].err != nil {
			stats.Invalid++
			im.logger.Warn("dropping invalid document", "doc_id", docs[i].ID, "err", checks[i].err)
			continue
		}
		if _, dup := im.seen[checks[i].fingerprint]; dup {
			stats.Skipped++
			im.logger.Debug("skipping duplicate document", "doc_id", docs[i].ID)
			continue
		}
		im.seen[checks[i].fingerprint] = struct{}{}
		batch = append(batch, &docs[i])
	}
	im.mu.Unlock()

	if len(batch) > 0 {
		if err := im.docs.PutDocuments(ctx, batch...); err != nil {
			return nil, stats, err
		}
	}
	stats.Imported = len(batch)

	imported := make([]core.Document, len(batch))
	for i, doc := range batch {
		imported[i] = *doc
	}

	im.logger.Info("import complete",
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"invalid", stats.Invalid)
	return imported, stats, nil
}

// ImportFile reads a CSV, XML or JSON file and imports its documents.
func (im *Importer) ImportFile(ctx context.Context, path string) ([]core.Document, ImportStats, error) {
	docs, err := ReadFile(path, im.logger)
	if err != nil {
		return nil, ImportStats{}, err
	}
	return im.Import(ctx, docs)
}

// Release releases the worker pool. The importer should not be used after
// calling Release.
func (im *Importer) Release() {
	if im.pool != nil {
		im.pool.Release()
	}
}
