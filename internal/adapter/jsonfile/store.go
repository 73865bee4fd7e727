// Package jsonfile writes dictionary documents and the shared index as JSON
// files in one output directory.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/heartmarshall/frenchdict/internal/domain"
	"github.com/heartmarshall/frenchdict/pkg/ctxutil"
)

// Store implements builder.DocumentStore on the local filesystem.
type Store struct {
	log       *slog.Logger
	dir       string
	indexFile string
}

// New creates a Store rooted at dir. indexFile is relative to dir.
func New(log *slog.Logger, dir, indexFile string) *Store {
	return &Store{log: log, dir: dir, indexFile: indexFile}
}

// WriteDocument writes doc as indented JSON to fileName inside the store
// directory, replacing any previous file atomically.
func (s *Store) WriteDocument(ctx context.Context, fileName string, doc domain.DictionaryDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", fileName, err)
	}
	if err := s.writeAtomic(fileName, data); err != nil {
		return err
	}

	s.log.LogAttrs(ctx, slog.LevelDebug, "wrote document", append(runAttrs(ctx),
		slog.String("file", filepath.Join(s.dir, fileName)),
		slog.Int("count", doc.Count),
		slog.Int("bytes", len(data)),
	)...)
	return nil
}

// UpsertIndex replaces the record with the same ID in the index file, or
// appends it. A missing or unreadable index starts out empty.
func (s *Store) UpsertIndex(ctx context.Context, record domain.IndexRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := s.ReadIndex()
	if err != nil {
		return err
	}

	kept := records[:0]
	replaced := false
	for _, r := range records {
		if r.ID == record.ID {
			replaced = true
			continue
		}
		kept = append(kept, r)
	}
	kept = append(kept, record)

	data, err := encode(kept)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := s.writeAtomic(s.indexFile, data); err != nil {
		return err
	}

	s.log.LogAttrs(ctx, slog.LevelDebug, "updated index", append(runAttrs(ctx),
		slog.String("file", filepath.Join(s.dir, s.indexFile)),
		slog.String("id", record.ID),
		slog.Bool("replaced", replaced),
		slog.Int("records", len(kept)),
	)...)
	return nil
}

// ReadIndex returns the current index records. A missing file or one that is
// not a JSON array of records yields an empty list.
func (s *Store) ReadIndex() ([]domain.IndexRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, s.indexFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.IndexRecord{}, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var records []domain.IndexRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []domain.IndexRecord{}, nil
	}
	if records == nil {
		records = []domain.IndexRecord{}
	}
	return records, nil
}

// encode renders v as 2-space indented JSON without HTML escaping so that
// Chinese text and "<" survive verbatim.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic replaces fileName with data through a rename. On failure the
// previous file is untouched.
func (s *Store) writeAtomic(fileName string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := renameio.WriteFile(filepath.Join(s.dir, fileName), data, 0o644, renameio.WithStaticPermissions(0o644)); err != nil {
		return fmt.Errorf("write %s: %w", fileName, err)
	}
	return nil
}

// runAttrs returns the run and phase identifiers carried by ctx.
func runAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	if phase := ctxutil.PhaseFromCtx(ctx); phase != "" {
		attrs = append(attrs, slog.String("phase", phase))
	}
	return attrs
}
