package builder

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/frenchdict/internal/app/builder/merge"
	"github.com/heartmarshall/frenchdict/internal/app/builder/txtdict"
	"github.com/heartmarshall/frenchdict/internal/app/builder/wordlist"
	"github.com/heartmarshall/frenchdict/internal/domain"
	"github.com/heartmarshall/frenchdict/pkg/ctxutil"
)

// Phase names.
const (
	PhaseGonggong = "gonggong"
	PhaseWordlist = "wordlist"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseGonggong, PhaseWordlist}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Parsed   int
	Dropped  int
	Entries  int
	Merged   int
	Files    int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates one build run over the configured sources.
type Pipeline struct {
	log     *slog.Logger
	store   DocumentStore
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store DocumentStore, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		store:   store,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. An unknown phase name is an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	generatedAt, err := p.cfg.generatedAt()
	if err != nil {
		return fmt.Errorf("source_date_epoch: %w", err)
	}
	if generatedAt.IsZero() {
		generatedAt = p.now().UTC()
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	log := p.log.With(slog.String("run_id", runID.String()))
	log.Info("starting build",
		slog.Any("phases", toRun),
		slog.Bool("dry_run", p.cfg.DryRun),
		slog.String("output_dir", p.cfg.OutputDir),
	)

	for _, phase := range toRun {
		start := time.Now()
		phaseCtx := ctxutil.WithPhase(ctx, phase)
		phaseLog := log.With(slog.String("phase", phase))
		phaseLog.Info("starting phase")

		var result PhaseResult
		if err := ctx.Err(); err != nil {
			result = PhaseResult{Err: fmt.Errorf("phase %s: %w", phase, err)}
		} else {
			switch phase {
			case PhaseGonggong:
				result = p.runGonggong(phaseCtx, phaseLog, generatedAt)
			case PhaseWordlist:
				result = p.runWordlist(phaseCtx, phaseLog, generatedAt)
			}
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			phaseLog.Warn("phase failed",
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			phaseLog.Info("phase completed",
				slog.Int("parsed", result.Parsed),
				slog.Int("dropped", result.Dropped),
				slog.Int("entries", result.Entries),
				slog.Int("merged", result.Merged),
				slog.Int("files", result.Files),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	log.Info("build completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q (known: %v)", ph, allPhases)
		}
		filter[ph] = true
	}
	var filtered []string
	for _, ph := range allPhases {
		if filter[ph] {
			filtered = append(filtered, ph)
		}
	}
	return filtered, nil
}

// runGonggong parses the text dictionary, merges duplicate headwords and
// emits the document.
func (p *Pipeline) runGonggong(ctx context.Context, log *slog.Logger, generatedAt time.Time) PhaseResult {
	src := p.cfg.Gonggong
	if src.Path == "" {
		log.Warn("source not configured, skipping")
		return PhaseResult{Skipped: 1}
	}

	parsed, err := txtdict.ParseFile(src.Path, txtdict.DefaultOptions())
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse %s: %w", src.Path, err)}
	}
	st := parsed.Stats
	log.Info("text dictionary parsed",
		slog.Int("total_lines", st.TotalLines),
		slog.Int("preamble_lines", st.PreambleLines),
		slog.Int("blocks", st.Blocks),
		slog.Int("headings", st.Headings),
		slog.Int("markers", st.Markers),
		slog.Int("boilerplate", st.Boilerplate),
		slog.Int("orphans", st.Orphans),
		slog.Int("parsed", st.Parsed),
		slog.Int("dropped", st.Dropped),
	)
	logCounts(log, "drop reason", "reason", st.DropReasons)
	logCounts(log, "head strategy", "strategy", st.Strategies)

	result := PhaseResult{Parsed: st.Parsed, Dropped: st.Dropped}
	p.mergeAndEmit(ctx, log, &result, p.gonggongMeta(), parsed.Entries, generatedAt)
	return result
}

// runWordlist parses the CSV wordlists, merges duplicate headwords and
// emits the document.
func (p *Pipeline) runWordlist(ctx context.Context, log *slog.Logger, generatedAt time.Time) PhaseResult {
	src := p.cfg.Wordlist
	if src.Dir == "" {
		log.Warn("source not configured, skipping")
		return PhaseResult{Skipped: 1}
	}

	parsed, err := wordlist.Parse(src.Dir, wordlist.Options{LemmasOnly: src.LemmasOnly})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse %s: %w", src.Dir, err)}
	}
	st := parsed.Stats
	log.Info("wordlist parsed",
		slog.Int("files_read", st.FilesRead),
		slog.Int("files_missing", st.FilesMissing),
		slog.Int("rows", st.Rows),
		slog.Int("empty_forms", st.EmptyForms),
		slog.Int("inflections", st.Inflections),
		slog.Int("unknown_tags", st.UnknownTags),
		slog.Int("kept", st.Kept),
	)
	logCounts(log, "wordlist category", "category", st.KeptByCategory)

	result := PhaseResult{Parsed: st.Kept, Dropped: st.EmptyForms + st.Inflections}
	p.mergeAndEmit(ctx, log, &result, p.wordlistMeta(), parsed.Entries, generatedAt)
	return result
}

// mergeAndEmit folds entries by headword and writes the document, the
// optional per-category documents and the index record. Nothing is written
// in dry-run mode.
func (p *Pipeline) mergeAndEmit(ctx context.Context, log *slog.Logger, result *PhaseResult, meta DocumentMeta, entries []domain.DictionaryEntry, generatedAt time.Time) {
	m := merge.New()
	m.AddAll(entries)
	ms := m.Stats()
	log.Info("entries merged",
		slog.Int("distinct", ms.Added),
		slog.Int("merged", ms.Merged),
		slog.Int("pos_added", ms.POSAdded),
		slog.Int("senses_added", ms.SensesAdded),
		slog.Int("senses_skipped", ms.SensesSkipped),
		slog.Int("rejected", ms.Rejected),
	)
	result.Entries = m.Len()
	result.Merged = ms.Merged

	doc := BuildDocument(meta, m.Entries(), generatedAt)

	var splits []CategoryDocument
	if p.cfg.SplitByCategory {
		splits = SplitByCategory(meta, doc)
	}

	if p.cfg.DryRun {
		log.Info("dry run, skipping output",
			slog.String("file", DocumentFileName(meta.ID)),
			slog.Int("category_files", len(splits)),
		)
		result.Skipped = 1 + len(splits)
		return
	}

	if err := p.store.WriteDocument(ctx, DocumentFileName(meta.ID), doc); err != nil {
		result.Err = fmt.Errorf("write document: %w", err)
		return
	}
	result.Files++

	for _, s := range splits {
		if err := p.store.WriteDocument(ctx, s.FileName, s.Document); err != nil {
			result.Err = fmt.Errorf("write %s: %w", s.FileName, err)
			return
		}
		result.Files++
	}

	if err := p.store.UpsertIndex(ctx, IndexRecordFor(meta, doc)); err != nil {
		result.Err = fmt.Errorf("update index: %w", err)
		return
	}
}

func (p *Pipeline) gonggongMeta() DocumentMeta {
	g := p.cfg.Gonggong
	return DocumentMeta{
		ID:               g.ID,
		Name:             g.Name,
		Description:      g.Description,
		IndexDescription: g.IndexDescription,
		Level:            g.Level,
		Source:           g.Source,
		License:          g.License,
		Version:          g.Version,
	}
}

func (p *Pipeline) wordlistMeta() DocumentMeta {
	w := p.cfg.Wordlist
	return DocumentMeta{
		ID:               w.ID,
		Name:             w.Name,
		Description:      w.Description,
		IndexDescription: w.IndexDescription,
		Level:            w.Level,
		Source:           w.Source,
		License:          w.License,
		Version:          w.Version,
	}
}

// logCounts logs one line per key in sorted order.
func logCounts(log *slog.Logger, msg, attr string, counts map[string]int) {
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		log.Info(msg, slog.String(attr, k), slog.Int("count", counts[k]))
	}
}
