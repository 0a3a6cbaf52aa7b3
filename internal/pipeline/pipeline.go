package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"

	"goprop-core/annotation"
	"goprop-core/hierarchy"
	"goprop-core/propagate"
	"goprop-core/rank"
	"goprop/internal/inputs"
)

// Source names an input table in skip callbacks.
type Source string

const (
	SourceAnnotations Source = "annotations"
	SourceHierarchy   Source = "hierarchy"
)

type Config struct {
	AnnotationFile string
	HierarchyFile  string

	Top     int // <=0 keeps every class
	Lenient bool

	// OnSkip is told about rows dropped in lenient mode.
	OnSkip func(src Source, line int, err error)
	Logger *slog.Logger
}

// Stats describes one run.
type Stats struct {
	Annotation      annotation.Stats
	HierarchyRows   int
	HierarchyNoID   int // rows with an empty class id; never matched or named
	DirectGenes     int // genes with at least one direct class
	Genes           int
	DirectClasses   int
	FinalClasses    int
	DirectPairs     int
	PropagatedPairs int
}

type Result struct {
	Entries []rank.Entry
	Stats   Stats
}

// Run loads both tables fully, then propagates and ranks. Nothing is
// returned on error, so callers never see a partial report.
func Run(ctx context.Context, fsys billy.Filesystem, cfg Config) (Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	skip := func(src Source) func(int, error) {
		if cfg.OnSkip == nil {
			return nil
		}
		return func(line int, err error) { cfg.OnSkip(src, line, err) }
	}

	t0 := time.Now()
	var direct annotation.Direct
	err := withFile(fsys, cfg.AnnotationFile, func(r io.Reader) error {
		var err error
		direct, err = annotation.Load(ctx, r, annotation.Options{Lenient: cfg.Lenient, OnSkip: skip(SourceAnnotations)})
		return err
	})
	if err != nil {
		return Result{}, err
	}
	log.Debug("annotations loaded",
		"file", cfg.AnnotationFile,
		"rows", direct.Stats.Rows,
		"genes", len(direct.Annotations),
		"classes", len(direct.Membership),
		"elapsed", time.Since(t0))

	t1 := time.Now()
	var recs []hierarchy.Record
	err = withFile(fsys, cfg.HierarchyFile, func(r io.Reader) error {
		var err error
		recs, err = hierarchy.Load(ctx, r, hierarchy.Options{Lenient: cfg.Lenient, OnSkip: skip(SourceHierarchy)})
		return err
	})
	if err != nil {
		return Result{}, err
	}
	log.Debug("hierarchy loaded", "file", cfg.HierarchyFile, "rows", len(recs), "elapsed", time.Since(t1))
	noID := 0
	for _, r := range recs {
		if r.ID == "" {
			noID++
			log.Debug("hierarchy row has no class id", "file", cfg.HierarchyFile, "line", r.Line)
		}
	}

	propagated := propagate.Propagate(direct, recs)
	final := propagate.Aggregate(propagated)
	entries := rank.Top(final, hierarchy.NamesOf(recs), cfg.Top)

	st := Stats{
		Annotation:      direct.Stats,
		HierarchyRows:   len(recs),
		HierarchyNoID:   noID,
		DirectGenes:     direct.Membership.Genes(),
		Genes:           len(propagated),
		DirectClasses:   len(direct.Membership),
		FinalClasses:    len(final),
		DirectPairs:     pairs(direct.Annotations),
		PropagatedPairs: pairs(propagated),
	}
	log.Debug("inputs summary",
		"annotation_rows", st.Annotation.Rows,
		"annotation_comments", st.Annotation.Comments,
		"annotation_empty", st.Annotation.Empty,
		"annotation_short", st.Annotation.Short,
		"hierarchy_rows", st.HierarchyRows,
		"hierarchy_no_id", st.HierarchyNoID,
		"direct_genes", st.DirectGenes)
	log.Debug("propagation done",
		"genes", st.Genes,
		"classes_before", st.DirectClasses,
		"classes_after", st.FinalClasses,
		"pairs_before", st.DirectPairs,
		"pairs_after", st.PropagatedPairs,
		"reported", len(entries))

	return Result{Entries: entries, Stats: st}, nil
}

func withFile(fsys billy.Filesystem, path string, fn func(io.Reader) error) error {
	rc, err := inputs.Open(fsys, path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := fn(rc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func pairs(a annotation.Annotations) int {
	n := 0
	for _, s := range a {
		n += len(s)
	}
	return n
}
