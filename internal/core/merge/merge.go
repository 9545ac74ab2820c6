// Package merge parses a batch of ledger files concurrently and folds their
// grouped tables into one, in submission order.
package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"ledger-service/internal/core/grouping"
	"ledger-service/internal/core/parser"
	"ledger-service/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxFileSize is the per-file limit applied when Options leaves it unset.
const DefaultMaxFileSize int64 = 200 << 20

// Source is one submitted file. Size may be negative when unknown; the limit
// is then enforced while reading.
type Source struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// Options tune a Merger.
type Options struct {
	MaxFileSize   int64
	Workers       int
	TagProvenance bool
}

// Result is the outcome of one batch.
type Result struct {
	Table *domain.GroupedTable
	// Files holds the parsed files by submission index, nil where parsing failed.
	Files  []*parser.File
	Errors []domain.FileError
	Tagged bool
}

// Merger runs the per-file pipeline with bounded parallelism.
type Merger struct {
	parser *parser.Parser
	engine *grouping.Engine
	opts   Options
	logger *zap.Logger
}

// New creates a Merger.
func New(p *parser.Parser, engine *grouping.Engine, opts Options, logger *zap.Logger) *Merger {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if engine == nil {
		engine = grouping.NewEngine(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{parser: p, engine: engine, opts: opts, logger: logger}
}

type fileResult struct {
	file  *parser.File
	table *domain.GroupedTable
	err   error
}

// Merge processes sources and reduces them in submission order. A failing file
// is reported in Result.Errors and does not abort the batch; only context
// cancellation does.
func (m *Merger) Merge(ctx context.Context, sources []Source) (*Result, error) {
	if len(sources) == 0 {
		return nil, domain.ErrEmptyRequest
	}
	start := time.Now()

	results := make([]fileResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, table, err := m.process(i, src)
			results[i] = fileResult{file: f, table: table, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Table:  domain.NewGroupedTable(),
		Files:  make([]*parser.File, len(sources)),
		Tagged: m.opts.TagProvenance,
	}
	for i, r := range results {
		if r.err != nil {
			m.logger.Warn("falha ao processar arquivo",
				zap.String("file", sources[i].Name), zap.Error(r.err))
			res.Errors = append(res.Errors, domain.FileError{FileName: sources[i].Name, Error: r.err.Error()})
			continue
		}
		res.Files[i] = r.file
		if m.opts.TagProvenance {
			tag(r.table, r.file.Provenance)
		}
		res.Table.Concat(r.table)
	}
	grouping.Reassemble(res.Table, m.engine.Policy())

	m.logger.Info("lote de arquivos processado",
		zap.Int("files", len(sources)),
		zap.Int("failed", len(res.Errors)),
		zap.Int("rows", res.Table.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (m *Merger) process(index int, src Source) (*parser.File, *domain.GroupedTable, error) {
	if src.Size > m.opts.MaxFileSize {
		return nil, nil, fmt.Errorf("%w: %s (%d bytes)", domain.ErrFileTooLarge, src.Name, src.Size)
	}
	if src.Open == nil {
		return nil, nil, fmt.Errorf("arquivo %s sem conteúdo", src.Name)
	}
	rc, err := src.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao abrir arquivo %s: %w", src.Name, err)
	}
	defer rc.Close()

	f, err := m.parser.Parse(src.Name, &limitReader{r: rc, remaining: m.opts.MaxFileSize})
	if err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrFileTooLarge, src.Name)
		}
		return nil, nil, err
	}
	return f, m.engine.Scan(f.Lines, index), nil
}

func tag(table *domain.GroupedTable, prov domain.FileProvenance) {
	p := prov
	for _, code := range table.Codes() {
		rows := table.Rows(code)
		for i := range rows {
			rows[i].Provenance = &p
		}
	}
}

// limitReader fails with ErrFileTooLarge once more than remaining bytes have
// been read.
type limitReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, domain.ErrFileTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, domain.ErrFileTooLarge
	}
	return n, err
}
