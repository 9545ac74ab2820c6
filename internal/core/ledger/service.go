// Package ledger ties the ledger pipeline to document storage: uploads are
// parsed, merged and projected into the company's sheet document, and edited
// sheets are exported back to ledger text, CSV or workbooks.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ledger-service/internal/core/export"
	"ledger-service/internal/core/grouping"
	"ledger-service/internal/core/merge"
	"ledger-service/internal/core/parser"
	"ledger-service/internal/core/projection"
	"ledger-service/internal/core/registry"
	"ledger-service/internal/core/textenc"
	"ledger-service/internal/domain"
	"ledger-service/internal/storage"

	"go.uber.org/zap"
)

// Service define as operações sobre arquivos SPED e documentos de planilhas.
type Service interface {
	Convert(ctx context.Context, files []merge.Source, tagProvenance bool) (*Conversion, error)
	Upload(ctx context.Context, companyID string, files []merge.Source, tagProvenance bool) (*domain.UploadResult, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, id string, sheets domain.SheetCollection) (*domain.Document, error)
	DeleteSheet(ctx context.Context, companyID string, index int) (domain.SheetCollection, error)
	ExportText(files []ExportFile) ([]byte, error)
	ExportTextFiles(file ExportFile) ([]export.Artifact, error)
	ExportCSV(file ExportFile) ([]byte, error)
	ExportWorkbook(file ExportFile) ([]byte, error)
	ImportWorkbook(r io.Reader, filename string) (domain.SheetCollection, error)
	Codes() []string
}

// ExportFile is one edited file sent back for export.
type ExportFile struct {
	FileName          string                 `json:"file_name"`
	Sheets            domain.SheetCollection `json:"sheets"`
	SelectedBlocks    []string               `json:"selectedBlocks"`
	SplitByProvenance bool                   `json:"splitByProvenance"`
}

// Conversion is the result of running the pipeline without persisting.
type Conversion struct {
	Sheets domain.SheetCollection
	Files  []*parser.File
	Errors []domain.FileError
	Tagged bool
}

// Options configure a Service. Zero values select the defaults.
type Options struct {
	Registry        *registry.Registry
	Policy          *grouping.Policy
	Provenance      parser.ProvenanceSpec
	SourceEncoding  string
	ExportEncoding  string
	StrictCodeWidth int
	MaxFileSize     int64
	Workers         int
	TagProvenance   bool
	Store           storage.DocumentStore
	Archive         storage.Archive
	Logger          *zap.Logger
	Now             func() time.Time
}

type service struct {
	parser    *parser.Parser
	engine    *grouping.Engine
	projector *projection.Projector
	registry  *registry.Registry
	store     storage.DocumentStore
	archive   storage.Archive
	logger    *zap.Logger
	now       func() time.Time

	maxFileSize    int64
	workers        int
	tagProvenance  bool
	exportEncoding string
}

// NewService cria uma nova instância do serviço de planilhas SPED.
func NewService(opts Options) Service {
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	if opts.Policy == nil {
		opts.Policy = grouping.DefaultPolicy()
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.Archive == nil {
		opts.Archive = storage.NopArchive{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	normalizer := textenc.New(textenc.WithSourceEncoding(opts.SourceEncoding))
	return &service{
		parser:         parser.New(opts.Registry, normalizer, parser.NewTokenizer(opts.StrictCodeWidth), opts.Provenance, opts.Logger),
		engine:         grouping.NewEngine(opts.Policy),
		projector:      projection.NewProjector(opts.Registry, opts.Policy),
		registry:       opts.Registry,
		store:          opts.Store,
		archive:        opts.Archive,
		logger:         opts.Logger,
		now:            opts.Now,
		maxFileSize:    opts.MaxFileSize,
		workers:        opts.Workers,
		tagProvenance:  opts.TagProvenance,
		exportEncoding: opts.ExportEncoding,
	}
}

func (svc *service) merger(tagProvenance bool) *merge.Merger {
	return merge.New(svc.parser, svc.engine, merge.Options{
		MaxFileSize:   svc.maxFileSize,
		Workers:       svc.workers,
		TagProvenance: tagProvenance || svc.tagProvenance,
	}, svc.logger)
}

// Convert parses, merges and projects files without touching storage.
func (svc *service) Convert(ctx context.Context, files []merge.Source, tagProvenance bool) (*Conversion, error) {
	res, err := svc.merger(tagProvenance).Merge(ctx, files)
	if err != nil {
		return nil, err
	}
	return &Conversion{
		Sheets: svc.projector.Project(res.Table, nil, res.Tagged),
		Files:  res.Files,
		Errors: res.Errors,
		Tagged: res.Tagged,
	}, nil
}

// Upload converts files and appends the resulting sheets to the company's
// document, creating it on the first upload. Files that fail are reported in
// the result; the batch fails only when nothing could be stored.
func (svc *service) Upload(ctx context.Context, companyID string, files []merge.Source, tagProvenance bool) (*domain.UploadResult, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, domain.ErrMissingCompany
	}
	conv, err := svc.Convert(ctx, files, tagProvenance)
	if err != nil {
		return nil, err
	}

	result := &domain.UploadResult{Data: []*domain.Document{}, Errors: conv.Errors}
	if result.Errors == nil {
		result.Errors = []domain.FileError{}
	}
	if !anyParsed(conv.Files) {
		return result, nil
	}
	svc.archiveSources(ctx, companyID, files, conv.Files)

	doc, err := svc.appendSheets(ctx, companyID, conv.Sheets)
	if err != nil {
		result.Errors = append(result.Errors, domain.FileError{Error: err.Error()})
		return result, nil
	}
	result.Data = append(result.Data, doc)
	return result, nil
}

func anyParsed(files []*parser.File) bool {
	for _, f := range files {
		if f != nil {
			return true
		}
	}
	return false
}

func (svc *service) appendSheets(ctx context.Context, companyID string, sheets domain.SheetCollection) (*domain.Document, error) {
	now := svc.now().UTC()
	doc, err := svc.store.GetByCompany(ctx, companyID)
	switch {
	case err == nil:
		offset := len(doc.Sheets)
		for i := range sheets {
			sheets[i].Order = offset + i
		}
		doc.Sheets = append(doc.Sheets, sheets...)
		doc.UpdatedAt = now
	case errors.Is(err, domain.ErrDocumentNotFound):
		doc = &domain.Document{
			ID:        storage.NewDocumentID(),
			CompanyID: companyID,
			Sheets:    sheets,
			CreatedAt: now,
			UpdatedAt: now,
		}
	default:
		return nil, fmt.Errorf("falha ao buscar documento da empresa %s: %w", companyID, err)
	}

	if err := svc.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("falha ao salvar documento: %w", err)
	}
	svc.logger.Info("planilhas adicionadas ao documento",
		zap.String("company_id", companyID),
		zap.String("document_id", doc.ID),
		zap.Int("sheets", len(sheets)),
		zap.Int("total_sheets", len(doc.Sheets)))
	return doc, nil
}

// archiveSources keeps a raw copy of every parsed file. Failures are logged
// only.
func (svc *service) archiveSources(ctx context.Context, companyID string, sources []merge.Source, parsed []*parser.File) {
	if _, nop := svc.archive.(storage.NopArchive); nop {
		return
	}
	for i, src := range sources {
		if i >= len(parsed) || parsed[i] == nil || src.Open == nil {
			continue
		}
		if err := svc.archiveOne(ctx, companyID, src); err != nil {
			svc.logger.Warn("falha ao arquivar arquivo original",
				zap.String("company_id", companyID), zap.String("file", src.Name), zap.Error(err))
		}
	}
}

func (svc *service) archiveOne(ctx context.Context, companyID string, src merge.Source) error {
	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	content, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return svc.archive.Put(ctx, companyID, src.Name, content)
}

func (svc *service) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := svc.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar documento %s: %w", id, err)
	}
	return doc, nil
}

// UpdateDocument replaces the sheets of a document after user edits.
func (svc *service) UpdateDocument(ctx context.Context, id string, sheets domain.SheetCollection) (*domain.Document, error) {
	if len(sheets) == 0 {
		return nil, domain.ErrMissingSheets
	}
	doc, err := svc.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar documento %s: %w", id, err)
	}
	doc.Sheets = sheets
	doc.UpdatedAt = svc.now().UTC()
	if err := svc.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("falha ao salvar documento %s: %w", id, err)
	}
	return doc, nil
}

// DeleteSheet removes the sheet at index from the company's document and
// renumbers the remaining sheets.
func (svc *service) DeleteSheet(ctx context.Context, companyID string, index int) (domain.SheetCollection, error) {
	doc, err := svc.store.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar documento da empresa %s: %w", companyID, err)
	}
	if index < 0 || index >= len(doc.Sheets) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSheetIndex, index)
	}
	sheets := make(domain.SheetCollection, 0, len(doc.Sheets)-1)
	sheets = append(sheets, doc.Sheets[:index]...)
	sheets = append(sheets, doc.Sheets[index+1:]...)
	for i := range sheets {
		sheets[i].Order = i
	}
	doc.Sheets = sheets
	doc.UpdatedAt = svc.now().UTC()
	if err := svc.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("falha ao salvar documento: %w", err)
	}
	return sheets, nil
}

// ExportText renders every file back to ledger text and packages the results
// in one zip archive.
func (svc *service) ExportText(files []ExportFile) ([]byte, error) {
	if len(files) == 0 {
		return nil, domain.ErrEmptyRequest
	}
	var artifacts []export.Artifact
	for _, f := range files {
		out, err := svc.ExportTextFiles(f)
		if err != nil {
			return nil, fmt.Errorf("falha ao exportar arquivo %s: %w", export.TextFileName(f.FileName), err)
		}
		artifacts = append(artifacts, out...)
	}
	return export.Zip(artifacts)
}

// ExportTextFiles renders one file to ledger text. A file split by
// provenance yields one artifact per source file.
func (svc *service) ExportTextFiles(file ExportFile) ([]export.Artifact, error) {
	if len(file.Sheets) == 0 {
		return nil, domain.ErrMissingSheets
	}
	buckets, err := projection.Invert(file.Sheets, projection.InvertOptions{
		SelectedBlocks:    file.SelectedBlocks,
		SplitByProvenance: file.SplitByProvenance,
	})
	if err != nil {
		return nil, err
	}
	return export.TextFiles(buckets, file.FileName, svc.exportEncoding)
}

func (svc *service) ExportCSV(file ExportFile) ([]byte, error) {
	if len(file.Sheets) == 0 {
		return nil, domain.ErrMissingSheets
	}
	return export.CSV(file.Sheets, file.SelectedBlocks)
}

func (svc *service) ExportWorkbook(file ExportFile) ([]byte, error) {
	if len(file.Sheets) == 0 {
		return nil, domain.ErrMissingSheets
	}
	return export.Workbook(file.Sheets, file.SelectedBlocks)
}

func (svc *service) ImportWorkbook(r io.Reader, filename string) (domain.SheetCollection, error) {
	return export.ReadWorkbook(r, filename)
}

// Codes returns the known record codes in registry order.
func (svc *service) Codes() []string {
	return svc.registry.Codes()
}
