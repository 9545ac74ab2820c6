// Package parser turns a raw ledger file into rectangular tokenized lines and
// extracts the file's provenance.
package parser

import (
	"fmt"
	"io"

	"ledger-service/internal/core/registry"
	"ledger-service/internal/core/textenc"
	"ledger-service/internal/domain"

	"go.uber.org/zap"
)

// File is one parsed source file.
type File struct {
	Name       string
	Encoding   string
	Lines      []domain.TokenizedLine
	Width      int
	Skipped    int
	Provenance domain.FileProvenance
}

// Parser runs normalisation, tokenisation, column padding and provenance
// extraction for one file at a time. It holds no per-file state and can be
// shared between goroutines.
type Parser struct {
	normalizer *textenc.Normalizer
	tokenizer  *Tokenizer
	provenance *ProvenanceExtractor
	logger     *zap.Logger
}

// New creates a Parser.
func New(reg *registry.Registry, normalizer *textenc.Normalizer, tokenizer *Tokenizer, spec ProvenanceSpec, logger *zap.Logger) *Parser {
	if normalizer == nil {
		normalizer = textenc.New()
	}
	if tokenizer == nil {
		tokenizer = NewTokenizer(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		normalizer: normalizer,
		tokenizer:  tokenizer,
		provenance: NewProvenanceExtractor(reg, spec),
		logger:     logger,
	}
}

// Parse reads and parses one file.
func (p *Parser) Parse(name string, r io.Reader) (*File, error) {
	res, err := p.normalizer.Normalize(r)
	if err != nil {
		return nil, fmt.Errorf("falha ao normalizar arquivo %s: %w", name, err)
	}

	f := &File{Name: name, Encoding: res.Encoding}
	f.Lines = make([]domain.TokenizedLine, 0, len(res.Lines))
	for _, line := range res.Lines {
		tl, ok := p.tokenizer.Tokenize(line)
		if !ok {
			f.Skipped++
			continue
		}
		f.Lines = append(f.Lines, tl)
	}
	f.Width = PadColumns(f.Lines)
	f.Provenance = p.provenance.Extract(f.Lines)

	if f.Skipped > 0 {
		p.logger.Debug("linhas ignoradas por código de registro inválido",
			zap.String("file", name), zap.Int("skipped", f.Skipped))
	}
	p.logger.Info("arquivo SPED lido",
		zap.String("file", name),
		zap.String("encoding", f.Encoding),
		zap.Int("lines", len(f.Lines)),
		zap.Int("columns", f.Width))
	return f, nil
}
