// Package textenc detects the byte encoding of uploaded ledger files and
// normalises them to UTF-8 lines.
package textenc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// SampleSize is the number of leading bytes inspected to guess the encoding.
const SampleSize = 4096

// Canonical is the name of the encoding every file is normalised to.
const Canonical = "utf-8"

const byteOrderMark = "\uFEFF"

// Result is a normalised file.
type Result struct {
	// Encoding is the name of the detected (or forced) source encoding.
	Encoding string
	Lines    []string
}

// Normalizer transcodes source files to UTF-8 and strips the line framing.
type Normalizer struct {
	sourceLabel string
	framing     string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSourceEncoding skips detection and decodes every file with the encoding
// registered under label (e.g. "iso-8859-1"). Unknown labels are ignored.
func WithSourceEncoding(label string) Option {
	return func(n *Normalizer) { n.sourceLabel = strings.TrimSpace(label) }
}

// WithFraming sets the characters stripped from both ends of every line.
func WithFraming(chars string) Option {
	return func(n *Normalizer) { n.framing = chars }
}

// New creates a Normalizer stripping "|" framing by default.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{framing: "|"}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Detect guesses the encoding of a leading sample. A sample that is valid
// UTF-8 (ignoring a rune cut at the sample boundary) is reported as UTF-8, so
// pure ASCII samples never fall back to a single-byte guess that would
// mis-decode accents found further down. Other samples go through the charset
// sniffer.
func (n *Normalizer) Detect(sample []byte) (encoding.Encoding, string) {
	if n.sourceLabel != "" {
		if e, name := charset.Lookup(n.sourceLabel); e != nil {
			return e, name
		}
	}
	if utf8.Valid(trimPartialRune(sample)) {
		return unicode.UTF8, Canonical
	}
	e, name, _ := charset.DetermineEncoding(sample, "text/plain")
	return e, name
}

// Normalize reads the whole source, decoding permissively: undecodable byte
// sequences are dropped, never reported.
func (n *Normalizer) Normalize(r io.Reader) (*Result, error) {
	br := bufio.NewReaderSize(r, SampleSize)
	sample, err := br.Peek(SampleSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("erro ao ler amostra do arquivo: %w", err)
	}

	e, name := n.Detect(sample)
	var t transform.Transformer
	if name == Canonical {
		t = transform.Chain(unicode.UTF8BOM.NewDecoder(), runes.Remove(runes.Predicate(isRuneError)))
	} else {
		t = e.NewDecoder()
	}

	lines, err := n.readLines(transform.NewReader(br, t))
	if err != nil {
		return nil, err
	}
	return &Result{Encoding: name, Lines: lines}, nil
}

// NormalizeBytes is Normalize over an in-memory file.
func (n *Normalizer) NormalizeBytes(data []byte) (*Result, error) {
	return n.Normalize(bytes.NewReader(data))
}

func (n *Normalizer) readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, n.cleanLine(line, len(lines) == 0))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao decodificar arquivo: %w", err)
		}
	}
}

func (n *Normalizer) cleanLine(line string, first bool) string {
	if first {
		line = strings.TrimPrefix(line, byteOrderMark)
	}
	line = strings.TrimSpace(line)
	if n.framing != "" {
		line = strings.Trim(line, n.framing)
	}
	return line
}

// Encode converts UTF-8 text to the encoding registered under label.
// Characters the target cannot represent are replaced. An empty label or
// UTF-8 returns the text unchanged.
func Encode(text, label string) ([]byte, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return []byte(text), nil
	}
	e, name := charset.Lookup(label)
	if e == nil {
		return nil, fmt.Errorf("codificação desconhecida: %q", label)
	}
	if name == Canonical {
		return []byte(text), nil
	}
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(e.NewEncoder()), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar para %s: %w", name, err)
	}
	return out, nil
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(b); i++ {
		start := len(b) - i
		if !utf8.RuneStart(b[start]) {
			continue
		}
		if !utf8.FullRune(b[start:]) {
			return b[:start]
		}
		return b
	}
	return b
}

func isRuneError(r rune) bool {
	return r == utf8.RuneError
}
