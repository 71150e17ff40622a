package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/resume"

	"github.com/rs/zerolog"
)

// minTextLength rejects extractions that cannot plausibly be a resume:
// a handful of OCR artifacts or an empty text layer.
const minTextLength = 50

// Parser turns a resume file into cleaned text plus contact details.
// PDFs read their text layer first and fall back to OCR when the layer
// is effectively empty (scanned documents).
type Parser struct {
	ocr    *OCR
	logger zerolog.Logger
}

func New(cfg config.OCRConfig, logger zerolog.Logger) *Parser {
	return &Parser{
		ocr:    NewOCR(cfg),
		logger: logger,
	}
}

func (p *Parser) Parse(ctx context.Context, path string) (*resume.Resume, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}

	var (
		raw string
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		raw, err = p.parsePDF(ctx, path)
	case ".docx":
		raw, err = extractDocxText(path)
	default: // images, already validated
		raw, err = p.ocr.ImageText(ctx, path)
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}

	cleaned := CleanText(raw)
	if len(cleaned) < minTextLength {
		return nil, fmt.Errorf("%w: %d chars", ErrTooLittleText, len(cleaned))
	}

	r := &resume.Resume{
		FilePath: path,
		RawText:  cleaned,
		ParsedAt: time.Now().UTC(),
	}
	// Contact details come from the pre-collapse text: the name
	// heuristic needs real line boundaries.
	extractContact(raw, r)

	p.logger.Info().
		Str("file", filepath.Base(path)).
		Int("chars", len(cleaned)).
		Msg("resume parsed")
	return r, nil
}

func (p *Parser) parsePDF(ctx context.Context, path string) (string, error) {
	text, err := extractPDFText(path)
	if err != nil {
		p.logger.Warn().Err(err).Msg("pdf text layer unreadable, trying ocr")
		return p.ocr.PDFText(ctx, path)
	}
	if len(CleanText(text)) < minTextLength {
		p.logger.Info().Msg("pdf text layer empty, treating as scanned document")
		ocrText, ocrErr := p.ocr.PDFText(ctx, path)
		if ocrErr != nil {
			if strings.TrimSpace(text) == "" {
				return "", ocrErr
			}
			return text, nil
		}
		return ocrText, nil
	}
	return text, nil
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// CleanText collapses whitespace and strips non-ASCII artifacts the way
// OCR output needs before dictionary scanning.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = nonASCIIRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
