package parser

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
)

// rasterDPI matches the resolution scanned resumes are rendered at
// before recognition. Higher values help tesseract but slow the run.
const rasterDPI = "200"

// OCR shells out to tesseract for image recognition and to pdftoppm to
// rasterize scanned PDFs page by page. Both binaries are optional at
// install time, so every call reports ErrOCRUnavailable when the tool
// is missing instead of failing at startup.
type OCR struct {
	cfg config.OCRConfig
}

func NewOCR(cfg config.OCRConfig) *OCR {
	return &OCR{cfg: cfg}
}

// ImageText recognizes a single image file. Page segmentation mode 6
// (uniform block of text) suits the dense single-column layout of most
// resumes.
func (o *OCR) ImageText(ctx context.Context, path string) (string, error) {
	binary, err := exec.LookPath(o.cfg.Binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrOCRUnavailable, o.cfg.Binary)
	}

	cmd := exec.CommandContext(ctx, binary, path, "stdout", "--oem", "3", "--psm", "6", "-l", o.cfg.Languages)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract %s: %v: %s", filepath.Base(path), err, firstLine(stderr.String()))
	}
	return string(out), nil
}

// PDFText rasterizes every page of a scanned PDF into a temp directory
// and recognizes them in page order.
func (o *OCR) PDFText(ctx context.Context, path string) (string, error) {
	if _, err := exec.LookPath(o.cfg.Binary); err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrOCRUnavailable, o.cfg.Binary)
	}
	pdftoppm, err := exec.LookPath("pdftoppm")
	if err != nil {
		return "", fmt.Errorf("%w: pdftoppm not found", ErrOCRUnavailable)
	}

	dir, err := os.MkdirTemp("", "resume-ocr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	cmd := exec.CommandContext(ctx, pdftoppm, "-png", "-r", rasterDPI, path, filepath.Join(dir, "page"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftoppm %s: %v: %s", filepath.Base(path), err, firstLine(stderr.String()))
	}

	pages, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no pages rendered from %s", ErrNoTextExtracted, filepath.Base(path))
	}
	sort.Strings(pages)

	var b strings.Builder
	for _, page := range pages {
		text, err := o.ImageText(ctx, page)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
