package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const maxFileSize = 10 << 20 // 10 MB

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrEmptyFile       = errors.New("file is empty")
	ErrContentMismatch = errors.New("file content does not match its extension")
	ErrTooLittleText   = errors.New("resume contains too little readable text")
	ErrOCRUnavailable  = errors.New("ocr binary not available")
	ErrNoTextExtracted = errors.New("no text could be extracted")
)

var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".png": {}, ".jpg": {}, ".jpeg": {},
	".bmp": {}, ".tiff": {}, ".tif": {}, ".docx": {},
}

type magicNumber struct {
	prefix []byte
	exts   []string
}

var magicNumbers = []magicNumber{
	{prefix: []byte("%PDF"), exts: []string{".pdf"}},
	{prefix: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, exts: []string{".png"}},
	{prefix: []byte{0xff, 0xd8, 0xff}, exts: []string{".jpg", ".jpeg"}},
	{prefix: []byte("BM"), exts: []string{".bmp"}},
	{prefix: []byte("II*\x00"), exts: []string{".tiff", ".tif"}},
	{prefix: []byte("MM\x00*"), exts: []string{".tiff", ".tif"}},
	{prefix: []byte("PK\x03\x04"), exts: []string{".docx"}},
}

// Validate checks extension, size and the leading magic number before
// any parsing happens. A mismatched header fails even when the
// extension is allowed.
func Validate(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return ErrEmptyFile
	}
	if info.Size() > maxFileSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	header = header[:n]

	for _, m := range magicNumbers {
		if !bytes.HasPrefix(header, m.prefix) {
			continue
		}
		for _, allowed := range m.exts {
			if allowed == ext {
				return nil
			}
		}
		return fmt.Errorf("%w: header says %s", ErrContentMismatch, m.exts[0])
	}
	return fmt.Errorf("%w: unrecognized header", ErrContentMismatch)
}
