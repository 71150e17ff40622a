package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDocxText pulls the document body and flattens its text runs.
// GetContent returns word/document.xml markup, so the runs ("w:t"
// elements) are decoded out of it rather than returned as-is.
func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return flattenRuns(doc.Editable().GetContent())
}

func flattenRuns(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var b strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode docx body: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local != "t" {
				continue
			}
			var run string
			if err := decoder.DecodeElement(&run, &el); err != nil {
				continue
			}
			b.WriteString(run)
			b.WriteString(" ")
		case xml.EndElement:
			// paragraph boundaries keep the name heuristic line-aware
			if el.Name.Local == "p" {
				b.WriteString("\n")
			}
		}
	}

	return b.String(), nil
}
