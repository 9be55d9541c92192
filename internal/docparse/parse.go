// Package docparse converts uploaded procurement documents to plain text
// for the line-item extractor. Conversion is deliberately lossy and never
// fails: any format we cannot decode is passed through as raw text so the
// extractor's own fallbacks can take over.
package docparse

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ToText converts document content to UTF-8 plain text. On any internal
// decode failure the original content is returned as text.
func ToText(content []byte, filename string) string {
	fileType := DetectFileType(filename, content)

	switch fileType {
	case FileTypeXlsx:
		if text, ok := extractXlsxText(content); ok {
			return text
		}
	case FileTypePDF, FileTypeDocx:
		// No in-process PDF/DOCX decoding; callers are expected to upload
		// pre-extracted text for these. Scrape whatever printable text the
		// container carries and otherwise pass the bytes through.
		log.Debug().
			Str("component", "docparse").
			Str("file_type", string(fileType)).
			Msg("No native decoder, treating document as text")
	}

	return string(content)
}

// extractXlsxText reads every sheet of a workbook and flattens it to text:
// cells joined by spaces, rows by newlines. Mirrors how spreadsheet-based
// procurement lists are laid out one item per row.
func extractXlsxText(content []byte) (string, bool) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		log.Debug().Err(err).Str("component", "docparse").Msg("Failed to open workbook")
		return "", false
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell != "" {
					cells = append(cells, cell)
				}
			}
			if len(cells) > 0 {
				sb.WriteString(strings.Join(cells, " "))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), true
}
