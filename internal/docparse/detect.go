package docparse

import (
	"bytes"
	"strings"
)

// FileType identifies a supported procurement document format.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDocx FileType = "docx"
	FileTypeXlsx FileType = "xlsx"
	FileTypeText FileType = "txt"
)

var xlsxContentTypes = []string{
	"data:application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

var docxContentTypes = []string{
	"data:application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DetectFileType determines the document format from the filename extension,
// falling back to content signatures. Anything unrecognized is treated as
// plain text.
func DetectFileType(filename string, content []byte) FileType {
	if filename != "" {
		if idx := strings.LastIndex(filename, "."); idx >= 0 {
			switch strings.ToLower(filename[idx+1:]) {
			case "pdf":
				return FileTypePDF
			case "docx":
				return FileTypeDocx
			case "xlsx", "xls":
				return FileTypeXlsx
			case "txt":
				return FileTypeText
			}
		}
	}

	if bytes.HasPrefix(content, []byte("%PDF")) {
		return FileTypePDF
	}
	for _, prefix := range xlsxContentTypes {
		if bytes.HasPrefix(content, []byte(prefix)) {
			return FileTypeXlsx
		}
	}
	for _, prefix := range docxContentTypes {
		if bytes.HasPrefix(content, []byte(prefix)) {
			return FileTypeDocx
		}
	}
	// ZIP signature without a filename hint: OOXML container, assume a
	// spreadsheet since that is the only ZIP format we extract ourselves.
	if bytes.HasPrefix(content, []byte("PK")) {
		return FileTypeXlsx
	}

	return FileTypeText
}
