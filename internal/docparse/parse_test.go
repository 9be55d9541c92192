package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// TestDetectFileType tests extension and signature detection.
func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		want     FileType
	}{
		{name: "pdf extension", filename: "order.pdf", want: FileTypePDF},
		{name: "docx extension", filename: "request.docx", want: FileTypeDocx},
		{name: "xlsx extension", filename: "list.xlsx", want: FileTypeXlsx},
		{name: "xls extension", filename: "list.xls", want: FileTypeXlsx},
		{name: "txt extension", filename: "notes.txt", want: FileTypeText},
		{name: "pdf signature without filename", content: []byte("%PDF-1.7 rest"), want: FileTypePDF},
		{name: "xlsx data url", content: []byte("data:application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;base64,AAAA"), want: FileTypeXlsx},
		{name: "docx data url", content: []byte("data:application/vnd.openxmlformats-officedocument.wordprocessingml.document;base64,AAAA"), want: FileTypeDocx},
		{name: "zip signature assumed xlsx", content: []byte("PK\x03\x04rest"), want: FileTypeXlsx},
		{name: "unknown defaults to text", filename: "README", content: []byte("hello"), want: FileTypeText},
		{name: "extension wins over signature", filename: "doc.pdf", content: []byte("PK\x03\x04"), want: FileTypePDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.filename, tt.content))
		})
	}
}

// TestToTextPlain verifies plain text passes through unchanged.
func TestToTextPlain(t *testing.T) {
	input := "Office Paper - Quantity: 100 reams\n- Pens (50 box)"
	assert.Equal(t, input, ToText([]byte(input), "request.txt"))
}

// TestToTextXlsx flattens a workbook to space-joined cells, one row per line.
func TestToTextXlsx(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Office Paper"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "100 reams"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Pens"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "50 box"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	text := ToText(buf.Bytes(), "order-list.xlsx")
	assert.Contains(t, text, "Office Paper 100 reams")
	assert.Contains(t, text, "Pens 50 box")
}

// TestToTextCorruptXlsx falls back to the raw bytes as text.
func TestToTextCorruptXlsx(t *testing.T) {
	content := []byte("not actually a workbook")
	assert.Equal(t, string(content), ToText(content, "broken.xlsx"))
}

// TestToTextPDFPassesThrough documents the no-decoder behavior for PDFs.
func TestToTextPDFPassesThrough(t *testing.T) {
	content := []byte("%PDF-1.7 some extracted text")
	assert.Equal(t, string(content), ToText(content, "scan.pdf"))
}
