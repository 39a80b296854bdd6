package spreadsheetdomain

import (
	"bytes"
	"strings"
)

var zipSignature = []byte("PK\x03\x04")

// Document é o conteúdo bruto baixado da planilha
type Document struct {
	URL         string
	ContentType string
	Body        []byte
}

// IsXLSX indica se o documento é uma pasta de trabalho do Excel em vez de CSV
func (d *Document) IsXLSX() bool {
	if strings.Contains(strings.ToLower(d.ContentType), "spreadsheetml") {
		return true
	}
	return bytes.HasPrefix(d.Body, zipSignature)
}
