package sheetclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetClient_Get(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		maxBytes  int64
		wantErr   string
		wantBytes int
	}{
		{
			name:      "sucesso",
			status:    http.StatusOK,
			body:      "Day,Amount\n",
			wantBytes: 11,
		},
		{
			name:    "planilha privada",
			status:  http.StatusUnauthorized,
			wantErr: "401",
		},
		{
			name:    "não encontrada",
			status:  http.StatusNotFound,
			wantErr: "404",
		},
		{
			name:     "excede o limite",
			status:   http.StatusOK,
			body:     strings.Repeat("a", 20),
			maxBytes: 10,
			wantErr:  ErrDocumentTooLarge.Error(),
		},
		{
			name:      "exatamente no limite",
			status:    http.StatusOK,
			body:      strings.Repeat("a", 10),
			maxBytes:  10,
			wantBytes: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithHTTP(server.Client(), tt.maxBytes)
			doc, err := client.Get(context.Background(), server.URL)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, doc.Body, tt.wantBytes)
			assert.Equal(t, server.URL, doc.URL)
		})
	}
}
