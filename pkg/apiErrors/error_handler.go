package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	ErrNotFound         = "HTTP_404" // Rota não encontrada
	ErrMethodNotAllowed = "HTTP_405" // Método não suportado pela rota

	// Erros de campanha (3000-3999)
	ErrCampaignNotFound = "CMP_001" // Campanha não encontrada

	// Erros de sincronização de planilha (4000-4999)
	ErrSpreadsheetDownload    = "SYNC_001" // Planilha inacessível
	ErrSpreadsheetEmpty       = "SYNC_002" // Planilha vazia ou ilegível
	ErrSpreadsheetHeader      = "SYNC_003" // Cabeçalho não encontrado
	ErrSpreadsheetColumns     = "SYNC_004" // Colunas obrigatórias ausentes
	ErrSpreadsheetNoData      = "SYNC_005" // Nenhuma linha válida
	ErrSyncInProgress         = "SYNC_006" // Sincronização já em andamento
	ErrSpreadsheetLinkMissing = "SYNC_007" // Campanha sem link de planilha

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrExpiredToken:           http.StatusUnauthorized,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrNotFound:               http.StatusNotFound,
	ErrMethodNotAllowed:       http.StatusMethodNotAllowed,
	ErrCampaignNotFound:       http.StatusNotFound,
	ErrSpreadsheetDownload:    http.StatusBadGateway,
	ErrSpreadsheetEmpty:       http.StatusUnprocessableEntity,
	ErrSpreadsheetHeader:      http.StatusUnprocessableEntity,
	ErrSpreadsheetColumns:     http.StatusUnprocessableEntity,
	ErrSpreadsheetNoData:      http.StatusUnprocessableEntity,
	ErrSyncInProgress:         http.StatusConflict,
	ErrSpreadsheetLinkMissing: http.StatusBadRequest,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
	ErrExternalService:        http.StatusBadGateway,
	ErrCommunication:          http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
