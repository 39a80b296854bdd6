package sheetsync

import (
	"errors"

	"github.com/vfg2006/campaign-sheet-sync/pkg/apiErrors"
)

// Erros exibidos diretamente ao usuário; as mensagens já estão localizadas
var (
	ErrDownload               = errors.New("Falha ao baixar planilha. Verifique se é pública.")
	ErrEmptyDocument          = errors.New("Planilha vazia ou formato inválido")
	ErrMissingHeader          = errors.New("Colunas não encontradas (Day, Amount Spent, Leads)")
	ErrMissingRequiredColumns = errors.New("Colunas obrigatórias faltando: Day, Amount Spent")
	ErrEmptyResult            = errors.New("Nenhum dado válido encontrado na planilha.")
	ErrStore                  = errors.New("Erro ao acessar o banco de dados")

	ErrCampaignNotFound       = errors.New("Campanha não encontrada")
	ErrMissingSpreadsheetLink = errors.New("Nenhum link de planilha configurado")
	ErrSyncInProgress         = errors.New("Sincronização já em andamento para esta campanha")
)

var errorCodes = map[error]string{
	ErrDownload:               apiErrors.ErrSpreadsheetDownload,
	ErrEmptyDocument:          apiErrors.ErrSpreadsheetEmpty,
	ErrMissingHeader:          apiErrors.ErrSpreadsheetHeader,
	ErrMissingRequiredColumns: apiErrors.ErrSpreadsheetColumns,
	ErrEmptyResult:            apiErrors.ErrSpreadsheetNoData,
	ErrStore:                  apiErrors.ErrDatabaseOperation,
	ErrCampaignNotFound:       apiErrors.ErrCampaignNotFound,
	ErrMissingSpreadsheetLink: apiErrors.ErrSpreadsheetLinkMissing,
	ErrSyncInProgress:         apiErrors.ErrSyncInProgress,
}

// SyncError carrega o tipo do erro, a causa original e a etapa em que a sincronização parou
type SyncError struct {
	Err        error  // Erro base (um dos sentinelas acima)
	Cause      error  // Erro original, quando houver
	Code       string // Código de erro para API
	Stage      State  // Etapa em que ocorreu a falha
	CampaignID string
}

// Error retorna a mensagem para o usuário. Erros do banco são repassados sem alteração.
func (e *SyncError) Error() string {
	if errors.Is(e.Err, ErrStore) && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newSyncError(err error, cause error, stage State, campaignID string) *SyncError {
	code, ok := errorCodes[err]
	if !ok {
		code = apiErrors.ErrInternalServer
	}

	return &SyncError{
		Err:        err,
		Cause:      cause,
		Code:       code,
		Stage:      stage,
		CampaignID: campaignID,
	}
}

// Code devolve o código de API do erro, ou SRV_001 quando não é um erro de sincronização
func Code(err error) string {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Code
	}
	return apiErrors.ErrInternalServer
}
