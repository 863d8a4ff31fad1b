package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrOutOfRange       = "VAL_004" // Valor fora do intervalo permitido
	ErrNotFound         = "VAL_005" // Rota não encontrada
	ErrMethodNotAllowed = "VAL_006" // Método não permitido

	// Erros de dados (3000-3999)
	ErrDatasetNotLoaded = "DATA_001" // Planilha ainda não carregada
	ErrDatasetReload    = "DATA_002" // Recarga da planilha já em andamento

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrRendering      = "SRV_002" // Erro ao gerar gráfico ou planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrOutOfRange:       http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrDatasetNotLoaded: http.StatusServiceUnavailable,
	ErrDatasetReload:    http.StatusConflict,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrRendering:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
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
