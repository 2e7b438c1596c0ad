package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const StatusError = "error"

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrMissingToken          = "AUTH_001" // Token ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrRouteNotFound    = "VAL_002" // Rota inexistente
	ErrMethodNotAllowed = "VAL_003" // Método não suportado pela rota

	// Erros de dados
	ErrNoDataFound = "DATA_001" // Planilha sem dados para a consulta

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrCacheOperation  = "SRV_002" // Erro no backend de cache
	ErrExternalService = "SRV_003" // Provedor da planilha indisponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusForbidden,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrNoDataFound:           http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrCacheOperation:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP do código, 500 para códigos desconhecidos
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
		Status:  StatusError,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
