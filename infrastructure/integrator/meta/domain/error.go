package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError contém os detalhes de erro da Graph API
type APIError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	StatusCode   int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error (status %d, code %d, subcode %d): %s", e.StatusCode, e.Code, e.ErrorSubcode, e.Message)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}
