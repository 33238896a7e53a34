package notifying

import (
	"errors"
	"fmt"
)

var (
	ErrTelegramNotLinked = errors.New("telegram não conectado, conecte o telegram primeiro")
	ErrInvalidLocale     = errors.New("idioma inválido, use ua ou ru")
	ErrSendFailed        = errors.New("falha ao enviar mensagem pelo telegram")
)

// NotifyingError carrega o código da API junto do erro base
type NotifyingError struct {
	Err     error
	Code    string
	Details string
}

func (e *NotifyingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *NotifyingError) Unwrap() error {
	return e.Err
}

func NewNotifyingError(baseErr error, code string, details string) *NotifyingError {
	return &NotifyingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
