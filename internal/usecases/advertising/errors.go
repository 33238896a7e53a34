package advertising

import (
	"errors"
	"fmt"
)

var (
	ErrFacebookNotConnected = errors.New("facebook não conectado, o admin precisa autenticar primeiro")
	ErrAccessDenied         = errors.New("acesso negado a esta conta de anúncios")
	ErrInvalidTimeRange     = errors.New("since must be less than or equal to until in time_range")
	ErrInvalidDate          = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrFacebookTokenExpired = errors.New("token do facebook expirado, reconecte a conta")
	ErrFacebookAPI          = errors.New("erro na API do facebook")
)

// AdvertisingError carrega o código da API junto do erro base
type AdvertisingError struct {
	Err     error
	Code    string
	Details string
}

func (e *AdvertisingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdvertisingError) Unwrap() error {
	return e.Err
}

func NewAdvertisingError(baseErr error, code string, details string) *AdvertisingError {
	return &AdvertisingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
