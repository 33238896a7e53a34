package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrNoAdminPrivileges     = errors.New("apenas administradores podem realizar esta ação")
	ErrUserAlreadyExists     = errors.New("usuário já existe")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")

	ErrWeakPassword     = errors.New("senha fraca")
	ErrPasswordMismatch = errors.New("senha atual incorreta")
	ErrSamePassword     = errors.New("nova senha deve ser diferente da atual")
)

// AuthError carrega o código da API junto do erro de domínio. UserID e Details são opcionais.
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica falha de login, seja usuário inexistente, inativo ou senha errada
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func NewAuthError(baseErr error, code, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code, userID, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
