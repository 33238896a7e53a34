package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Locale string

const (
	LocaleUA Locale = "ua"
	LocaleRU Locale = "ru"
)

type User struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	PasswordHash         string    `json:"-"`
	IsActive             bool      `json:"is_active"`
	IsAdmin              bool      `json:"is_admin"`
	AdAccountID          *string   `json:"ad_account_id"`
	CreatedByID          *string   `json:"created_by_id"`
	TelegramChatID       *int64    `json:"telegram_chat_id"`
	TelegramUsername     *string   `json:"telegram_username"`
	TelegramToken        *string   `json:"telegram_token"`
	TelegramDailyEnabled bool      `json:"telegram_daily_enabled"`
	Locale               Locale    `json:"locale"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CanAccessAdAccount indica se o usuário pode consultar a conta de anúncios
func (u *User) CanAccessAdAccount(accountID string) bool {
	if u.IsAdmin {
		return true
	}
	return u.AdAccountID != nil && *u.AdAccountID == accountID
}

// FacebookOwnerID devolve o dono do token do Facebook usado pelo usuário:
// o próprio admin ou o admin que criou o usuário.
func (u *User) FacebookOwnerID() string {
	if u.IsAdmin {
		return u.ID
	}
	if u.CreatedByID != nil {
		return *u.CreatedByID
	}
	return ""
}

// ToResponse converte o usuário para o formato público da API
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		IsAdmin:          u.IsAdmin,
		AdAccountID:      u.AdAccountID,
		TelegramChatID:   u.TelegramChatID,
		TelegramUsername: u.TelegramUsername,
		TelegramToken:    u.TelegramToken,
	}
}

type UserResponse struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	IsAdmin          bool    `json:"is_admin"`
	AdAccountID      *string `json:"ad_account_id"`
	TelegramChatID   *int64  `json:"telegram_chat_id"`
	TelegramUsername *string `json:"telegram_username"`
	TelegramToken    *string `json:"telegram_token"`
}

type CreateUserRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	AdAccountID *string `json:"ad_account_id"`
}

type UpdateUserRequest struct {
	ID          string  `json:"-"`
	AdAccountID *string `json:"ad_account_id"`
}

type UserListParams struct {
	Page           int
	PageSize       int
	UsernameSearch string
}

// Offset calcula o deslocamento da página atual
func (p UserListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type UsersPage struct {
	Items      []*UserResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	HasNext    bool            `json:"has_next"`
	HasPrev    bool            `json:"has_prev"`
}

// NewUsersPage monta a página com os metadados de paginação
func NewUsersPage(items []*UserResponse, total int, params UserListParams) *UsersPage {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}

	if items == nil {
		items = []*UserResponse{}
	}

	return &UsersPage{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carrega o ID do usuário em "sub" e o tipo do token em "type"
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// UserID devolve o identificador do usuário presente no token
func (c *Claims) UserID() string {
	return c.Subject
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenPair struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}
