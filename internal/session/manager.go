package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	errMalformedToken = errors.New("token malformado")
)

type Phase int

const (
	LoggedOut Phase = iota
	Restoring
	LoggedIn
)

func (p Phase) String() string {
	switch p {
	case Restoring:
		return "restoring"
	case LoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}

// ProfileFetcher busca o perfil do usuário dono da sessão
type ProfileFetcher interface {
	GetUserByID(ctx context.Context, id string) (*domain.UserResponse, error)
}

// State é a fotografia pública da sessão
type State struct {
	AccessToken     string
	RefreshToken    string
	UserID          string
	User            *domain.UserResponse
	IsAuthenticated bool
	ExpiresAt       time.Time
}

// Manager controla o ciclo de vida da sessão. Todas as mutações passam pelo mutex,
// então existe no máximo um escritor por vez.
type Manager struct {
	mu     sync.Mutex
	store  TokenStore
	phase  Phase
	state  State
	parser *jwt.Parser
}

func NewManager(store TokenStore) *Manager {
	return &Manager{
		store:  store,
		phase:  LoggedOut,
		parser: jwt.NewParser(),
	}
}

// SetTokens grava os tokens e marca a sessão como autenticada. Se o access token
// não puder ser decodificado a sessão continua autenticada, sem UserID.
func (m *Manager) SetTokens(ctx context.Context, accessToken, refreshToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.persist(ctx, AccessTokenKey, accessToken)
	m.persist(ctx, RefreshTokenKey, refreshToken)

	previousUserID := m.state.UserID

	m.state.AccessToken = accessToken
	m.state.RefreshToken = refreshToken
	m.state.IsAuthenticated = true
	m.state.UserID = ""
	m.state.ExpiresAt = time.Time{}

	claims, err := m.decode(accessToken)
	if err != nil {
		logrus.WithError(err).Warn("session: access token could not be decoded, user id unknown")
	} else {
		m.state.UserID = claims.Subject
		m.state.ExpiresAt = expiresAt(claims)
	}

	if m.state.UserID == "" || m.state.UserID != previousUserID {
		m.state.User = nil
	}

	m.phase = LoggedIn
}

// LoadFromStorage tenta restaurar a sessão a partir do armazenamento. Tokens
// expirados são restaurados mesmo assim; o access token é renovado na camada de API.
func (m *Manager) LoadFromStorage(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phase = Restoring

	accessToken, okAccess := m.read(ctx, AccessTokenKey)
	refreshToken, okRefresh := m.read(ctx, RefreshTokenKey)
	if !okAccess || !okRefresh {
		m.reset()
		return false
	}

	claims, err := m.decode(accessToken)
	if err != nil {
		logrus.WithError(err).Warn("session: stored access token is invalid, clearing storage")
		m.erase(ctx)
		m.reset()
		return false
	}

	m.state = State{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		UserID:          claims.Subject,
		IsAuthenticated: true,
		ExpiresAt:       expiresAt(claims),
	}
	m.phase = LoggedIn

	if m.isExpired(time.Now()) {
		logrus.WithField("expires_at", m.state.ExpiresAt).Info("session: restored session with expired access token")
	}

	return true
}

// ClearAuth apaga os tokens e volta ao estado inicial. Pode ser chamado várias vezes.
func (m *Manager) ClearAuth(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.erase(ctx)
	m.reset()
}

// SetUser associa o perfil à sessão. Ignorado quando não há sessão ativa.
func (m *Manager) SetUser(user *domain.UserResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != LoggedIn {
		return
	}

	m.state.User = user
}

// Bootstrap restaura a sessão e carrega o perfil do usuário. Falha ao buscar o
// perfil encerra a sessão.
func (m *Manager) Bootstrap(ctx context.Context, fetcher ProfileFetcher) bool {
	if !m.LoadFromStorage(ctx) {
		return false
	}

	state := m.State()
	if state.UserID == "" || state.User != nil {
		return state.IsAuthenticated
	}

	profile, err := fetcher.GetUserByID(ctx, state.UserID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", state.UserID).Warn("session: failed to fetch profile, clearing session")
		m.ClearAuth(ctx)
		return false
	}

	m.SetUser(profile)

	return m.IsAuthenticated()
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Manager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.phase
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.IsAuthenticated
}

func (m *Manager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.User != nil && m.state.User.IsAdmin
}

// IsExpired indica se o access token já passou do "exp" no instante informado
func (m *Manager) IsExpired(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isExpired(now)
}

func (m *Manager) isExpired(now time.Time) bool {
	return !m.state.ExpiresAt.IsZero() && now.After(m.state.ExpiresAt)
}

// decode lê só o payload do JWT, sem validar cabeçalho nem assinatura
func (m *Manager) decode(token string) (*domain.Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errMalformedToken
	}

	payload, err := m.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedToken, err)
	}

	claims := &domain.Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedToken, err)
	}
	return claims, nil
}

func (m *Manager) reset() {
	m.state = State{}
	m.phase = LoggedOut
}

func (m *Manager) read(ctx context.Context, key string) (string, bool) {
	value, ok, err := m.store.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("session: failed to read token")
		return "", false
	}
	return value, ok && value != ""
}

func (m *Manager) persist(ctx context.Context, key, value string) {
	if err := m.store.Set(ctx, key, value); err != nil {
		logrus.WithError(err).WithField("key", key).Error("session: failed to persist token")
	}
}

func (m *Manager) erase(ctx context.Context) {
	for _, key := range []string{AccessTokenKey, RefreshTokenKey} {
		if err := m.store.Delete(ctx, key); err != nil {
			logrus.WithError(err).WithField("key", key).Error("session: failed to delete token")
		}
	}
}

func expiresAt(claims *domain.Claims) time.Time {
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
