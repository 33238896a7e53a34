package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, params domain.UserListParams) (*domain.UsersPage, error)
	CreateUser(ctx context.Context, creator *domain.User, req domain.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, req domain.UpdateUserRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, requester *domain.User, targetUserID, currentPassword, newPassword string) error
	GeneratePassword(ctx context.Context, requester *domain.User, targetUserID string) (string, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg config.Auth) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Login valida usuário e senha. Usuário inexistente, inativo ou senha errada
// devolvem o mesmo erro.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil || !user.IsActive {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Usuário ou senha incorretos")
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithField("user_id", user.ID).Info("auth: login realizado")

	return pair, nil
}

// Refresh troca um refresh token válido por um novo par de tokens
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != domain.TokenTypeRefresh {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token não é do tipo refresh")
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID())
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil || !user.IsActive {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Usuário inexistente ou inativo")
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return pair, nil
}

// ValidateToken aceita apenas access tokens
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != domain.TokenTypeAccess {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token não é do tipo access")
	}

	return claims, nil
}

func (s *Service) parse(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UserID() == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) issueTokenPair(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.sign(user.ID, domain.TokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(user.ID, domain.TokenTypeRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		TokenType:        "bearer",
		ExpiresIn:        int64(s.cfg.AccessTokenTTL.Seconds()),
		RefreshExpiresIn: int64(s.cfg.RefreshTokenTTL.Seconds()),
	}, nil
}

func (s *Service) sign(userID string, tokenType domain.TokenType, ttl time.Duration) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("auth: failed to get user")
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, params domain.UserListParams) (*domain.UsersPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}
	params.UsernameSearch = strings.TrimSpace(params.UsernameSearch)

	users, total, err := s.userRepo.ListUsers(ctx, params)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	items := make([]*domain.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, user.ToResponse())
	}

	return domain.NewUsersPage(items, total, params), nil
}

// CreateUser cria um usuário comum vinculado ao admin que o criou
func (s *Service) CreateUser(ctx context.Context, creator *domain.User, req domain.CreateUserRequest) (*domain.User, error) {
	if creator == nil || !creator.IsAdmin {
		return nil, NewAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, "")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if err := s.ValidatePasswordStrength(req.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, err.Error())
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Usuário já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	creatorID := creator.ID
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
		AdAccountID:  normalizeAccountID(req.AdAccountID),
		CreatedByID:  &creatorID,
		Locale:       domain.LocaleUA,
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, req domain.UpdateUserRequest) (*domain.User, error) {
	if req.ID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	user, err := s.GetUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	user.AdAccountID = normalizeAccountID(req.AdAccountID)

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	return user, nil
}

// ChangePassword troca a senha do próprio usuário (exige a senha atual) ou,
// para admins, de qualquer usuário.
func (s *Service) ChangePassword(ctx context.Context, requester *domain.User, targetUserID, currentPassword, newPassword string) error {
	self := requester != nil && requester.ID == targetUserID
	if !self && (requester == nil || !requester.IsAdmin) {
		return NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "")
	}

	user, err := s.GetUser(ctx, targetUserID)
	if err != nil {
		return err
	}

	if self {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			return NewUserAuthError(ErrPasswordMismatch, apiErrors.ErrInvalidCredentials, user.ID, "")
		}
		if currentPassword == newPassword {
			return NewUserAuthError(ErrSamePassword, apiErrors.ErrWeakPassword, user.ID, "")
		}
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, user.ID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return nil
}

// GeneratePassword gera uma senha forte para o usuário alvo. Apenas admins.
func (s *Service) GeneratePassword(ctx context.Context, requester *domain.User, targetUserID string) (string, error) {
	if requester == nil || !requester.IsAdmin {
		return "", NewAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, "")
	}

	targetUser, err := s.GetUser(ctx, targetUserID)
	if err != nil {
		return "", err
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, targetUser); err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return newPassword, nil
}

func normalizeAccountID(accountID *string) *string {
	if accountID == nil {
		return nil
	}

	trimmed := strings.TrimPrefix(strings.TrimSpace(*accountID), "act_")
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
