package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const validPassword = "Senha@123"

var testAuthConfig = config.Auth{
	Secret:          "test-secret",
	AccessTokenTTL:  30 * time.Minute,
	RefreshTokenTTL: 24 * time.Hour,
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewService(repo, testAuthConfig), repo
}

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperado AuthError, recebido %v", err)
	return authErr.Code
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	active := &domain.User{ID: "u-1", Username: "ana", PasswordHash: hashed(t, validPassword), IsActive: true}
	inactive := &domain.User{ID: "u-2", Username: "bia", PasswordHash: hashed(t, validPassword), IsActive: false}

	tests := []struct {
		name     string
		username string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "credenciais válidas",
			username: " ana ",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "ana").Return(active, nil)
			},
		},
		{
			name:     "usuário inexistente",
			username: "zé",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "zé").Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "usuário inativo recebe o mesmo erro",
			username: "bia",
			password: validPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "bia").Return(inactive, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "senha incorreta",
			username: "ana",
			password: "Outra@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(ctx, "ana").Return(active, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "dados ausentes",
			username: "",
			password: "",
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			pair, err := service.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "bearer", pair.TokenType)
			assert.Equal(t, int64(1800), pair.ExpiresIn)
			assert.Equal(t, int64(86400), pair.RefreshExpiresIn)

			claims, err := service.ValidateToken(pair.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "u-1", claims.UserID())
			assert.Equal(t, domain.TokenTypeAccess, claims.Type)
		})
	}
}

func TestLogin_InvalidCredentialsCode(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "zé").Return(nil, nil)

	_, err := service.Login(context.Background(), "zé", validPassword)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, authCode(t, err))
	assert.True(t, IsCredentialsError(err))
}

func TestValidateToken(t *testing.T) {
	service, _ := newTestService(t)
	user := &domain.User{ID: "u-1"}

	pair, err := service.issueTokenPair(user)
	require.NoError(t, err)

	t.Run("refresh token não é aceito como access", func(t *testing.T) {
		_, err := service.ValidateToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		other := NewService(nil, config.Auth{Secret: "outro", AccessTokenTTL: time.Minute})
		forged, err := other.sign("u-1", domain.TokenTypeAccess, time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token expirado", func(t *testing.T) {
		expired := NewService(nil, testAuthConfig)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := expired.sign("u-1", domain.TokenTypeAccess, time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Equal(t, apiErrors.ErrExpiredToken, authCode(t, err))
	})

	t.Run("algoritmo diferente de HMAC", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{
			Type:             domain.TokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
		})
		unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("emite novo par", func(t *testing.T) {
		service, repo := newTestService(t)
		pair, err := service.issueTokenPair(&domain.User{ID: "u-1"})
		require.NoError(t, err)

		repo.EXPECT().GetUserByID(ctx, "u-1").Return(&domain.User{ID: "u-1", IsActive: true}, nil)

		refreshed, err := service.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.AccessToken, refreshed.AccessToken)
	})

	t.Run("access token é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)
		pair, err := service.issueTokenPair(&domain.User{ID: "u-1"})
		require.NoError(t, err)

		_, err = service.Refresh(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("usuário inativo", func(t *testing.T) {
		service, repo := newTestService(t)
		pair, err := service.issueTokenPair(&domain.User{ID: "u-1"})
		require.NoError(t, err)

		repo.EXPECT().GetUserByID(ctx, "u-1").Return(&domain.User{ID: "u-1", IsActive: false}, nil)

		_, err = service.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestListUsers(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		ListUsers(ctx, domain.UserListParams{Page: 2, PageSize: 100, UsernameSearch: "an"}).
		Return([]*domain.User{{ID: "u-1", Username: "ana"}}, 101, nil)

	page, err := service.ListUsers(ctx, domain.UserListParams{Page: 2, PageSize: 500, UsernameSearch: " an "})
	require.NoError(t, err)

	assert.Equal(t, 101, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ana", page.Items[0].Username)
}

func TestListUsers_Defaults(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().
		ListUsers(gomock.Any(), domain.UserListParams{Page: 1, PageSize: defaultPageSize}).
		Return(nil, 0, nil)

	page, err := service.ListUsers(context.Background(), domain.UserListParams{})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: "admin-1", IsAdmin: true}

	t.Run("cria usuário vinculado ao admin", func(t *testing.T) {
		service, repo := newTestService(t)
		account := " act_123 "

		repo.EXPECT().GetUserByUsername(ctx, "joao").Return(nil, nil)
		repo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				user.ID = "u-9"
				return user, nil
			})

		user, err := service.CreateUser(ctx, admin, domain.CreateUserRequest{
			Username:    "joao",
			Password:    validPassword,
			AdAccountID: &account,
		})
		require.NoError(t, err)

		assert.Equal(t, "u-9", user.ID)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsAdmin)
		assert.Equal(t, "admin-1", *user.CreatedByID)
		assert.Equal(t, "123", *user.AdAccountID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(validPassword)))
	})

	t.Run("usuário duplicado", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByUsername(ctx, "joao").Return(&domain.User{ID: "u-1"}, nil)

		_, err := service.CreateUser(ctx, admin, domain.CreateUserRequest{Username: "joao", Password: validPassword})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, admin, domain.CreateUserRequest{Username: "joao", Password: "fraca"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("não admin", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, &domain.User{ID: "u-1"}, domain.CreateUserRequest{Username: "joao", Password: validPassword})
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("atualiza a conta de anúncios", func(t *testing.T) {
		service, repo := newTestService(t)
		account := "555"

		repo.EXPECT().GetUserByID(ctx, "u-1").Return(&domain.User{ID: "u-1"}, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		user, err := service.UpdateUser(ctx, domain.UpdateUserRequest{ID: "u-1", AdAccountID: &account})
		require.NoError(t, err)
		assert.Equal(t, "555", *user.AdAccountID)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(ctx, "u-404").Return(nil, nil)

		_, err := service.UpdateUser(ctx, domain.UpdateUserRequest{ID: "u-404"})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, apiErrors.ErrUserNotFound, authCode(t, err))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("próprio usuário com senha atual correta", func(t *testing.T) {
		service, repo := newTestService(t)
		user := &domain.User{ID: "u-1", PasswordHash: hashed(t, validPassword)}

		repo.EXPECT().GetUserByID(ctx, "u-1").Return(user, nil)
		repo.EXPECT().UpdateUser(ctx, user).Return(nil)

		err := service.ChangePassword(ctx, &domain.User{ID: "u-1"}, "u-1", validPassword, "Nova#Senha9")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova#Senha9")))
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(ctx, "u-1").Return(&domain.User{ID: "u-1", PasswordHash: hashed(t, validPassword)}, nil)

		err := service.ChangePassword(ctx, &domain.User{ID: "u-1"}, "u-1", "Errada@123", "Nova#Senha9")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("mesma senha", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(ctx, "u-1").Return(&domain.User{ID: "u-1", PasswordHash: hashed(t, validPassword)}, nil)

		err := service.ChangePassword(ctx, &domain.User{ID: "u-1"}, "u-1", validPassword, validPassword)
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("admin altera senha de outro usuário sem a senha atual", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(ctx, "u-2").Return(&domain.User{ID: "u-2", PasswordHash: hashed(t, validPassword)}, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		err := service.ChangePassword(ctx, &domain.User{ID: "admin", IsAdmin: true}, "u-2", "", "Nova#Senha9")
		assert.NoError(t, err)
	})

	t.Run("usuário comum não altera senha de outro", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.ChangePassword(ctx, &domain.User{ID: "u-1"}, "u-2", "", "Nova#Senha9")
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})
}

func TestGeneratePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("admin gera senha forte", func(t *testing.T) {
		service, repo := newTestService(t)
		target := &domain.User{ID: "u-2"}

		repo.EXPECT().GetUserByID(ctx, "u-2").Return(target, nil)
		repo.EXPECT().UpdateUser(ctx, target).Return(nil)

		password, err := service.GeneratePassword(ctx, &domain.User{ID: "admin", IsAdmin: true}, "u-2")
		require.NoError(t, err)

		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(password)))
	})

	t.Run("não admin", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GeneratePassword(ctx, &domain.User{ID: "u-1"}, "u-2")
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		password string
		valid    bool
	}{
		{"Senha@123", true},
		{"Ab1!", false},
		{"senha@123", false},
		{"SENHA@123", false},
		{"Senha@abc", false},
		{"Senha1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
