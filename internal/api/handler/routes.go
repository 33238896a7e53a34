package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator, limiter *middleware.IPRateLimiter) []router.Route {
	limited := middlewares{middleware.RateLimit(limiter)}

	return []router.Route{
		{
			Path:        "/v1/auth/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/auth/refresh",
			Method:      http.MethodPost,
			Handler:     Refresh(service),
			Middlewares: limited,
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	authenticated := middlewares{middleware.AuthenticatedOnly(service)}
	admin := middlewares{middleware.AuthenticatedOnly(service), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateUser(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: admin,
		},
	}
}

func Facebook(auth authenticating.Authenticator, service advertising.Advertiser) []router.Route {
	authenticated := middlewares{middleware.AuthenticatedOnly(auth)}
	admin := middlewares{middleware.AuthenticatedOnly(auth), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/facebook/auth/status",
			Method:      http.MethodGet,
			Handler:     FacebookAuthStatus(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/facebook/auth/exchange-token",
			Method:      http.MethodPost,
			Handler:     ExchangeToken(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/facebook/auth/exchange-code",
			Method:      http.MethodPost,
			Handler:     ExchangeCode(service),
			Middlewares: admin,
		},
		{
			Path:        "/v1/facebook/ad-accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/facebook/ad-accounts/:account_id/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaigns(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/facebook/ad-accounts/:account_id/objectives",
			Method:      http.MethodGet,
			Handler:     GetObjectives(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/facebook/ad-accounts/:account_id/campaigns/:campaign_id/adsets",
			Method:      http.MethodGet,
			Handler:     GetAdSets(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/facebook/adsets/:adset_id/ads",
			Method:      http.MethodGet,
			Handler:     GetAds(service),
			Middlewares: authenticated,
		},
	}
}

func Telegram(auth authenticating.Authenticator, service notifying.Notifier) []router.Route {
	authenticated := middlewares{middleware.AuthenticatedOnly(auth)}
	admin := middlewares{middleware.AuthenticatedOnly(auth), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/telegram/register",
			Method:      http.MethodGet,
			Handler:     TelegramRegister(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/telegram/logout",
			Method:      http.MethodDelete,
			Handler:     TelegramLogout(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/telegram/chat_id",
			Method:      http.MethodGet,
			Handler:     TelegramChatID(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/telegram/daily",
			Method:      http.MethodPut,
			Handler:     TelegramDaily(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/telegram/broadcast",
			Method:      http.MethodPost,
			Handler:     TelegramBroadcast(service),
			Middlewares: admin,
		},
	}
}

func Cron(auth authenticating.Authenticator, services CronJobServices) []router.Route {
	admin := middlewares{middleware.AuthenticatedOnly(auth), middleware.AdminOnly()}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: admin,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: admin,
		},
	}
}
