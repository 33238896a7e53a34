package notifying

import (
	"strings"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const DefaultLocale = domain.LocaleUA

type messageKey string

const (
	msgAlreadyRegistered messageKey = "already_registered"
	msgUseLink           messageKey = "use_link"
	msgInvalidToken      messageKey = "invalid_token"
	msgSuccess           messageKey = "success"
	msgSaveError         messageKey = "save_error"
)

var messages = map[messageKey]map[domain.Locale]string{
	msgAlreadyRegistered: {
		domain.LocaleUA: "Ви вже зареєстровані!",
		domain.LocaleRU: "Вы уже зарегистрированы!",
	},
	msgUseLink: {
		domain.LocaleUA: "Для реєстрації використайте посилання з особистого кабінету.",
		domain.LocaleRU: "Для регистрации используйте ссылку из личного кабинета.",
	},
	msgInvalidToken: {
		domain.LocaleUA: "Невірний токен реєстрації.",
		domain.LocaleRU: "Неверный токен регистрации.",
	},
	msgSuccess: {
		domain.LocaleUA: "✅ Ви успішно підключили Telegram!\nТепер ви будете отримувати сповіщення.",
		domain.LocaleRU: "✅ Вы успешно подключили Telegram!\nТеперь вы будете получать уведомления.",
	},
	msgSaveError: {
		domain.LocaleUA: "Сталася помилка при збереженні. Спробуйте ще раз.",
		domain.LocaleRU: "Произошла ошибка при сохранении. Попробуйте еще раз.",
	},
}

func message(key messageKey, locale domain.Locale) string {
	return messages[key][NormalizeLocale(string(locale))]
}

// NormalizeLocale aceita "uk" como ucraniano; qualquer outro valor cai no padrão
func NormalizeLocale(locale string) domain.Locale {
	switch locale {
	case "ru":
		return domain.LocaleRU
	case "ua", "uk":
		return domain.LocaleUA
	default:
		return DefaultLocale
	}
}

// DetectTelegramLocale deduz o idioma a partir do language_code do Telegram
func DetectTelegramLocale(languageCode string) domain.Locale {
	code := strings.ToLower(languageCode)

	switch {
	case strings.HasPrefix(code, "ru"):
		return domain.LocaleRU
	case strings.HasPrefix(code, "uk"), strings.HasPrefix(code, "ua"):
		return domain.LocaleUA
	default:
		return DefaultLocale
	}
}

// ParseStartPayload separa "<token>_<idioma>" do /start. Sem sufixo de idioma
// reconhecido, o payload inteiro é tratado como token e o idioma volta vazio.
// Links antigos com "uk" continuam valendo como ucraniano.
func ParseStartPayload(payload string) (token string, locale domain.Locale) {
	if payload == "" {
		return "", ""
	}

	idx := strings.LastIndex(payload, "_")
	if idx > 0 {
		token, suffix := payload[:idx], payload[idx+1:]
		switch suffix {
		case "ua", "uk":
			return token, domain.LocaleUA
		case "ru":
			return token, domain.LocaleRU
		}
	}

	return payload, ""
}

// ParseRegistrationLocale valida o idioma pedido para o link de registro
func ParseRegistrationLocale(locale string) (domain.Locale, error) {
	switch locale {
	case "":
		return DefaultLocale, nil
	case string(domain.LocaleUA), string(domain.LocaleRU):
		return domain.Locale(locale), nil
	default:
		return "", ErrInvalidLocale
	}
}
