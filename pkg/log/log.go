package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger encapsula o logrus com os campos de rastreabilidade da requisição
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	UserIDKey        contextKey = "user_id"
)

// HeaderRequestID é o cabeçalho usado para propagar o ID de correlação
const HeaderRequestID = "X-Request-ID"

// Campos que continuam aparecendo em desenvolvimento
var devFields = map[string]bool{
	string(CorrelationIDKey): true,
	string(UserIDKey):        true,
	"method":                 true,
	"path":                   true,
	"status_code":            true,
	"duration_ms":            true,
	"error":                  true,
}

type logger struct {
	entry *logrus.Entry
}

// L é a instância global de Logger
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup configura formato e nível do logrus. Em produção os logs saem em JSON.
func Setup(level string) {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func keep(key string) bool {
	return !IsDevelopment() || devFields[key] || strings.HasSuffix(key, "_id")
}

func (l *logger) WithField(key string, value any) Logger {
	if !keep(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	relevant := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			relevant[k] = v
		}
	}

	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext adiciona o ID de correlação e o usuário presentes no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[string(CorrelationIDKey)] = correlationID
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		fields[string(UserIDKey)] = userID
	}

	return l.WithFields(fields)
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }

func (l *logger) Info(args ...any) { l.entry.Info(args...) }

func (l *logger) Warn(args ...any) { l.entry.Warn(args...) }

func (l *logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }

func (l *logger) Error(args ...any) { l.entry.Error(args...) }

// WithCorrelationID coloca o ID de correlação no contexto, reaproveitando o
// recebido no cabeçalho quando existir
func WithCorrelationID(ctx context.Context, incoming string) (context.Context, string) {
	correlationID := strings.TrimSpace(incoming)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithUserID marca o contexto com o usuário autenticado
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// ForContext cria um logger com os campos de rastreabilidade do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
