package utils

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1 000"},
		{"1234567", "1 234 567"},
		{"1234.5", "1 234.50"},
		{"12.345", "12.35"},
		{"-98765.4", "-98 765.40"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGrouped(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatGroupedFixed(t *testing.T) {
	assert.Equal(t, "1 500.00", FormatGroupedFixed(decimal.NewFromInt(1500), 2))
	assert.Equal(t, "0.13", FormatGroupedFixed(decimal.RequireFromString("0.125"), 2))
	assert.Equal(t, "12 346", FormatGroupedFixed(decimal.RequireFromString("12345.6"), 0))
}

func TestMonthToDate(t *testing.T) {
	now := time.Date(2025, 2, 17, 15, 4, 5, 0, time.UTC)
	since, until := MonthToDate(now)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), since)
	assert.Equal(t, time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC), until)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, 9, date.Day())

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("09/03/2025")
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "172.16.0.2")
	assert.Equal(t, "172.16.0.2", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(32)
	require.NoError(t, err)

	assert.Len(t, id, 32)
	assert.False(t, strings.ContainsAny(id, "_-"))
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n\t\"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n\t\"b\": true\n}", PrettyJson([]byte(`{"b":true}`)))
}
