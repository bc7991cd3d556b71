package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{15500, "15,500"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCount(tt.input))
	}
}

func TestFormatRankName(t *testing.T) {
	assert.Equal(t, "Uwu", FormatRankName("uwu"))
	assert.Equal(t, "Legendary", FormatRankName("legendary"))
	assert.Equal(t, "Nova Seed", FormatRankName("Nova Seed"))
	assert.Equal(t, "None", FormatRankName(""))

	// The first rune upcases whole, even when it is multi-byte.
	assert.Equal(t, "Éclair", FormatRankName("éclair"))
	assert.Equal(t, "星rank", FormatRankName("星rank"))
}

func TestSnowflakeRoundTrip(t *testing.T) {
	id, err := ParseSnowflake("123456789012345678")
	assert.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), id)
	assert.Equal(t, "123456789012345678", FormatSnowflake(id))

	_, err = ParseSnowflake("not-a-snowflake")
	assert.Error(t, err)
}

func TestGetUserMention(t *testing.T) {
	assert.Equal(t, "<@42>", GetUserMention(42))
}
