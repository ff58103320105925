package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Weak1!ok")
	assert.NoError(t, err)
	assert.NotEqual(t, "Weak1!ok", hash)

	assert.True(t, CheckPasswordHash("Weak1!ok", hash))
	assert.False(t, CheckPasswordHash("Wrong1!ok", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.Len(t, a, 40)

	b, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		failedRules []string
	}{
		{"valid", "Weak1!ok", nil},
		{"valid with other symbol", "Abcdef1#", nil},
		{"too short", "Aa1!", []string{"length"}},
		{"no uppercase", "weak1!okay", []string{"uppercase"}},
		{"no lowercase", "WEAK1!OKAY", []string{"lowercase"}},
		{"no digit", "Weakness!", []string{"digit"}},
		{"no symbol", "Weakness1", []string{"symbol"}},
		{"everything wrong", "aaaa", []string{"length", "uppercase", "digit", "symbol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failed := ValidatePassword(tt.password)
			assert.Len(t, failed, len(tt.failedRules))
			for _, rule := range tt.failedRules {
				assert.Contains(t, failed, rule)
			}
		})
	}
}
