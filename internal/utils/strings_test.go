package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomHex(t *testing.T) {
	token, err := GenerateRandomHex(64)
	assert.NoError(t, err)
	assert.Len(t, token, 64)

	// Two tokens must not collide
	other, err := GenerateRandomHex(64)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.co.in"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("admin@"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.COM "))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}
