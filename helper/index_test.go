package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HashPassword(t *testing.T) {
	hash, err := HashPassword("123456cn")

	assert.NoError(t, err)
	assert.NotEqual(t, "123456cn", hash)
	assert.True(t, CheckPasswordHash("123456cn", hash))
	assert.False(t, CheckPasswordHash("matkhausai", hash))
}

func Test_CheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("123456cn", "not-a-bcrypt-hash"))
}
