package services

import (
	"testing"

	"Backend-EvalApp/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateAdmin(t *testing.T) {
	token, err := AuthenticateAdmin("12345")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthenticateAdminWrongPassword(t *testing.T) {
	_, err := AuthenticateAdmin("wrong")
	assert.Error(t, err)

	_, err = AuthenticateAdmin("")
	assert.Error(t, err)
}
