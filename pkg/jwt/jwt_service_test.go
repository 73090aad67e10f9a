package jwt

import (
	"Recipe-Journal/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	service := NewJWTService()
	memberID := uuid.NewString()

	token := service.GenerateTokenUser(memberID, domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, memberID, id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestJWTServiceRejectsTampering(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	token := service.GenerateTokenUser(uuid.NewString(), domain.RoleUser)
	_, _, err = service.GetUserIDByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
