package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)

	for _, role := range auth.Roles {
		t.Run(string(role), func(t *testing.T) {
			token, err := issuer.Issue("ada", role)
			require.NoError(t, err)

			claims, err := issuer.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, "ada", claims.Username)
			assert.Equal(t, role, claims.Role)
		})
	}
}

func TestIssuer_Issue_UnknownRole(t *testing.T) {
	_, err := auth.NewIssuer("secret", time.Hour).Issue("ada", "janitor")
	require.ErrorIs(t, err, auth.ErrUnknownRole)
}

func TestIssuer_Parse(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)

	expired, err := auth.NewIssuer("secret", -time.Minute).Issue("ada", auth.RoleAdmin)
	require.NoError(t, err)

	otherSecret, err := auth.NewIssuer("other", time.Hour).Issue("ada", auth.RoleAdmin)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
		Username: "ada",
		Role:     auth.RoleAdmin,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Username: "ada",
		Role:     "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "Garbage", token: "not-a-token", wantErr: auth.ErrInvalidToken},
		{name: "Expired", token: expired, wantErr: auth.ErrInvalidToken},
		{name: "WrongSecret", token: otherSecret, wantErr: auth.ErrInvalidToken},
		{name: "NoneAlgorithm", token: none, wantErr: auth.ErrInvalidToken},
		{name: "UnknownRole", token: forged, wantErr: auth.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Parse(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromContext(t *testing.T) {
	_, ok := auth.FromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithClaims(context.Background(), &auth.Claims{Username: "ada", Role: auth.RoleAccountant})

	claims, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, auth.RoleAccountant, claims.Role)
}
