package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/user"
)

func TestService_Ensure(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		setupMock func(m *user.MockRepository)
		wantField string
		wantRole  auth.Role
	}{
		{
			name:     "NewUserGetsDefaultRole",
			username: "  ada ",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().EnsureUser(gomock.Any(), "ada").Return(&user.User{ID: uuid.New(), Username: "ada", Role: user.DefaultRole}, nil)
			},
			wantRole: auth.RoleProjectManager,
		},
		{
			name:     "ExistingUserKeepsRole",
			username: "grace",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().EnsureUser(gomock.Any(), "grace").Return(&user.User{ID: uuid.New(), Username: "grace", Role: auth.RoleAccountant}, nil)
			},
			wantRole: auth.RoleAccountant,
		},
		{
			name:      "Blank",
			username:  "   ",
			setupMock: func(m *user.MockRepository) {},
			wantField: "username",
		},
		{
			name:      "TooLong",
			username:  strings.Repeat("a", 151),
			setupMock: func(m *user.MockRepository) {},
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			u, err := user.NewService(repo).Ensure(context.Background(), tt.username)

			if tt.wantField != "" {
				var ve *document.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				assert.Nil(t, u)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, u.Role)
		})
	}
}

func TestService_SetRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		role      auth.Role
		setupMock func(m *user.MockRepository)
		wantErr   error
		wantField string
		wantRole  auth.Role
	}{
		{
			name: "Promote",
			role: auth.RoleAdmin,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Username: "ada", Role: auth.RoleProjectManager}, nil)
				m.EXPECT().UpdateRole(gomock.Any(), id, auth.RoleAdmin).Return(nil)
			},
			wantRole: auth.RoleAdmin,
		},
		{
			name: "UnchangedSkipsWrite",
			role: auth.RoleAccountant,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Username: "ada", Role: auth.RoleAccountant}, nil)
			},
			wantRole: auth.RoleAccountant,
		},
		{
			name: "DemoteAdminWhenOthersRemain",
			role: auth.RoleAccountant,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Username: "ada", Role: auth.RoleAdmin}, nil)
				m.EXPECT().CountByRole(gomock.Any(), auth.RoleAdmin).Return(2, nil)
				m.EXPECT().UpdateRole(gomock.Any(), id, auth.RoleAccountant).Return(nil)
			},
			wantRole: auth.RoleAccountant,
		},
		{
			name: "LastAdmin",
			role: auth.RoleProjectManager,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Username: "ada", Role: auth.RoleAdmin}, nil)
				m.EXPECT().CountByRole(gomock.Any(), auth.RoleAdmin).Return(1, nil)
			},
			wantErr: user.ErrLastAdmin,
		},
		{
			name: "NotFound",
			role: auth.RoleAdmin,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUser(gomock.Any(), id).Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrNotFound,
		},
		{
			name: "StoreFailure",
			role: auth.RoleAdmin,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Role: auth.RoleAccountant}, nil)
				m.EXPECT().UpdateRole(gomock.Any(), id, auth.RoleAdmin).Return(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
		{
			name:      "UnknownRole",
			role:      "owner",
			setupMock: func(m *user.MockRepository) {},
			wantField: "role",
		},
		{
			name:      "MissingRole",
			setupMock: func(m *user.MockRepository) {},
			wantField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			u, err := user.NewService(repo).SetRole(context.Background(), id, user.RoleParams{Role: tt.role})

			switch {
			case tt.wantField != "":
				var ve *document.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, u)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantRole, u.Role)
			}
		})
	}
}
