package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	userhttp "github.com/MrJamesThe3rd/backoffice/internal/http/user"
	"github.com/MrJamesThe3rd/backoffice/internal/user"
)

func asRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithClaims(r.Context(), &auth.Claims{Username: "ada", Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newServer(t *testing.T, role auth.Role) (http.Handler, *user.MockRepository) {
	t.Helper()

	repo := user.NewMockRepository(gomock.NewController(t))

	r := chi.NewRouter()
	r.Use(asRole(role))
	r.Route("/users", userhttp.NewHandler(user.NewService(repo)).Routes)

	return r, repo
}

func TestHandler_List(t *testing.T) {
	tests := []struct {
		name      string
		role      auth.Role
		setupMock func(repo *user.MockRepository)
		wantCode  int
		wantBody  string
	}{
		{
			name: "Admin",
			role: auth.RoleAdmin,
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().ListUsers(gomock.Any()).Return([]*user.User{
					{ID: uuid.New(), Username: "grace", Role: auth.RoleProjectManager},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"role":"project_manager"`,
		},
		{
			name:      "AccountantForbidden",
			role:      auth.RoleAccountant,
			setupMock: func(repo *user.MockRepository) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "ProjectManagerForbidden",
			role:      auth.RoleProjectManager,
			setupMock: func(repo *user.MockRepository) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := newServer(t, tt.role)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/", nil))

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_SetRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		role      auth.Role
		path      string
		body      string
		setupMock func(repo *user.MockRepository)
		wantCode  int
		wantBody  string
	}{
		{
			name: "Updated",
			role: auth.RoleAdmin,
			path: "/users/" + id.String() + "/role",
			body: `{"role":"accountant"}`,
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Username: "grace", Role: auth.RoleProjectManager}, nil)
				repo.EXPECT().UpdateRole(gomock.Any(), id, auth.RoleAccountant).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"role":"accountant"`,
		},
		{
			name:      "UnknownRole",
			role:      auth.RoleAdmin,
			path:      "/users/" + id.String() + "/role",
			body:      `{"role":"owner"}`,
			setupMock: func(repo *user.MockRepository) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  "role",
		},
		{
			name: "NotFound",
			role: auth.RoleAdmin,
			path: "/users/" + id.String() + "/role",
			body: `{"role":"admin"}`,
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), id).Return(nil, user.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "LastAdmin",
			role: auth.RoleAdmin,
			path: "/users/" + id.String() + "/role",
			body: `{"role":"accountant"}`,
			setupMock: func(repo *user.MockRepository) {
				repo.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id, Username: "ada", Role: auth.RoleAdmin}, nil)
				repo.EXPECT().CountByRole(gomock.Any(), auth.RoleAdmin).Return(1, nil)
			},
			wantCode: http.StatusConflict,
			wantBody: "last admin",
		},
		{
			name:      "InvalidID",
			role:      auth.RoleAdmin,
			path:      "/users/42/role",
			body:      `{"role":"admin"}`,
			setupMock: func(repo *user.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "ProjectManagerForbidden",
			role:      auth.RoleProjectManager,
			path:      "/users/" + id.String() + "/role",
			body:      `{"role":"admin"}`,
			setupMock: func(repo *user.MockRepository) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := newServer(t, tt.role)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
