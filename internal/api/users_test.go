package api

import (
	"fmt"
	"net/http"
	"testing"

	"beneficiary_registry/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestListUsersOmitsPasswords(t *testing.T) {
	env := newTestEnv(t, "users_list")

	w := env.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	users := decode(t, w)["users"].([]any)
	require.Len(t, users, 2) // Seeded admin and entry
	for _, u := range users {
		require.NotContains(t, u.(map[string]any), "password")
	}
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t, "users_create")

	w := env.do(t, http.MethodPost, "/api/users", map[string]any{
		"username": "clerk", "password": "1234", "role": "employee",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotZero(t, decode(t, w)["id"])

	// The new account can log in under unified rules
	var user domain.User
	require.NoError(t, env.DB.Where("username = ?", "clerk").First(&user).Error)
	require.Equal(t, "employee", user.Role)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	env := newTestEnv(t, "users_duplicate")

	w := env.do(t, http.MethodPost, "/api/users", map[string]any{
		"username": "admin", "password": "1234", "role": "admin",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, env.DB.Model(&domain.User{}).Count(&n).Error)
	require.EqualValues(t, 2, n) // Nothing was added
}

func TestCreateUserInvalidRole(t *testing.T) {
	env := newTestEnv(t, "users_role")

	w := env.do(t, http.MethodPost, "/api/users", map[string]any{
		"username": "odd", "password": "1234", "role": "superuser",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUserIdempotent(t *testing.T) {
	env := newTestEnv(t, "users_delete")

	var entry domain.User
	require.NoError(t, env.DB.Where("username = ?", "entry").First(&entry).Error)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", entry.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, decode(t, w)["changes"])

	// Deleting the same id again is a success with zero changes
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", entry.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 0, decode(t, w)["changes"])
}

func TestUsersRequireAdminTokenWhenEnabled(t *testing.T) {
	env := newTestEnvWith(t, "users_token", "split", nil, "test-secret")

	// Without a token the management routes are closed
	w := env.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// An employee token is forbidden on admin routes
	empToken := env.login(t, "علي الغامدي", "1234", "employee")["token"].(string)
	w = env.doWithToken(t, http.MethodGet, "/api/users", empToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// An admin token opens the full management surface
	adminToken := env.login(t, "admin", "1234", "admin")["token"].(string)
	w = env.doWithToken(t, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["users"].([]any), 2)

	w = env.doWithToken(t, http.MethodPost, "/api/users", adminToken, map[string]any{
		"username": "clerk", "password": "1234", "role": "employee",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUserMalformedID(t *testing.T) {
	env := newTestEnv(t, "users_badid")

	// Crafted id segments are bound as parameters and match nothing
	for _, id := range []string{"abc", "1=1", "1%20OR%201%3D1"} {
		w := env.do(t, http.MethodDelete, "/api/users/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code, id)
		require.EqualValues(t, 0, decode(t, w)["changes"], id)
	}

	var n int64
	require.NoError(t, env.DB.Model(&domain.User{}).Count(&n).Error)
	require.EqualValues(t, 2, n) // Seeded accounts untouched
}
