//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// LoginUser returns the bearer token issued for email/password.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.AccessToken, "Access token missing from login response")

	// the cookie and the body must carry the same token
	accessCookie := httptest.AccessTokenCookie(w)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.Equal(t, res.AccessToken, accessCookie.Value)

	return res.AccessToken
}

// LoginAs creates the account when missing and logs in with DefaultPassword.
func LoginAs(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, DefaultPassword)
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	_, token := LoginAs(t, db, router, email, role)
	return token
}
