//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"cuponera-backend/internal/handler/dto/request"
	"cuponera-backend/tests/common/dbtest"
	"cuponera-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const Password = "password123"

func LoginActor(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	return login(t, router, "/api/auth/actors/login", email)
}

func LoginClient(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	return login(t, router, "/api/auth/clients/login", email)
}

func login(t *testing.T, router *gin.Engine, path, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, path,
		request.LoginRequest{Email: email, Password: Password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLoginActor(t *testing.T, db dbtest.DBLike, router *gin.Engine, f dbtest.ActorFixture) string {
	t.Helper()
	dbtest.CreateActor(t, db, f)
	return LoginActor(t, router, f.Email)
}

func CreateAndLoginClient(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateClient(t, db, email)
	return LoginClient(t, router, email)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
