//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/tests/common/authtest"
	"cuponera-backend/tests/common/dbtest"
	"cuponera-backend/tests/common/httptest"

	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestCookieSession() {
	dbtest.CreateActor(s.T(), s.DB, dbtest.ActorFixture{Email: "cafe@cuponera.ec", Role: "LOCAL"})

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/actors/login",
		map[string]any{"email": "CAFE@cuponera.ec", "password": authtest.Password}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	cookies := httptest.ExtractCookies(w)
	s.Require().NotEmpty(cookies)

	w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, cookies, "")
	var me resdto.SubjectResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
	httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	s.Equal("cafe@cuponera.ec", me.Email)
	s.Equal("actor", me.Kind)

	authtest.LogoutUser(s.T(), s.Router, cookies)
}

func (s *AuthTestSuite) TestClientLogin() {
	token := authtest.CreateAndLoginClient(s.T(), s.DB, s.Router, "ana@correo.ec")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, token)
	var me resdto.SubjectResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
	s.Equal("client", me.Kind)

	// actors and clients log in through separate endpoints
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/actors/login",
		map[string]any{"email": "ana@correo.ec", "password": authtest.Password}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
}

func (s *AuthTestSuite) TestInactiveActor() {
	dbtest.CreateActor(s.T(), s.DB, dbtest.ActorFixture{Email: "cerrado@cuponera.ec", Role: "LOCAL", Inactive: true})

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/actors/login",
		map[string]any{"email": "cerrado@cuponera.ec", "password": authtest.Password}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
}

func (s *AuthTestSuite) TestRouteGuards() {
	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
	localID := dbtest.CreateActor(s.T(), s.DB, dbtest.ActorFixture{Email: "cafe@cuponera.ec", Role: "LOCAL"})
	clientID := dbtest.CreateClient(s.T(), s.DB, "ana@correo.ec")

	testCases := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{name: "no token", method: http.MethodGet, path: "/api/batches", status: http.StatusUnauthorized},
		{name: "expired token", method: http.MethodGet, path: "/api/batches", token: jwtHelper.CreateExpiredToken(s.T(), localID, "LOCAL"), status: http.StatusUnauthorized},
		{name: "client on actor route", method: http.MethodGet, path: "/api/batches", token: jwtHelper.ClientToken(s.T(), clientID), status: http.StatusForbidden},
		{name: "local on admin report", method: http.MethodGet, path: "/api/reports/redemptions?start=2025-03-01&end=2025-03-31", token: jwtHelper.ActorToken(s.T(), localID, "LOCAL"), status: http.StatusForbidden},
		{name: "local lists batches", method: http.MethodGet, path: "/api/batches", token: jwtHelper.ActorToken(s.T(), localID, "LOCAL"), status: http.StatusOK},
		{name: "actor on client route", method: http.MethodGet, path: "/api/me/cuponeras", token: jwtHelper.ActorToken(s.T(), localID, "LOCAL"), status: http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, tc.method, tc.path, nil, tc.token)
			s.Equal(tc.status, w.Code, w.Body.String())
		})
	}
}
