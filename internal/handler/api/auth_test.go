//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"cuponera-backend/internal/domain/auth"
	"cuponera-backend/internal/handler/api"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/pkg/jwt"
	"cuponera-backend/internal/usecase"
	"cuponera-backend/tests/common/builder"
	"cuponera-backend/tests/common/httptest"
	"cuponera-backend/tests/common/testutil"
	usecasemock "cuponera-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	s.handler = api.NewAuthHandler(s.mockAuth, jwtService, config.NewTestConfig())

	s.router.POST("/auth/actors/login", s.handler.LoginActor)
	s.router.POST("/auth/clients/login", s.handler.LoginClient)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stands in for RequireAuth
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
			c.Set("user_kind", jwt.KindActor)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func credentialsOf(s *AuthHandlerTestSuite, email, password string) auth.Credentials {
	c, err := auth.NewCredentials(email, password)
	s.Require().NoError(err)
	return c
}

func (s *AuthHandlerTestSuite) TestLoginActor() {
	url := "/auth/actors/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	local := builder.NewActorBuilder().Build()
	subject := &usecase.Subject{ID: local.ID(), Name: local.Name(), Email: local.Email(), Role: local.Role().String(), Kind: jwt.KindActor}

	s.Run("success: returns token and sets cookie", func() {
		s.mockAuth.EXPECT().LoginActor(gomock.Any(), credentialsOf(s, reqBody.Email, reqBody.Password)).
			Return("signed-token", subject, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.AccessToken)
		s.Equal(subject.Email, response.User.Email)
		s.Equal(jwt.KindActor, response.User.Kind)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("signed-token", cookie.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "email boundary OK", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (6 chars)", mutate: testutil.Field("password", "secret"), expectCode: http.StatusOK},
			{name: "password too short (5 chars)", mutate: testutil.Field("password", strings.Repeat("a", 5)), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					email, _ := requestMap["email"].(string)
					password, _ := requestMap["password"].(string)
					s.mockAuth.EXPECT().LoginActor(gomock.Any(), credentialsOf(s, email, password)).
						Return("signed-token", subject, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid credentials", err: usecase.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "inactive account", err: usecase.ErrAccountInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
			{name: "internal server error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().LoginActor(gomock.Any(), gomock.Any()).Return("", nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLoginClient() {
	reqBody := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Email = "cliente@correo.ec" }).BuildDTO()
	subject := &usecase.Subject{ID: uuid.New(), Name: "Ana Pérez", Email: reqBody.Email, Role: usecase.ClientRole, Kind: jwt.KindClient}

	s.mockAuth.EXPECT().LoginClient(gomock.Any(), credentialsOf(s, reqBody.Email, reqBody.Password)).
		Return("client-token", subject, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, "POST", "/auth/clients/login", reqBody, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(usecase.ClientRole, response.User.Role)
	s.Equal(jwt.KindClient, response.User.Kind)
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, "POST", "/auth/logout", nil, "bearer-token")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current subject", func() {
		subject := &usecase.Subject{ID: uuid.New(), Email: "local@cuponera.ec", Role: "LOCAL", Kind: jwt.KindActor}
		s.mockAuth.EXPECT().GetCurrent(gomock.Any(), gomock.Any(), jwt.KindActor).Return(subject, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(subject.Email, response["email"])
	})

	s.Run("error: 401 when the subject is missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "subject not found", err: usecase.ErrSubjectNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "authenticated subject not found"},
			{name: "inactive account", err: usecase.ErrAccountInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
			{name: "internal server error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().GetCurrent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, "GET", url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
