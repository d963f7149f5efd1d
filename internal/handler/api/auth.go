package api

import (
	"context"
	"errors"
	"net/http"

	"cuponera-backend/internal/domain/auth"
	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/handler/middleware"
	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/pkg/cookie"
	"cuponera-backend/internal/pkg/jwt"
	"cuponera-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary Actor login
// @Description Login a business user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/actors/login [post]
func (h *AuthHandler) LoginActor(c *gin.Context) {
	h.login(c, h.authUseCase.LoginActor)
}

// @Summary Client login
// @Description Login an end customer with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/clients/login [post]
func (h *AuthHandler) LoginClient(c *gin.Context) {
	h.login(c, h.authUseCase.LoginClient)
}

type loginFunc func(ctx context.Context, credentials auth.Credentials) (string, *usecase.Subject, error)

func (h *AuthHandler) login(c *gin.Context, login loginFunc) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		return
	}

	token, subject, err := login(c.Request.Context(), credentials)
	if err != nil {
		h.abortAuth(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		User:        resdto.FromSubject(subject),
	})
}

// @Summary Logout
// @Description Clears the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current subject
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SubjectResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	kind, _ := middleware.GetUserKind(c)

	subject, err := h.authUseCase.GetCurrent(c.Request.Context(), userID, kind)
	if err != nil {
		h.abortAuth(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubject(subject))
}

func (h *AuthHandler) abortAuth(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, usecase.ErrAccountInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	default:
		httperr.Abort(c, err)
	}
}
