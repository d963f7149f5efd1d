package api

import (
	"net/http"

	reqdto "cuponera-backend/internal/handler/dto/request"
	resdto "cuponera-backend/internal/handler/dto/response"
	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OTPHandler struct {
	cmds commands.OTPCommands
}

func NewOTPHandler(cmds commands.OTPCommands) *OTPHandler {
	return &OTPHandler{cmds: cmds}
}

// @Summary Send a verification code
// @Description Mails a 5-digit code valid for five minutes. Earlier codes for the email stop working.
// @Tags otp
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateOTPRequest true "Email"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /otps/generate [post]
func (h *OTPHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateOTPRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Generate(c.Request.Context(), req.Email); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.MessageResponse{Message: "Verification code sent"})
}

// @Summary Verify a code
// @Tags otp
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /otps/verify [post]
func (h *OTPHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Verify(c.Request.Context(), req.Email, req.Code); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Code verified"})
}
