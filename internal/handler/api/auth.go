package api

import (
	"net/http"

	reqdto "promocode-service/internal/handler/dto/request"
	resdto "promocode-service/internal/handler/dto/response"
	"promocode-service/internal/handler/httperr"
	"promocode-service/internal/pkg/config"
	"promocode-service/internal/pkg/cookie"
	"promocode-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		cfg:  cfg,
	}
}

// @Summary User sign-up
// @Description Register an end user and return an access token
// @Tags user-auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpUserRequest true "Sign-up request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /user/auth/sign-up [post]
func (h *AuthHandler) SignUpUser(c *gin.Context) {
	var req reqdto.SignUpUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.SignUpUser(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithMapped(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.TokenResponse{Token: result.Token})
}

// @Summary User sign-in
// @Description Sign in an end user. Tokens issued before are revoked.
// @Tags user-auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignInRequest true "Sign-in request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /user/auth/sign-in [post]
func (h *AuthHandler) SignInUser(c *gin.Context) {
	var req reqdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.SignInUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithMapped(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.TokenResponse{Token: result.Token})
}

// @Summary Business sign-up
// @Tags business-auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpBusinessRequest true "Sign-up request"
// @Success 200 {object} resdto.BusinessTokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /business/auth/sign-up [post]
func (h *AuthHandler) SignUpBusiness(c *gin.Context) {
	var req reqdto.SignUpBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.SignUpBusiness(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithMapped(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.BusinessTokenResponse{
		Token:     result.Token,
		CompanyID: result.SubjectID.String(),
	})
}

// @Summary Business sign-in
// @Tags business-auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignInRequest true "Sign-in request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /business/auth/sign-in [post]
func (h *AuthHandler) SignInBusiness(c *gin.Context) {
	var req reqdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.SignInBusiness(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithMapped(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.TokenResponse{Token: result.Token})
}
