package api

import (
	"net/http"

	reqdto "promocode-service/internal/handler/dto/request"
	resdto "promocode-service/internal/handler/dto/response"
	"promocode-service/internal/handler/httperr"
	"promocode-service/internal/handler/middleware"
	"promocode-service/internal/usecase/commands"
	"promocode-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.UserQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Tags user-profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Router /user/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return
	}
	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Patch profile
// @Tags user-profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PatchProfileRequest true "Fields to change"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /user/profile [patch]
func (h *ProfileHandler) Patch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return
	}
	var req reqdto.PatchProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToCommand()); err != nil {
		abortWithMapped(c, err)
		return
	}
	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}
