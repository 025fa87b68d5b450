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
	"github.com/google/uuid"
)

type UserPromoHandler struct {
	activation commands.ActivationCommands
	engagement commands.EngagementCommands
	promos     queries.PromocodeQueries
	comments   queries.CommentQueries
}

func NewUserPromoHandler(
	activation commands.ActivationCommands,
	engagement commands.EngagementCommands,
	promos queries.PromocodeQueries,
	comments queries.CommentQueries,
) *UserPromoHandler {
	return &UserPromoHandler{
		activation: activation,
		engagement: engagement,
		promos:     promos,
		comments:   comments,
	}
}

// @Summary Promocode feed
// @Description Promocodes targeted at the current user, newest first
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 10)"
// @Param offset query int false "Items to skip"
// @Param category query string false "Category, case-insensitive"
// @Param active query bool false "Only active or only inactive"
// @Success 200 {array} resdto.UserPromocodeResponse
// @Header 200 {integer} X-Total-Count "Total number of promocodes"
// @Failure 400 {object} httperr.Response
// @Router /user/feed [get]
func (h *UserPromoHandler) Feed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return
	}
	var query reqdto.FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid query")
		return
	}
	views, total, err := h.promos.Feed(c.Request.Context(), userID, query.Category, query.Active, query.ToPage())
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	h.respondList(c, views, total)
}

// @Summary Get promocode
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Success 200 {object} resdto.UserPromocodeResponse
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id} [get]
func (h *UserPromoHandler) Get(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	h.respondOne(c, id, userID)
}

// @Summary Activate promocode
// @Description Check targeting, availability and anti-fraud, then issue a code
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Success 200 {object} resdto.ActivationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/activate [post]
func (h *UserPromoHandler) Activate(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	result, err := h.activation.Activate(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	switch result.Rejection {
	case "":
		c.JSON(http.StatusOK, resdto.ActivationResponse{Promo: result.Code})
	case commands.RejectionNotFound:
		httperr.Abort(c, http.StatusNotFound, rejectionError(result.Rejection), "Promocode not found")
	default:
		httperr.AbortWithError(c, http.StatusForbidden, rejectionError(result.Rejection), "Promocode can't be activated", string(result.Rejection))
	}
}

// @Summary Activation history
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 10)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.UserPromocodeResponse
// @Header 200 {integer} X-Total-Count "Total number of promocodes"
// @Router /user/promo/history [get]
func (h *UserPromoHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return
	}
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid query")
		return
	}
	views, total, err := h.promos.History(c.Request.Context(), userID, query.ToPage())
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	h.respondList(c, views, total)
}

// @Summary Like promocode
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/like [post]
func (h *UserPromoHandler) Like(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	if err := h.engagement.Like(c.Request.Context(), id, userID); err != nil {
		abortWithMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Remove like
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/like [delete]
func (h *UserPromoHandler) Unlike(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	if err := h.engagement.Unlike(c.Request.Context(), id, userID); err != nil {
		abortWithMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Add comment
// @Tags user-promo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Param request body reqdto.CommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/comments [post]
func (h *UserPromoHandler) AddComment(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	var req reqdto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	commentID, err := h.engagement.AddComment(c.Request.Context(), id, userID, req.Text)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	h.respondComment(c, http.StatusCreated, id, commentID)
}

// @Summary List comments
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Param limit query int false "Max items (default 10)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.CommentResponse
// @Header 200 {integer} X-Total-Count "Total number of comments"
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/comments [get]
func (h *UserPromoHandler) ListComments(c *gin.Context) {
	id, _, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid query")
		return
	}
	views, total, err := h.comments.List(c.Request.Context(), id, query.ToPage())
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	res, err := resdto.FromCommentViews(views)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	setTotalCount(c, total)
	c.JSON(http.StatusOK, res)
}

// @Summary Get comment
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} resdto.CommentResponse
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/comments/{comment_id} [get]
func (h *UserPromoHandler) GetComment(c *gin.Context) {
	id, commentID, _, ok := commentPath(c)
	if !ok {
		return
	}
	h.respondComment(c, http.StatusOK, id, commentID)
}

// @Summary Edit comment
// @Tags user-promo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Param comment_id path string true "Comment ID"
// @Param request body reqdto.CommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/comments/{comment_id} [put]
func (h *UserPromoHandler) EditComment(c *gin.Context) {
	id, commentID, userID, ok := commentPath(c)
	if !ok {
		return
	}
	var req reqdto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.engagement.EditComment(c.Request.Context(), id, commentID, userID, req.Text); err != nil {
		abortWithMapped(c, err)
		return
	}
	h.respondComment(c, http.StatusOK, id, commentID)
}

// @Summary Delete comment
// @Tags user-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/promo/{id}/comments/{comment_id} [delete]
func (h *UserPromoHandler) DeleteComment(c *gin.Context) {
	id, commentID, userID, ok := commentPath(c)
	if !ok {
		return
	}
	if err := h.engagement.DeleteComment(c.Request.Context(), id, commentID, userID); err != nil {
		abortWithMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *UserPromoHandler) respondOne(c *gin.Context, id, userID uuid.UUID) {
	view, err := h.promos.GetForUser(c.Request.Context(), id, userID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	res, err := resdto.FromUserPromocodeView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserPromoHandler) respondList(c *gin.Context, views []*queries.UserPromocodeView, total int) {
	res, err := resdto.FromUserPromocodeViews(views)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	setTotalCount(c, total)
	c.JSON(http.StatusOK, res)
}

func (h *UserPromoHandler) respondComment(c *gin.Context, status int, promocodeID, commentID uuid.UUID) {
	view, err := h.comments.Get(c.Request.Context(), promocodeID, commentID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	res, err := resdto.FromCommentView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(status, res)
}

func pathIDAndUser(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid id")
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	return id, userID, true
}

func commentPath(c *gin.Context) (promocodeID, commentID, userID uuid.UUID, ok bool) {
	promocodeID, userID, ok = pathIDAndUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid comment id")
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return promocodeID, commentID, userID, true
}

type rejectionError commands.RejectionReason

func (e rejectionError) Error() string {
	return "activation rejected: " + string(e)
}
