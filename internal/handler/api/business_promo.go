package api

import (
	"errors"
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

var errNoSubject = errors.New("authenticated subject missing in context")

type BusinessPromoHandler struct {
	cmds commands.PromocodeCommands
	q    queries.PromocodeQueries
}

func NewBusinessPromoHandler(cmds commands.PromocodeCommands, q queries.PromocodeQueries) *BusinessPromoHandler {
	return &BusinessPromoHandler{cmds: cmds, q: q}
}

// @Summary Create promocode
// @Tags business-promo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromocodeRequest true "Promocode"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /business/promo [post]
func (h *BusinessPromoHandler) Create(c *gin.Context) {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return
	}
	var req reqdto.CreatePromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), businessID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List own promocodes
// @Tags business-promo
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 10)"
// @Param offset query int false "Items to skip"
// @Param country query []string false "Target countries" collectionFormat(multi)
// @Param sort_by query string false "active_from or active_until"
// @Success 200 {array} resdto.PromocodeResponse
// @Header 200 {integer} X-Total-Count "Total number of promocodes"
// @Failure 400 {object} httperr.Response
// @Router /business/promo [get]
func (h *BusinessPromoHandler) List(c *gin.Context) {
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return
	}
	var query reqdto.BusinessListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid query")
		return
	}
	views, total, err := h.q.ListForBusiness(c.Request.Context(), businessID, query.Country, query.SortBy, query.ToPage())
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	res, err := resdto.FromPromocodeViews(views)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	setTotalCount(c, total)
	c.JSON(http.StatusOK, res)
}

// @Summary Get own promocode
// @Tags business-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Success 200 {object} resdto.PromocodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /business/promo/{id} [get]
func (h *BusinessPromoHandler) Get(c *gin.Context) {
	id, businessID, ok := h.pathAndSubject(c)
	if !ok {
		return
	}
	view, err := h.q.GetForBusiness(c.Request.Context(), id, businessID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	h.respondView(c, view)
}

// @Summary Patch own promocode
// @Tags business-promo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Param request body reqdto.PatchPromocodeRequest true "Fields to change"
// @Success 200 {object} resdto.PromocodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /business/promo/{id} [patch]
func (h *BusinessPromoHandler) Patch(c *gin.Context) {
	id, businessID, ok := h.pathAndSubject(c)
	if !ok {
		return
	}
	var req reqdto.PatchPromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand(), businessID); err != nil {
		abortWithMapped(c, err)
		return
	}
	view, err := h.q.GetForBusiness(c.Request.Context(), id, businessID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	h.respondView(c, view)
}

// @Summary Promocode activation statistics
// @Tags business-promo
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promocode ID"
// @Success 200 {object} resdto.PromocodeStatResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /business/promo/{id}/stat [get]
func (h *BusinessPromoHandler) Stat(c *gin.Context) {
	id, businessID, ok := h.pathAndSubject(c)
	if !ok {
		return
	}
	stat, err := h.q.StatForBusiness(c.Request.Context(), id, businessID)
	if err != nil {
		abortWithMapped(c, err)
		return
	}
	res, err := resdto.FromPromocodeStat(stat)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BusinessPromoHandler) pathAndSubject(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid id")
		return uuid.Nil, uuid.Nil, false
	}
	businessID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNoSubject, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	return id, businessID, true
}

func (h *BusinessPromoHandler) respondView(c *gin.Context, view *queries.PromocodeView) {
	res, err := resdto.FromPromocodeView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}
