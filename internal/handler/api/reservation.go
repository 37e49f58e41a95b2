package api

import (
	"context"
	"net/http"
	"time"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, loc *time.Location) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Create reservation
// @Description Book a room for a time slot. Times are local wall-clock values (YYYY-MM-DDTHH:MM).
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortMissingPrincipal(c)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput(requester.ID, h.loc)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), created.ID(), requester)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view, h.loc))
}

// @Summary Get reservation
// @Description Get a reservation by ID, cancelled ones included
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortMissingPrincipal(c)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, requester)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view, h.loc))
}

// @Summary Update reservation
// @Description Move a reservation to another slot and optionally another room
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortMissingPrincipal(c)
		return
	}

	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput(id, requester, h.loc)
	if err != nil {
		abortWithReservationError(c, err)
		return
	}

	if _, err = h.cmds.Update(c.Request.Context(), in); err != nil {
		abortWithReservationError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, requester)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view, h.loc))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation. The record is kept and shows up in the history.
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortMissingPrincipal(c)
		return
	}

	err = h.cmds.Cancel(c.Request.Context(), commands.CancelReservationInput{
		ReservationID: id,
		Requester:     requester,
	})
	if err != nil {
		abortWithReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List upcoming reservations
// @Description Active reservations that have not ended yet. Non-admins only see their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param owner_id query string false "Owner filter (admins only)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations/upcoming [get]
func (h *ReservationHandler) ListUpcoming(c *gin.Context) {
	h.list(c, h.q.ListUpcoming)
}

// @Summary List reservation history
// @Description Reservations that are over or cancelled. Non-admins only see their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param owner_id query string false "Owner filter (admins only)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations/history [get]
func (h *ReservationHandler) ListHistory(c *gin.Context) {
	h.list(c, h.q.ListCanceledOrPast)
}

type listFunc func(ctx context.Context, filter queries.ListFilter) ([]*queries.ReservationView, error)

func (h *ReservationHandler) list(c *gin.Context, fetch listFunc) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		abortMissingPrincipal(c)
		return
	}

	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner filter", nil)
		return
	}

	views, err := fetch(c.Request.Context(), queries.ListFilter{
		OwnerID: requester.OwnerScope(q.OwnerFilter()),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views, h.loc))
}
