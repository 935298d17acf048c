package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/dto"
	"github.com/parishlife/parish_community_app/internal/middleware"
)

// eventHandler handles HTTP requests for the event vertical.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers all event routes.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)

		events.POST("/:id/register", h.register)
		events.DELETE("/:id/register", h.cancelRegistration)
		events.GET("/:id/registrations", h.listRegistrations)

		events.POST("/:id/payment-intent", h.createPaymentIntent)
		events.POST("/:id/discount-codes", h.createDiscountCode)
		events.POST("/:id/apply-discount", h.applyDiscount)

		events.POST("/:id/alerts", h.createAlert)
		events.GET("/:id/alerts", h.listAlerts)

		events.GET("/:id/stats", h.getStats)
		events.GET("/:id/ticket", h.getTicket)
		events.POST("/:id/check-in", h.checkIn)
	}
}

// createEvent godoc
// @Summary Create an event
// @Description Creates an event in a channel; requires channel admin
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input or paid event without price"
// @Failure 403 {object} map[string]string "Channel admin required"
// @Security AccessToken
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create event")
		return
	}

	logger.Info("Event created", slog.String("event_id", resp.EventID))
	c.JSON(http.StatusCreated, resp)
}

// listEvents godoc
// @Summary List the event feed
// @Description Lists events from channels the caller subscribes to
// @Tags events
// @Produce  json
// @Param   channel_id query string false "Restrict to one channel"
// @Param   upcoming_only query bool false "Only future events" default(true)
// @Param   registered_only query bool false "Only events the caller registered for"
// @Param   search query string false "Search name, description and location"
// @Param   page query int false "Page" default(1)
// @Param   page_size query int false "Page size" default(20)
// @Success 200 {object} dto.EventListResponse
// @Security AccessToken
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.EventFeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.eventService.ListEvents(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEvent godoc
// @Summary Get an event
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security AccessToken
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	resp, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load event")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} map[string]string "Channel admin required"
// @Failure 404 {object} map[string]string "Event not found"
// @Security AccessToken
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Channel admin required"
// @Failure 404 {object} map[string]string "Event not found"
// @Security AccessToken
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// register godoc
// @Summary Register for an event
// @Description Registers the caller; fails when the deadline passed, the event is full or the caller is already registered
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 201 {object} dto.RegistrationActionResponse
// @Failure 400 {object} map[string]string "Deadline passed, event full or already registered"
// @Failure 404 {object} map[string]string "Event not found"
// @Security AccessToken
// @Router /events/{id}/register [post]
func (h *eventHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.eventService.RegisterForEvent(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// cancelRegistration godoc
// @Summary Cancel an event registration
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Not registered"
// @Security AccessToken
// @Router /events/{id}/register [delete]
func (h *eventHandler) cancelRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.eventService.CancelRegistration(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not registered for this event"})
			return
		}
		respondServiceError(c, logger, err, "Failed to cancel registration")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Registration cancelled"})
}

// listRegistrations godoc
// @Summary List event registrations
// @Description Admin-only paginated listing with registrant summaries
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   page query int false "Page" default(1)
// @Param   page_size query int false "Page size" default(20)
// @Success 200 {object} dto.RegistrationListResponse
// @Failure 403 {object} map[string]string "Channel admin required"
// @Security AccessToken
// @Router /events/{id}/registrations [get]
func (h *eventHandler) listRegistrations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.eventService.ListRegistrations(c.Request.Context(), c.Param("id"), userID, params.Page, params.PageSize)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list registrations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createPaymentIntent godoc
// @Summary Create a payment intent
// @Description Creates a provider payment intent for the caller's pending registration, optionally applying a discount code
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   payment body dto.PaymentIntentRequest false "Optional discount code"
// @Success 200 {object} dto.PaymentIntentResponse
// @Failure 400 {object} map[string]string "Not registered, already paid or invalid discount"
// @Failure 404 {object} map[string]string "Event not found"
// @Security AccessToken
// @Router /events/{id}/payment-intent [post]
func (h *eventHandler) createPaymentIntent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.PaymentIntentRequest
	// Body is optional; an empty body means no discount code.
	_ = c.ShouldBindJSON(&req)

	resp, err := h.eventService.CreatePaymentIntent(c.Request.Context(), c.Param("id"), userID, req.DiscountCode)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createDiscountCode godoc
// @Summary Create a discount code
// @Description Admin-only; the code is stored uppercased
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   discount body dto.CreateDiscountRequest true "Discount details"
// @Success 201 {object} dto.DiscountCodeResponse
// @Failure 400 {object} map[string]string "Invalid discount or duplicate code"
// @Failure 403 {object} map[string]string "Channel admin required"
// @Security AccessToken
// @Router /events/{id}/discount-codes [post]
func (h *eventHandler) createDiscountCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.CreateDiscountCode(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create discount code")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// applyDiscount godoc
// @Summary Preview a discount code
// @Description Pure calculation against the event price; nothing is consumed
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   discount body dto.ApplyDiscountRequest true "Code to preview"
// @Success 200 {object} dto.ApplyDiscountResponse
// @Failure 400 {object} map[string]string "Code exhausted or expired"
// @Failure 404 {object} map[string]string "Unknown code or event"
// @Security AccessToken
// @Router /events/{id}/apply-discount [post]
func (h *eventHandler) applyDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.ApplyDiscountCode(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply discount")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createAlert godoc
// @Summary Create an event alert
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   alert body dto.CreateAlertRequest true "Alert details"
// @Success 201 {object} dto.AlertResponse
// @Failure 403 {object} map[string]string "Channel admin required"
// @Security AccessToken
// @Router /events/{id}/alerts [post]
func (h *eventHandler) createAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.CreateAlert(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create alert")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listAlerts godoc
// @Summary List event alerts
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   page query int false "Page" default(1)
// @Param   page_size query int false "Page size" default(20)
// @Success 200 {object} dto.AlertListResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security AccessToken
// @Router /events/{id}/alerts [get]
func (h *eventHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.eventService.ListAlerts(c.Request.Context(), c.Param("id"), params.Page, params.PageSize)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list alerts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getStats godoc
// @Summary Get event statistics
// @Description Admin-only registration and revenue aggregation
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.EventStatsResponse
// @Failure 403 {object} map[string]string "Channel admin required"
// @Security AccessToken
// @Router /events/{id}/stats [get]
func (h *eventHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.eventService.GetEventStats(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTicket godoc
// @Summary Get own ticket
// @Description Returns the caller's ticket code with an embedded QR PNG
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} map[string]string "Not registered"
// @Security AccessToken
// @Router /events/{id}/ticket [get]
func (h *eventHandler) getTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.eventService.GetTicket(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load ticket")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// checkIn godoc
// @Summary Check in a ticket
// @Description Admin-only; marks a ticket used, rejecting a second scan
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   ticket body dto.CheckInRequest true "Ticket code"
// @Success 200 {object} dto.RegistrationResponse
// @Failure 400 {object} map[string]string "Ticket already checked in or wrong event"
// @Failure 403 {object} map[string]string "Channel admin required"
// @Failure 404 {object} map[string]string "Unknown ticket"
// @Security AccessToken
// @Router /events/{id}/check-in [post]
func (h *eventHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.eventService.CheckInTicket(c.Request.Context(), c.Param("id"), userID, req.TicketCode)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check in ticket")
		return
	}
	c.JSON(http.StatusOK, resp)
}
