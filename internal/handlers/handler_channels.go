package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/dto"
	"github.com/parishlife/parish_community_app/internal/middleware"
)

// channelHandler handles HTTP requests for channels and subscriptions.
type channelHandler struct {
	channelService portssvc.ChannelSvcFacade
	eventService   portssvc.EventSvcFacade
}

func newChannelHandler(cs portssvc.ChannelSvcFacade, es portssvc.EventSvcFacade) *channelHandler {
	return &channelHandler{channelService: cs, eventService: es}
}

// registerChannelRoutes registers the channel routes.
func registerChannelRoutes(rg *gin.RouterGroup, channelService portssvc.ChannelSvcFacade, eventService portssvc.EventSvcFacade) {
	h := newChannelHandler(channelService, eventService)

	channels := rg.Group("/channels")
	{
		channels.POST("", h.createChannel)
		channels.GET("", h.listChannels)
		channels.GET("/:id", h.getChannel)
		channels.POST("/:id/subscribe", h.subscribe)
		channels.DELETE("/:id/subscribe", h.unsubscribe)
		channels.GET("/:id/events", h.listChannelEvents)
	}
}

// createChannel godoc
// @Summary Create a channel
// @Description Creates a channel; the creator becomes its admin and first subscriber
// @Tags channels
// @Accept  json
// @Produce  json
// @Param   channel body dto.CreateChannelRequest true "Channel details"
// @Success 201 {object} dto.ChannelResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security AccessToken
// @Router /channels [post]
func (h *channelHandler) createChannel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	channel, err := h.channelService.CreateChannel(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create channel")
		return
	}
	c.JSON(http.StatusCreated, dto.ToChannelResponse(channel))
}

// listChannels godoc
// @Summary List subscribed channels
// @Tags channels
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListChannelsResponse
// @Security AccessToken
// @Router /channels [get]
func (h *channelHandler) listChannels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params struct {
		Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
		Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	channels, err := h.channelService.ListSubscribedChannels(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list channels")
		return
	}

	responses := make([]dto.ChannelResponse, 0, len(channels))
	for i := range channels {
		responses = append(responses, dto.ToChannelResponse(&channels[i]))
	}
	c.JSON(http.StatusOK, dto.ListChannelsResponse{Channels: responses})
}

// getChannel godoc
// @Summary Get a channel
// @Tags channels
// @Produce  json
// @Param   id path string true "Channel ID"
// @Success 200 {object} dto.ChannelResponse
// @Failure 404 {object} map[string]string "Channel not found"
// @Security AccessToken
// @Router /channels/{id} [get]
func (h *channelHandler) getChannel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	channel, err := h.channelService.GetChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load channel")
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelResponse(channel))
}

// subscribe godoc
// @Summary Subscribe to a channel
// @Tags channels
// @Produce  json
// @Param   id path string true "Channel ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Channel not found"
// @Security AccessToken
// @Router /channels/{id}/subscribe [post]
func (h *channelHandler) subscribe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.channelService.Subscribe(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to subscribe")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Subscribed"})
}

// unsubscribe godoc
// @Summary Unsubscribe from a channel
// @Tags channels
// @Produce  json
// @Param   id path string true "Channel ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Not subscribed"
// @Security AccessToken
// @Router /channels/{id}/subscribe [delete]
func (h *channelHandler) unsubscribe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.channelService.Unsubscribe(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not subscribed to this channel"})
			return
		}
		respondServiceError(c, logger, err, "Failed to unsubscribe")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Unsubscribed"})
}

// listChannelEvents godoc
// @Summary List a channel's events
// @Tags channels
// @Produce  json
// @Param   id path string true "Channel ID"
// @Param   page query int false "Page" default(1)
// @Param   page_size query int false "Page size" default(20)
// @Success 200 {object} dto.EventListResponse
// @Security AccessToken
// @Router /channels/{id}/events [get]
func (h *channelHandler) listChannelEvents(c *gin.Context) {
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
	params.ChannelID = c.Param("id")

	resp, err := h.eventService.ListEvents(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list channel events")
		return
	}
	c.JSON(http.StatusOK, resp)
}
