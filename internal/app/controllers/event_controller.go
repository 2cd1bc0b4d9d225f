package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
)

// EventController handles campus events
type EventController struct {
	eventService EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListPage renders every event with its category.
func (c *EventController) ListPage(ctx *gin.Context) {
	events, err := c.eventService.ListCategorized(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "events.html", "Events", "events", gin.H{"Events": events})
}

// DetailPage renders one event.
func (c *EventController) DetailPage(ctx *gin.Context) {
	id, ok := pageID(ctx, "id")
	if !ok {
		return
	}
	event, err := c.eventService.GetByID(ctx, id)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "event_detail.html", event.Title, "events", gin.H{"Event": event})
}

// ListEvents lists events with their category for today
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CategorizedEvent}
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListCategorized(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, events)
}

// GetEvent retrieves an event by ID
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.CategorizedEvent}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	event, err := c.eventService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, event)
}

// CreateEvent adds an event
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventRequest true "Event"
// @Success 201 {object} dto.APIResponse{data=models.Event}
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	event, err := c.eventService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, event)
}

// UpdateEvent updates an event
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	var req dto.EventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	event, err := c.eventService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, event)
}

// DeleteEvent deletes an event
// @Summary Delete event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.eventService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Event")
}
