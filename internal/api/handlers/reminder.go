package handlers

import (
	"net/http"

	"bill-reminder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles HTTP requests for reminder operations
type ReminderHandler struct {
	reminderService service.ReminderServiceInterface
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService service.ReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

// ListReminders handles GET /api/reminders
// @Summary List all reminders
// @Description Get all reminders joined with their category name and color
// @Tags reminders
// @Accept json
// @Produce json
// @Success 200 {array} service.ReminderResponse "Successfully retrieved reminders"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	reminders, err := h.reminderService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reminders", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// CreateReminder handles POST /api/reminders
// @Summary Create a new reminder
// @Description Create a recurring monthly payment obligation
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body service.ReminderRequest true "Reminder data"
// @Success 201 {object} service.ReminderResponse "Successfully created reminder"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req service.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reminder, err := h.reminderService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// UpdateReminder handles PUT /api/reminders/:id
// @Summary Update a reminder
// @Description Replace all mutable fields of a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Param reminder body service.ReminderRequest true "Reminder data"
// @Success 200 {object} service.ChangeResponse "Update result with affected row count"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	var req service.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.reminderService.Update(id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteReminder handles DELETE /api/reminders/:id
// @Summary Delete a reminder
// @Description Delete a reminder; its recorded payments are left in place
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} service.ChangeResponse "Deletion result with affected row count"
// @Failure 400 {object} map[string]interface{} "Invalid reminder ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	result, err := h.reminderService.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
