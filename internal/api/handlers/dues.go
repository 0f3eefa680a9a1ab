package handlers

import (
	"net/http"
	"strconv"

	apperrors "bill-reminder-backend/internal/errors"
	"bill-reminder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DuesHandler handles HTTP requests for the server-side due computation
type DuesHandler struct {
	duesService service.DuesServiceInterface
}

// NewDuesHandler creates a new dues handler
func NewDuesHandler(duesService service.DuesServiceInterface) *DuesHandler {
	return &DuesHandler{
		duesService: duesService,
	}
}

// GetUpcoming handles GET /api/dues/upcoming
// @Summary List upcoming dues
// @Description Get each reminder's next unpaid period with due date and days remaining, sorted by due date. Fixed page size of 5; out-of-range pages clamp to the last valid page.
// @Tags dues
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} service.UpcomingResponse "One page of upcoming dues"
// @Failure 400 {object} map[string]interface{} "Invalid page parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dues/upcoming [get]
func (h *DuesHandler) GetUpcoming(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter", "details": apperrors.ErrInvalidPage.Error()})
		return
	}

	resp, err := h.duesService.Upcoming(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get upcoming dues", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSummary handles GET /api/dues/summary
// @Summary Current month summary
// @Description Get paid and pending totals plus the upcoming count for the current calendar month
// @Tags dues
// @Accept json
// @Produce json
// @Success 200 {object} service.MonthSummaryResponse "Current month totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dues/summary [get]
func (h *DuesHandler) GetSummary(c *gin.Context) {
	resp, err := h.duesService.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get month summary", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
