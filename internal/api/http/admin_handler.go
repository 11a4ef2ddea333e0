package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/service"
)

type AdminHandler struct {
	rentalSvc service.RentalService
	userSvc   service.UserService
	reportSvc service.ReportService
}

func NewAdminHandler(rentalSvc service.RentalService, userSvc service.UserService, reportSvc service.ReportService) *AdminHandler {
	return &AdminHandler{rentalSvc: rentalSvc, userSvc: userSvc, reportSvc: reportSvc}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) ListOverdue(c *gin.Context) {
	overdue, err := h.rentalSvc.ListOverdue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overdue": overdue})
}

// userRentalRef identifies a rental across users, for admin due-date and
// return actions.
type userRentalRef struct {
	UserID string    `json:"userId" binding:"required"`
	ItemID string    `json:"itemId" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
}

func (h *AdminHandler) ExtendDueDate(c *gin.Context) {
	var in userRentalRef
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dueDate, err := h.rentalSvc.ExtendDueDate(c.Request.Context(), in.UserID, in.ItemID, in.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dueDate": dueDate})
}

func (h *AdminHandler) ShortenDueDate(c *gin.Context) {
	var in userRentalRef
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dueDate, err := h.rentalSvc.ShortenDueDate(c.Request.Context(), in.UserID, in.ItemID, in.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dueDate": dueDate})
}

// Return performs a return on a user's behalf, optionally filing an
// inspection report in the same action. The report is filed before the
// return so the rental is still present to match against.
func (h *AdminHandler) Return(c *gin.Context) {
	var in struct {
		userRentalRef
		ReportDetails string `json:"reportDetails"`
		Location      string `json:"location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var report *domain.Report
	if in.ReportDetails != "" {
		var err error
		report, err = h.reportSvc.Submit(c.Request.Context(), in.UserID, in.ItemID, in.Date, in.ReportDetails, in.Location)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	receipt, err := h.rentalSvc.Return(c.Request.Context(), in.UserID, in.ItemID, in.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt, "report": report})
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	status := domain.ReportStatus(c.Query("status"))
	reports, err := h.reportSvc.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	report, err := h.reportSvc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
