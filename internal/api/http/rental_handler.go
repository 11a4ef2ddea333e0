package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gearshed-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	userSvc   service.UserService
	reportSvc service.ReportService
}

func NewRentalHandler(rentalSvc service.RentalService, userSvc service.UserService, reportSvc service.ReportService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, userSvc: userSvc, reportSvc: reportSvc}
}

// rentalRef identifies one rental: a user may rent the same item twice, so
// the original rental instant disambiguates.
type rentalRef struct {
	ItemID string    `json:"itemId" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
}

func (h *RentalHandler) ListRentals(c *gin.Context) {
	identity := CallerIdentity(c)
	rentals, err := h.rentalSvc.ListRentals(c.Request.Context(), identity.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rentals": rentals})
}

func (h *RentalHandler) Return(c *gin.Context) {
	identity := CallerIdentity(c)
	var in rentalRef
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.rentalSvc.Return(c.Request.Context(), identity.UID, in.ItemID, in.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *RentalHandler) History(c *gin.Context) {
	identity := CallerIdentity(c)
	entries, err := h.userSvc.History(c.Request.Context(), identity.UID, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// SubmitReport files a lost/broken report against one of the caller's open
// rentals. The rental stays open; filing never triggers a return.
func (h *RentalHandler) SubmitReport(c *gin.Context) {
	identity := CallerIdentity(c)
	var in struct {
		ItemID   string    `json:"itemId" binding:"required"`
		Date     time.Time `json:"date" binding:"required"`
		Details  string    `json:"details" binding:"required"`
		Location string    `json:"location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := h.reportSvc.Submit(c.Request.Context(), identity.UID, in.ItemID, in.Date, in.Details, in.Location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *RentalHandler) ListMyReports(c *gin.Context) {
	identity := CallerIdentity(c)
	reports, err := h.reportSvc.ListByUser(c.Request.Context(), identity.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
