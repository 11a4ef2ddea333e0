package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshed-backend/internal/service"
)

type CartHandler struct {
	cartSvc   service.CartService
	rentalSvc service.RentalService
}

func NewCartHandler(cartSvc service.CartService, rentalSvc service.RentalService) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, rentalSvc: rentalSvc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	identity := CallerIdentity(c)
	cart, err := h.cartSvc.GetCart(c.Request.Context(), identity.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) Reserve(c *gin.Context) {
	identity := CallerIdentity(c)
	var in struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity int64  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line, err := h.cartSvc.Reserve(c.Request.Context(), identity.UID, in.ItemID, in.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// RemoveLine cancels a reservation before confirmation. The item's stock
// was never touched, so this is pure cart bookkeeping.
func (h *CartHandler) RemoveLine(c *gin.Context) {
	identity := CallerIdentity(c)
	if err := h.cartSvc.RemoveLine(c.Request.Context(), identity.UID, c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	identity := CallerIdentity(c)
	if err := h.cartSvc.Clear(c.Request.Context(), identity.UID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Checkout converts the caller's cart into rentals, all-or-nothing.
func (h *CartHandler) Checkout(c *gin.Context) {
	identity := CallerIdentity(c)
	rentals, err := h.rentalSvc.Checkout(c.Request.Context(), identity.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rentals": rentals})
}
