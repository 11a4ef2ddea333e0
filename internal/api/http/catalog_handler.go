package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/repository"
	"gearshed-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc  service.CatalogService
	categorySvc service.CategoryService
}

func NewCatalogHandler(catalogSvc service.CatalogService, categorySvc service.CategoryService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc, categorySvc: categorySvc}
}

// ListItems serves the storefront catalog with optional query-param
// filters: category, subcategory, location, q (name substring).
func (h *CatalogHandler) ListItems(c *gin.Context) {
	filter := repository.ItemFilter{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Location:    c.Query("location"),
		Query:       c.Query("q"),
	}
	items, err := h.catalogSvc.ListItems(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.catalogSvc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type itemInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Location    string `json:"location"`
	Rented      int64  `json:"rented" binding:"min=0"`
	InStock     int64  `json:"inStock" binding:"min=0"`
	ImageURL    string `json:"imageUrl"`
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var in itemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &domain.Item{
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Location:    in.Location,
		Rented:      in.Rented,
		InStock:     in.InStock,
		ImageURL:    in.ImageURL,
	}
	if err := h.catalogSvc.CreateItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	var in itemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &domain.Item{
		ID:          c.Param("id"),
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Location:    in.Location,
		Rented:      in.Rented,
		InStock:     in.InStock,
		ImageURL:    in.ImageURL,
	}
	if err := h.catalogSvc.UpdateItem(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	if err := h.catalogSvc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type categoryInput struct {
	Name          string   `json:"name" binding:"required"`
	Subcategories []string `json:"subcategories"`
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.categorySvc.CreateCategory(c.Request.Context(), in.Name, in.Subcategories)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := &domain.Category{ID: c.Param("id"), Name: in.Name, Subcategories: in.Subcategories}
	if err := h.categorySvc.UpdateCategory(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.categorySvc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
