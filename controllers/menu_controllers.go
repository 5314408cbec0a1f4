package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
	"github.com/elroydev/restaurant-ordering/repository"
	"github.com/elroydev/restaurant-ordering/utils"
)

type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GetMenu -> items currently orderable, for the customer-facing menu page.
func (mc *MenuController) GetMenu(c *gin.Context) {
	items, err := mc.Repo.ListAvailable()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID -> detail of one item.
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Repo.GetByID(uint(itemID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetAllMenuItems -> full catalog including unavailable items (admin).
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	items, err := mc.Repo.ListAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenuItem (admin)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name             string  `json:"name" binding:"required"`
		ShortDescription string  `json:"short_description"`
		LongDescription  string  `json:"long_description"`
		Price            float64 `json:"price" binding:"required,gt=0"`
		ImageUrl         *string `json:"image_url"`
		IsAvailable      *bool   `json:"is_available"`
		Category         string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Price:            req.Price,
		ImageUrl:         req.ImageUrl,
		IsAvailable:      true,
		Category:         req.Category,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := mc.Repo.Create(&item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (price=%.2f)", item.Name, item.Price)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem (admin) -> partial update, including availability toggle.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Repo.GetByID(uint(itemID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var req struct {
		Name             *string  `json:"name"`
		ShortDescription *string  `json:"short_description"`
		LongDescription  *string  `json:"long_description"`
		Price            *float64 `json:"price"`
		ImageUrl         *string  `json:"image_url"`
		IsAvailable      *bool    `json:"is_available"`
		Category         *string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.ShortDescription != nil {
		item.ShortDescription = *req.ShortDescription
	}
	if req.LongDescription != nil {
		item.LongDescription = *req.LongDescription
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
			return
		}
		// Carts and orders keep their snapshot prices; only future adds
		// see the new price.
		item.Price = *req.Price
	}
	if req.ImageUrl != nil {
		item.ImageUrl = req.ImageUrl
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Category != nil {
		item.Category = *req.Category
	}

	if err := mc.Repo.Save(item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem (admin)
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Repo.Delete(uint(itemID)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": itemID})
}
