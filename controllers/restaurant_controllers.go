package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/repository"
	"github.com/elroydev/restaurant-ordering/utils"
)

type RestaurantController struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GetRestaurant -> public restaurant profile shown on the landing page and
// printed on bills.
func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	restaurant, err := rc.Repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant profile not configured"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant profile", restaurant)
}
