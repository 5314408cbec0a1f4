package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elroydev/restaurant-ordering/services"
	"github.com/elroydev/restaurant-ordering/tax"
	"github.com/elroydev/restaurant-ordering/utils"
)

// respondServiceError maps the core error taxonomy onto HTTP codes. The
// services never categorize for HTTP themselves.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrStatusConflict):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrBlankAddress),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, tax.ErrInvalidAmount):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
