package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elroydev/restaurant-ordering/services"
	"github.com/elroydev/restaurant-ordering/utils"
)

type BillController struct {
	Bills *services.BillService
}

func NewBillController(bills *services.BillService) *BillController {
	return &BillController{Bills: bills}
}

// GetOrderBill -> itemized tax-inclusive bill for an order. Regenerable at
// any time with identical results.
func (bc *BillController) GetOrderBill(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	bill, err := bc.Bills.BuildBill(uint(orderID), utils.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order bill", bill)
}
