package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elroydev/restaurant-ordering/models"
	"github.com/elroydev/restaurant-ordering/services"
	"github.com/elroydev/restaurant-ordering/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// PlaceOrder -> convert the user's cart into an order (status=pending).
// The cart is cleared in the same transaction.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		DeliveryAddress     string `json:"delivery_address"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.PlaceOrder(utils.CurrentUserID(c), req.DeliveryAddress, req.SpecialInstructions)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetUserOrders -> list the requesting user's orders, newest first.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(utils.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order; only visible to its owner.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOrder(uint(orderID), utils.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CancelOrder -> owner cancels a not-yet-terminal order.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CancelOrder(uint(orderID), utils.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

/*
========================================
 STAFF / ADMIN
========================================
*/

// GetAllOrders -> every order, for restaurant staff tooling.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orders, err := oc.Orders.Repo.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetPendingOrders -> orders still waiting for confirmation, oldest first.
func (oc *OrderController) GetPendingOrders(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orders, err := oc.Orders.Repo.ListByStatus(models.OrderStatusPending)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pending orders", orders)
}

// UpdateOrderStatus -> advance the state machine (pending -> confirmed ->
// preparing -> ready -> delivered; cancel from any non-terminal state).
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	if utils.CurrentRole(c) != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.AdvanceStatus(uint(orderID), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
