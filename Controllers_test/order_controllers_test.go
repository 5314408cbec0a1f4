package Controllers_test

import (
	"net/http"
	"regexp"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/controllers"
	"github.com/elroydev/restaurant-ordering/models"
	"github.com/elroydev/restaurant-ordering/utils"
)

// setupOrderRouter mounts the customer-facing order routes as user 1 and the
// staff routes under /admin with the given role.
func setupOrderRouter(db *gorm.DB, adminRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	carts, orders, bills := newCartStack(db)
	cartCtrl := controllers.NewCartController(carts)
	orderCtrl := controllers.NewOrderController(orders)
	billCtrl := controllers.NewBillController(bills)

	authed := router.Group("/", authAs(1, "customer"))
	authed.POST("/cart/add", cartCtrl.AddToCart)
	authed.POST("/orders", orderCtrl.PlaceOrder)
	authed.GET("/orders", orderCtrl.GetUserOrders)
	authed.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	authed.GET("/orders/:order_id/bill", billCtrl.GetOrderBill)
	authed.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)

	admin := router.Group("/admin", authAs(2, adminRole))
	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.GET("/orders/pending", orderCtrl.GetPendingOrders)
	admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return router
}

func seedHandlerMenu(t *testing.T, db *gorm.DB) (models.MenuItem, models.MenuItem) {
	t.Helper()
	dosa := models.MenuItem{Name: "Masala Dosa", Price: 100, IsAvailable: true}
	naan := models.MenuItem{Name: "Butter Naan", Price: 50, IsAvailable: true}
	assert.NoError(t, db.Create(&dosa).Error)
	assert.NoError(t, db.Create(&naan).Error)
	return dosa, naan
}

func TestPlaceOrderEndpoint(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	dosa, naan := seedHandlerMenu(t, db)
	router := setupOrderRouter(db, "admin")

	w := doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": dosa.ID, "quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": naan.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"delivery_address":     "12 Church Street",
		"special_instructions": "ring twice",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := parseEnvelope(t, w)
	assert.Equal(t, "Order placed", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{8}$`), data["order_number"])
	assert.Equal(t, float64(250), data["subtotal"])
	assert.Equal(t, 22.5, data["cgst_amount"])
	assert.Equal(t, 22.5, data["sgst_amount"])
	assert.Equal(t, float64(45), data["gst_amount"])
	assert.Equal(t, float64(295), data["total_amount"])
	assert.Equal(t, "pending", data["status"])

	// Second attempt finds an empty cart.
	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "12 Church Street"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = parseEnvelope(t, w)
	assert.Len(t, resp["data"].([]interface{}), 1)
}

func TestPlaceOrderBlankAddress(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	dosa, _ := seedHandlerMenu(t, db)
	router := setupOrderRouter(db, "admin")

	w := doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": dosa.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Cart must be intact after the rejected attempt.
	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "12 Church Street"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOrderBillEndpoint(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	dosa, _ := seedHandlerMenu(t, db)
	assert.NoError(t, db.Create(&models.Restaurant{Name: "Spice Garden", Address: "42 MG Road"}).Error)
	assert.NoError(t, db.Create(&models.User{Name: "Priya", Phone: "9800000001", Password: "x"}).Error)
	router := setupOrderRouter(db, "admin")

	w := doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": dosa.ID, "quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "12 Church Street"})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := int(parseEnvelope(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, router, "GET", "/orders/"+strconv.Itoa(orderID)+"/bill", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseEnvelope(t, w)
	assert.Equal(t, "Order bill", resp["message"])
	bill := resp["data"].(map[string]interface{})
	assert.Equal(t, "Spice Garden", bill["restaurant_name"])
	assert.Equal(t, "Priya", bill["customer_name"])
	assert.Equal(t, float64(200), bill["subtotal"])
	assert.Equal(t, float64(236), bill["total_amount"])
	assert.Equal(t, "₹236.00", bill["total_display"])
	items := bill["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Masala Dosa", items[0].(map[string]interface{})["name"])

	// Regenerating the bill gives the same document.
	w = doJSON(t, router, "GET", "/orders/"+strconv.Itoa(orderID)+"/bill", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp, parseEnvelope(t, w))
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	dosa, _ := seedHandlerMenu(t, db)
	router := setupOrderRouter(db, "admin")

	w := doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": dosa.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "12 Church Street"})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := int(parseEnvelope(t, w)["data"].(map[string]interface{})["id"].(float64))
	statusURL := "/admin/orders/" + strconv.Itoa(orderID) + "/status"

	w = doJSON(t, router, "GET", "/admin/orders/pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseEnvelope(t, w)["data"].([]interface{}), 1)

	// Skipping a step is rejected.
	w = doJSON(t, router, "PATCH", statusURL, map[string]interface{}{"status": "ready"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PATCH", statusURL, map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseEnvelope(t, w)
	assert.Equal(t, "confirmed", resp["data"].(map[string]interface{})["status"])

	w = doJSON(t, router, "PATCH", statusURL, map[string]interface{}{"status": "nonsense"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/admin/orders/pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, parseEnvelope(t, w)["data"])
}

func TestOrderStatusRequiresAdmin(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	dosa, _ := seedHandlerMenu(t, db)
	router := setupOrderRouter(db, "customer")

	w := doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": dosa.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "12 Church Street"})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := int(parseEnvelope(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, router, "PATCH", "/admin/orders/"+strconv.Itoa(orderID)+"/status", map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "GET", "/admin/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCancelOrderEndpoint(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	dosa, _ := seedHandlerMenu(t, db)
	router := setupOrderRouter(db, "admin")

	w := doJSON(t, router, "POST", "/cart/add", map[string]interface{}{"menu_item_id": dosa.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/orders", map[string]interface{}{"delivery_address": "12 Church Street"})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := int(parseEnvelope(t, w)["data"].(map[string]interface{})["id"].(float64))
	cancelURL := "/orders/" + strconv.Itoa(orderID) + "/cancel"

	w = doJSON(t, router, "POST", cancelURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseEnvelope(t, w)
	assert.Equal(t, "cancelled", resp["data"].(map[string]interface{})["status"])

	// Cancelling a terminal order fails.
	w = doJSON(t, router, "POST", cancelURL, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/orders/4242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
