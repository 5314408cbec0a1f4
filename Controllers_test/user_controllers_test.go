package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/controllers"
	"github.com/elroydev/restaurant-ordering/middlewares"
	"github.com/elroydev/restaurant-ordering/repository"
	"github.com/elroydev/restaurant-ordering/utils"
)

// setupUserRouter uses the real JWT middleware so the register -> login ->
// profile -> logout cycle is tested end to end.
func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(repository.NewUserRepository(db))

	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)

	authed := router.Group("/", middlewares.AuthMiddleware())
	authed.GET("/profile", userCtrl.GetProfile)
	authed.POST("/logout", userCtrl.Logout)
	return router
}

func doAuthedGET(t *testing.T, router *gin.Engine, url, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", url, nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginProfileLogout(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	router := setupUserRouter(db)

	w := doJSON(t, router, "POST", "/register", map[string]interface{}{
		"name":     "Priya",
		"phone":    "9800000001",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := parseEnvelope(t, w)
	assert.Equal(t, "User registered", resp["message"])

	// Duplicate phone numbers are rejected.
	w = doJSON(t, router, "POST", "/register", map[string]interface{}{
		"name":     "Someone Else",
		"phone":    "9800000001",
		"password": "secret456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, "POST", "/login", map[string]interface{}{
		"phone":    "9800000001",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/login", map[string]interface{}{
		"phone":    "9800000001",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	resp = parseEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.Equal(t, "customer", data["user_role"])

	w = doAuthedGET(t, router, "/profile", token)
	assert.Equal(t, http.StatusOK, w.Code)
	profile := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Priya", profile["name"])
	assert.Equal(t, "9800000001", profile["phone"])
	assert.Equal(t, "customer", profile["role"])

	// Logout revokes the token for subsequent requests.
	req, err := http.NewRequest("POST", "/logout", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doAuthedGET(t, router, "/profile", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	utils.InitLogger()
	db := newHandlerDB(t)
	router := setupUserRouter(db)

	req, err := http.NewRequest("GET", "/profile", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doAuthedGET(t, router, "/profile", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
