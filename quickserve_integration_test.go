package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uguryukselwork/quickserve/hub"
	"github.com/uguryukselwork/quickserve/layout"
	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/notifier"
	"github.com/uguryukselwork/quickserve/router"
	"github.com/uguryukselwork/quickserve/services"
	"github.com/uguryukselwork/quickserve/settings"
	"github.com/uguryukselwork/quickserve/storage"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow:
// 0. Seed a staff user, login -> token
// 1. Customer fills the cart and places an order
// 2. Customer raises a waiter call
// 3. Staff sees both, advances the order, resolves the call
// 4. Dashboard counters drop back to zero
func TestEndToEndIntegration(t *testing.T) {
	r := setupTestServer()

	token := loginTest(t, r)

	orderID := placeOrderTest(t, r)

	callID := raiseCallTest(t, r)

	staffListsTest(t, r, token, orderID, callID)

	advanceOrderTest(t, r, token, orderID)

	resolveCallTest(t, r, token, callID)

	dashboardTest(t, r, token)
}

func setupTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Snapshot{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Test Staff",
		Email:    "staff@example.com",
		Password: string(hashed),
		Role:     "staff",
	})

	gw := storage.NewGateway(db)

	entityStore := store.New(gw)
	entityStore.Load(store.SeedMenu())

	staffSettings := settings.New(gw)
	staffSettings.Load()

	editor := layout.NewEditor(gw, entityStore)
	editor.Load()

	wsHub := hub.New()
	engine := notifier.NewEngine(entityStore, staffSettings, wsHub)
	entityStore.Subscribe(wsHub.HandleStoreEvent)
	entityStore.Subscribe(engine.HandleEvent)

	checkout := services.NewCheckoutService(entityStore)
	checkout.ProcessingDelay = 0
	checkout.SuccessDelay = 0

	return router.SetupRouter(router.Deps{
		DB:       db,
		Store:    entityStore,
		Settings: staffSettings,
		Editor:   editor,
		Engine:   engine,
		Hub:      wsHub,
		Checkout: checkout,
		Assist:   services.NewAssistantService(entityStore),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginTest(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    "staff@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func placeOrderTest(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, http.MethodPost, "/tables/5/cart/items", "", map[string]string{"menu_item_id": "2"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/tables/5/orders", "", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Order `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 240, resp.Data.Total)
	assert.Equal(t, models.OrderPending, resp.Data.Status)
	return resp.Data.ID
}

func raiseCallTest(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, http.MethodPost, "/tables/5/calls", "", map[string]string{"type": models.CallBill})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.WaiterCall `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func staffListsTest(t *testing.T, r *gin.Engine, token, orderID, callID string) {
	// Staff routes without a token are rejected.
	w := doJSON(t, r, http.MethodGet, "/staff/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/staff/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var orders struct {
		Data []models.Order `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders.Data, 1)
	assert.Equal(t, orderID, orders.Data[0].ID)

	w = doJSON(t, r, http.MethodGet, "/staff/calls", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var calls struct {
		Data []models.WaiterCall `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &calls))
	assert.Len(t, calls.Data, 1)
	assert.Equal(t, callID, calls.Data[0].ID)
}

func advanceOrderTest(t *testing.T, r *gin.Engine, token, orderID string) {
	for _, status := range []string{models.OrderPreparing, models.OrderServed, models.OrderCompleted} {
		w := doJSON(t, r, http.MethodPatch, "/staff/orders/"+orderID+"/status", token,
			map[string]string{"status": status})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodPatch, "/staff/orders/"+orderID+"/payment", token,
		map[string]string{"status": models.PaymentPaid})
	assert.Equal(t, http.StatusOK, w.Code)
}

func resolveCallTest(t *testing.T, r *gin.Engine, token, callID string) {
	w := doJSON(t, r, http.MethodPatch, "/staff/calls/"+callID+"/resolve", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/staff/calls/responded", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func dashboardTest(t *testing.T, r *gin.Engine, token string) {
	w := doJSON(t, r, http.MethodGet, "/staff/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			PendingCalls int `json:"pending_calls"`
			ActiveOrders int `json:"active_orders"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.PendingCalls)
	assert.Equal(t, 0, resp.Data.ActiveOrders)
}
