package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Danskers/Finances-API/internal/handlers"
	"github.com/Danskers/Finances-API/internal/logger"
	"github.com/Danskers/Finances-API/internal/middleware"
	"github.com/Danskers/Finances-API/internal/models"
	"github.com/Danskers/Finances-API/internal/services"
	"github.com/Danskers/Finances-API/internal/storage"
	"github.com/Danskers/Finances-API/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Store  *memoryStore
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// memoryStore is an in-process object store so the receipt flows run
// without a real storage backend.
type memoryStore struct {
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (s *memoryStore) Upload(_ context.Context, bucket, key string, data []byte, _ string) error {
	s.objects[bucket+"/"+key] = data
	return nil
}

func (s *memoryStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://store.test/%s/%s", bucket, key)
}

var _ storage.ObjectStore = (*memoryStore)(nil)

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Account{},
		&models.Transaction{},
		&models.MonthlyLimit{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	store := newMemoryStore()

	// Services
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)
	limitService := services.NewLimitService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(accountService, transactionService, limitService)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(accountService, transactionService, store)
	limitHandler := handlers.NewLimitHandler(limitService)
	historyHandler := handlers.NewHistoryHandler(transactionService, limitService)
	uploadHandler := handlers.NewUploadHandler(store)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	protected := router.Group("/")
	protected.Use(middleware.SessionRequired(userService))

	protected.GET("/dashboard", dashboardHandler.Dashboard)

	protected.GET("/cuentas", accountHandler.List)
	protected.POST("/cuentas", accountHandler.Create)
	protected.POST("/cuentas/editar/:id", accountHandler.Rename)
	protected.POST("/cuentas/eliminar/:id", accountHandler.Delete)

	protected.GET("/transacciones", transactionHandler.List)
	protected.POST("/transacciones", transactionHandler.Create)
	protected.POST("/transaccion/eliminar/:id", transactionHandler.Delete)

	protected.POST("/limite", limitHandler.Set)
	protected.GET("/historial", historyHandler.Month)

	protected.POST("/uploads/upload-factura", uploadHandler.UploadReceipt)

	return &testApp{DB: db, Store: store, Router: router}
}

// request makes an HTTP request to the test router. A non-empty token
// is attached as the session cookie, the way a browser would send it.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user through the form endpoint.
func (app *testApp) registerUser(t *testing.T, email, password string) {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	rec := app.request("POST", "/register", form.Encode(), "")
	if rec.Code != http.StatusFound {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
}

// loginUser logs in through the form endpoint and returns the session token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	rec := app.request("POST", "/login", form.Encode(), "")
	if rec.Code != http.StatusFound {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login did not set a session cookie")
	return ""
}

// signup registers and logs in a fresh user, returning the session token.
func (app *testApp) signup(t *testing.T, email, password string) string {
	t.Helper()
	app.registerUser(t, email, password)
	return app.loginUser(t, email, password)
}
