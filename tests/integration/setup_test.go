package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"figimap/internal/handlers"
	"figimap/internal/logger"
	"figimap/internal/middleware"
	"figimap/internal/services"
	"figimap/internal/testutil"
	"figimap/internal/validator"
)

const testAdminKey = "integration-admin-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T, maxJobs int) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	jobLogService := services.NewJobLogService(db)
	mappingHandler := handlers.NewMappingHandler(jobLogService, maxJobs)
	jobLogHandler := handlers.NewJobLogHandler(jobLogService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	mappingRoutes := v1.Group("/mapping")
	mappingRoutes.GET("/reference", mappingHandler.Reference)
	mappingRoutes.POST("/classify", mappingHandler.Classify)
	mappingRoutes.POST("/jobs", mappingHandler.BuildJobs)

	logs := mappingRoutes.Group("/logs")
	logs.Use(middleware.APIKeyAuth(testAdminKey))
	logs.GET("", jobLogHandler.ListJobLogs)
	logs.GET("/:id", jobLogHandler.GetJobLog)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
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

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d (%s), got %d: %s", status, http.StatusText(status), rec.Code, rec.Body.String())
	}
}
