package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom_balance/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminSecret = "teacher-secret"

// newTestDB opens a private in-memory database for one test.
// The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Student{}))
	return db
}

// newTestRouter wires the full route table against a fresh database
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	r.POST("/api/login", LoginHandler(db, testAdminSecret))
	r.GET("/api/students", ListStudentsHandler(db))
	r.POST("/api/update", UpdateBalanceHandler(db))
	r.POST("/api/create-student", CreateStudentHandler(db))
	r.POST("/api/wipe-students", WipeStudentsHandler(db))
	r.POST("/api/my-balance", MyBalanceHandler(db))
	r.DELETE("/api/delete-student/:id", DeleteStudentHandler(db))
	return r, db
}

// doJSON performs a request with a JSON body and decodes the JSON response
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

// listStudents fetches the roster and decodes the array response
func listStudents(t *testing.T, r *gin.Engine) []domain.Student {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var students []domain.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	return students
}

// seedStudent inserts a record directly, bypassing the API
func seedStudent(t *testing.T, db *gorm.DB, code, name string, balance int64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Student{Code: code, Name: name, Balance: balance}).Error)
}
