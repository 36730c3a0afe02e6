package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/testutils"

	"github.com/stretchr/testify/assert"
)

func TestCreateCategory_ReturnsID(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	controller := NewCategoryController(db)
	r.POST("/admin/categories", controller.CreateCategory)

	jsonData, _ := json.Marshal(map[string]string{"name": "Tech"})

	req, _ := http.NewRequest(http.MethodPost, "/admin/categories", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status": "OK", "id": 3}`, resp.Body.String())
}

func TestCreateCategory_MissingName(t *testing.T) {
	db, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	controller := NewCategoryController(db)
	r.POST("/admin/categories", controller.CreateCategory)

	req, _ := http.NewRequest(http.MethodPost, "/admin/categories", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Contains(t, body["status"], "Invalid input")
}

func TestDeleteCategory_InUseConflict(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "categories"\."id" = \$1`).
		WithArgs(uint(1), 1).
		WillReturnRows(mock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "Tech", now, now))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "post_categories" WHERE category_id = \$1`).
		WithArgs(uint(1)).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectRollback()

	r := testutils.SetupTestRouter()
	controller := NewCategoryController(db)
	r.DELETE("/admin/categories/:id", controller.DeleteCategory)

	req, _ := http.NewRequest(http.MethodDelete, "/admin/categories/1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.JSONEq(t, `{"status": "Category is in use"}`, resp.Body.String())
}

func TestUpdateCategory_InvalidID(t *testing.T) {
	db, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	controller := NewCategoryController(db)
	r.PUT("/admin/categories/:id", controller.UpdateCategory)

	jsonData, _ := json.Marshal(map[string]string{"name": "Tech"})

	req, _ := http.NewRequest(http.MethodPut, "/admin/categories/abc", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"status": "Invalid id"}`, resp.Body.String())
}

func TestGetCategories_ListShape(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY created_at DESC`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(2, "Life", now, now).
			AddRow(1, "Tech", now.Add(-time.Hour), now.Add(-time.Hour)))

	r := testutils.SetupTestRouter()
	controller := NewCategoryController(db)
	r.GET("/admin/categories", controller.GetCategories)

	req, _ := http.NewRequest(http.MethodGet, "/admin/categories", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status     string `json:"status"`
		Categories []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, "Life", body.Categories[0].Name)
}
