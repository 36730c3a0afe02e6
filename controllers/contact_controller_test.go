package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogapi/testutils"

	"github.com/stretchr/testify/assert"
)

func TestCreateContact_Success(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	controller := NewContactController(db)
	r.POST("/contact", controller.CreateContact)

	jsonData, _ := json.Marshal(map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hello there",
	})

	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status": "OK", "id": 1}`, resp.Body.String())
}

func TestCreateContact_BadEmail(t *testing.T) {
	db, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	controller := NewContactController(db)
	r.POST("/contact", controller.CreateContact)

	jsonData, _ := json.Marshal(map[string]string{
		"name":    "Jane Doe",
		"email":   "not-an-email",
		"message": "Hello there",
	})

	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateContact_MessageTooLong(t *testing.T) {
	db, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	controller := NewContactController(db)
	r.POST("/contact", controller.CreateContact)

	jsonData, _ := json.Marshal(map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": strings.Repeat("a", 501),
	})

	req, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
