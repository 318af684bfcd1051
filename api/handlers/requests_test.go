package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtriage/mailtriage/internal/models"
)

type fakeRequestTypeRepo struct {
	entries []models.RequestType
}

func (r *fakeRequestTypeRepo) List(ctx context.Context) ([]models.RequestType, error) {
	return r.entries, nil
}

func (r *fakeRequestTypeRepo) Append(ctx context.Context, category, subRequestType string) (*models.RequestType, error) {
	entry := models.RequestType{Category: category, SubRequestType: subRequestType}
	r.entries = append(r.entries, entry)
	return &entry, nil
}

func (r *fakeRequestTypeRepo) EnsureSeed(ctx context.Context) error {
	return nil
}

func setupRequestsRouter(repo *fakeRequestTypeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/v1/requests", ListRequestTypes(repo))
	router.POST("/v1/requests", AddRequestType(repo))
	return router
}

func TestListRequestTypes(t *testing.T) {
	repo := &fakeRequestTypeRepo{entries: models.SeedRequestTypes()}
	router := setupRequestsRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 8)
	assert.Equal(t, "Account Management", entries[0]["category"])
	assert.Equal(t, "Update Contact Details", entries[0]["sub_request_type"])
}

func TestAddRequestType(t *testing.T) {
	repo := &fakeRequestTypeRepo{entries: models.SeedRequestTypes()}
	router := setupRequestsRouter(repo)

	payload, _ := json.Marshal(map[string]string{
		"category":     "Card Services",
		"request_type": "Activate Card",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message     string              `json:"message"`
		UpdatedData []map[string]string `json:"updated_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Request added successfully", response.Message)
	require.Len(t, response.UpdatedData, 9)
	// prior entries keep their order, the new one is appended
	assert.Equal(t, "Account Management", response.UpdatedData[0]["category"])
	assert.Equal(t, "Card Services", response.UpdatedData[8]["category"])
	assert.Equal(t, "Activate Card", response.UpdatedData[8]["sub_request_type"])
}

func TestAddRequestType_MissingFields(t *testing.T) {
	repo := &fakeRequestTypeRepo{entries: models.SeedRequestTypes()}
	router := setupRequestsRouter(repo)

	payload, _ := json.Marshal(map[string]string{"category": "Card Services"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, repo.entries, 8)
}
