package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bill-reminder-backend/internal/api/handlers"
	"bill-reminder-backend/internal/mocks"
	"bill-reminder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CategoryHandlerTestSuite defines the test suite for CategoryHandler
type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCategoryServiceInterface
	handler     *handlers.CategoryHandler
	router      *gin.Engine
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCategoryServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCategoryHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/categories", suite.handler.ListCategories)
	suite.router.POST("/categories", suite.handler.CreateCategory)
	suite.router.DELETE("/categories/:id", suite.handler.DeleteCategory)
}

func (suite *CategoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	resp := []service.CategoryResponse{
		{ID: 1, Name: "Energía", Color: "#f59e0b"},
		{ID: 2, Name: "Gas", Color: "#ef4444"},
	}
	suite.mockService.EXPECT().GetAll().Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.CategoryResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Energía", got[0].Name)
	assert.Equal(suite.T(), "#ef4444", got[1].Color)
}

func (suite *CategoryHandlerTestSuite) TestListCategories_ServiceError() {
	suite.mockService.EXPECT().GetAll().Return(nil, errors.New("db failure"))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	body := w.Body.String()
	assert.Contains(suite.T(), body, "Failed to get categories")
	assert.Contains(suite.T(), body, "db failure")
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	created := &service.CategoryResponse{ID: 5, Name: "Seguro", Color: "#8b5cf6"}
	suite.mockService.EXPECT().
		Create(&service.CreateCategoryRequest{Name: "Seguro", Color: "#8b5cf6"}).
		Return(created, nil)

	body, _ := json.Marshal(map[string]string{"name": "Seguro", "color": "#8b5cf6"})
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.CategoryResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(5), got.ID)
	assert.Equal(suite.T(), "Seguro", got.Name)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid request body")
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_Success() {
	suite.mockService.EXPECT().
		Delete(uint(3)).
		Return(&service.ChangeResponse{Message: "Deleted", Changes: 1}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/categories/3", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ChangeResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Deleted", got.Message)
	assert.Equal(suite.T(), int64(1), got.Changes)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_UnknownIDStillOK() {
	suite.mockService.EXPECT().
		Delete(uint(99)).
		Return(&service.ChangeResponse{Message: "Deleted", Changes: 0}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/categories/99", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ChangeResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), got.Changes)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/categories/abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid category ID")
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
