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

// ReminderHandlerTestSuite defines the test suite for ReminderHandler
type ReminderHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReminderServiceInterface
	handler     *handlers.ReminderHandler
	router      *gin.Engine
}

func (suite *ReminderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReminderServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReminderHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/reminders", suite.handler.ListReminders)
	suite.router.POST("/reminders", suite.handler.CreateReminder)
	suite.router.PUT("/reminders/:id", suite.handler.UpdateReminder)
	suite.router.DELETE("/reminders/:id", suite.handler.DeleteReminder)
}

func (suite *ReminderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReminderHandlerTestSuite) TestListReminders_Success() {
	catID := uint(2)
	name := "Gas"
	color := "#ef4444"
	resp := []service.ReminderResponse{
		{ID: 1, Title: "Gas bill", CategoryID: &catID, DayOfMonth: 10, CategoryName: &name, CategoryColor: &color},
		{ID: 2, Title: "Rent", DayOfMonth: 1},
	}
	suite.mockService.EXPECT().GetAll().Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/reminders", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.ReminderResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Gas", *got[0].CategoryName)
	assert.Nil(suite.T(), got[1].CategoryName)
}

func (suite *ReminderHandlerTestSuite) TestListReminders_ServiceError() {
	suite.mockService.EXPECT().GetAll().Return(nil, errors.New("db failure"))

	req := httptest.NewRequest(http.MethodGet, "/reminders", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to get reminders")
}

func (suite *ReminderHandlerTestSuite) TestCreateReminder_Success() {
	created := &service.ReminderResponse{ID: 7, Title: "Gas bill", DayOfMonth: 10}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{"title": "Gas bill", "day_of_month": 10})
	req := httptest.NewRequest(http.MethodPost, "/reminders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ReminderResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(7), got.ID)
	assert.Equal(suite.T(), 10, got.DayOfMonth)
}

func (suite *ReminderHandlerTestSuite) TestCreateReminder_ValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, errors.New("validation failed: day_of_month out of range"))

	body, _ := json.Marshal(map[string]interface{}{"title": "Bad", "day_of_month": 40})
	req := httptest.NewRequest(http.MethodPost, "/reminders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to create reminder")
}

func (suite *ReminderHandlerTestSuite) TestUpdateReminder_Success() {
	suite.mockService.EXPECT().
		Update(uint(7), gomock.Any()).
		Return(&service.ChangeResponse{Message: "Updated", Changes: 1}, nil)

	body, _ := json.Marshal(map[string]interface{}{"title": "Renamed", "day_of_month": 28})
	req := httptest.NewRequest(http.MethodPut, "/reminders/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ChangeResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Updated", got.Message)
	assert.Equal(suite.T(), int64(1), got.Changes)
}

func (suite *ReminderHandlerTestSuite) TestUpdateReminder_InvalidID() {
	body, _ := json.Marshal(map[string]interface{}{"title": "Renamed", "day_of_month": 28})
	req := httptest.NewRequest(http.MethodPut, "/reminders/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid reminder ID")
}

func (suite *ReminderHandlerTestSuite) TestDeleteReminder_Success() {
	suite.mockService.EXPECT().
		Delete(uint(7)).
		Return(&service.ChangeResponse{Message: "Deleted", Changes: 1}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/reminders/7", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ChangeResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Deleted", got.Message)
}

func (suite *ReminderHandlerTestSuite) TestDeleteReminder_ServiceError() {
	suite.mockService.EXPECT().
		Delete(uint(7)).
		Return(nil, errors.New("db failure"))

	req := httptest.NewRequest(http.MethodDelete, "/reminders/7", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to delete reminder")
}

func TestReminderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderHandlerTestSuite))
}
