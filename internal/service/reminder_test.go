package service_test

import (
	"errors"
	"testing"

	"bill-reminder-backend/internal/database/models"
	apperrors "bill-reminder-backend/internal/errors"
	"bill-reminder-backend/internal/mocks"
	"bill-reminder-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReminderServiceTestSuite defines the test suite for ReminderService
type ReminderServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockReminderRepositoryInterface
	mockCategoryRepo *mocks.MockCategoryRepositoryInterface
	reminderService  *service.ReminderService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockReminderRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.reminderService = service.NewReminderService(suite.mockRepo, suite.mockCategoryRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ReminderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetAll tests listing reminders with joined category fields
func (suite *ReminderServiceTestSuite) TestGetAll() {
	catID := uint(2)
	name := "Gas"
	color := "#ef4444"
	rows := []models.ReminderWithCategory{
		{
			Reminder:      models.Reminder{ID: 1, Title: "Gas bill", CategoryID: &catID, DayOfMonth: 10},
			CategoryName:  &name,
			CategoryColor: &color,
		},
		{
			Reminder: models.Reminder{ID: 2, Title: "Uncategorized", DayOfMonth: 20},
		},
	}
	suite.mockRepo.EXPECT().GetAll().Return(rows, nil).Times(1)

	responses, err := suite.reminderService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "Gas", *responses[0].CategoryName)
	assert.Equal(suite.T(), "#ef4444", *responses[0].CategoryColor)
	assert.Nil(suite.T(), responses[1].CategoryName)
	assert.Nil(suite.T(), responses[1].CategoryColor)
}

// TestCreate tests creating a reminder with a category reference
func (suite *ReminderServiceTestSuite) TestCreate() {
	catID := uint(2)
	amount := 45.0
	req := &service.ReminderRequest{
		Title:        "Gas bill",
		CategoryID:   &catID,
		DayOfMonth:   10,
		AmountApprox: &amount,
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *models.Reminder) error {
			r.ID = 7
			return nil
		}).
		Times(1)
	suite.mockCategoryRepo.EXPECT().
		GetByID(catID).
		Return(&models.Category{ID: catID, Name: "Gas", Color: "#ef4444"}, nil).
		Times(1)

	response, err := suite.reminderService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), uint(7), response.ID)
	assert.Equal(suite.T(), "Gas bill", response.Title)
	assert.Equal(suite.T(), 10, response.DayOfMonth)
	assert.Equal(suite.T(), "Gas", *response.CategoryName)
	assert.Equal(suite.T(), "#ef4444", *response.CategoryColor)
}

// TestCreateDanglingCategory tests that an unknown category_id is stored as-is
func (suite *ReminderServiceTestSuite) TestCreateDanglingCategory() {
	catID := uint(99)
	req := &service.ReminderRequest{
		Title:      "Orphan bill",
		CategoryID: &catID,
		DayOfMonth: 5,
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *models.Reminder) error {
			r.ID = 8
			return nil
		}).
		Times(1)
	suite.mockCategoryRepo.EXPECT().
		GetByID(catID).
		Return(nil, apperrors.ErrCategoryNotFound).
		Times(1)

	response, err := suite.reminderService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), catID, *response.CategoryID)
	assert.Nil(suite.T(), response.CategoryName)
	assert.Nil(suite.T(), response.CategoryColor)
}

// TestCreateCategoryLookupFailure tests that a storage failure during the
// category lookup does not fail the create
func (suite *ReminderServiceTestSuite) TestCreateCategoryLookupFailure() {
	catID := uint(2)
	req := &service.ReminderRequest{
		Title:      "Gas bill",
		CategoryID: &catID,
		DayOfMonth: 10,
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *models.Reminder) error {
			r.ID = 9
			return nil
		}).
		Times(1)
	suite.mockCategoryRepo.EXPECT().
		GetByID(catID).
		Return(nil, apperrors.NewStorageError("get category", errors.New("connection reset"))).
		Times(1)

	response, err := suite.reminderService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(9), response.ID)
	assert.Nil(suite.T(), response.CategoryName)
	assert.Nil(suite.T(), response.CategoryColor)
}

// TestCreateWithoutCategory tests creating an uncategorized reminder
func (suite *ReminderServiceTestSuite) TestCreateWithoutCategory() {
	req := &service.ReminderRequest{
		Title:      "Rent",
		DayOfMonth: 1,
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.reminderService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.CategoryID)
	assert.Nil(suite.T(), response.CategoryName)
}

// TestCreateValidationError tests day_of_month range validation
func (suite *ReminderServiceTestSuite) TestCreateValidationError() {
	tests := []struct {
		name string
		req  *service.ReminderRequest
	}{
		{"empty title", &service.ReminderRequest{Title: "", DayOfMonth: 10}},
		{"day zero", &service.ReminderRequest{Title: "Bill", DayOfMonth: 0}},
		{"day too large", &service.ReminderRequest{Title: "Bill", DayOfMonth: 32}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			response, err := suite.reminderService.Create(tt.req)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), response)
			assert.Contains(suite.T(), err.Error(), "validation failed")
		})
	}
}

// TestUpdate tests replacing all reminder fields
func (suite *ReminderServiceTestSuite) TestUpdate() {
	req := &service.ReminderRequest{
		Title:      "Renamed",
		DayOfMonth: 28,
	}

	suite.mockRepo.EXPECT().
		Update(uint(7), gomock.Any()).
		DoAndReturn(func(id uint, r *models.Reminder) (int64, error) {
			assert.Equal(suite.T(), "Renamed", r.Title)
			assert.Nil(suite.T(), r.CategoryID)
			assert.Nil(suite.T(), r.AmountApprox)
			return 1, nil
		}).
		Times(1)

	response, err := suite.reminderService.Update(7, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Updated", response.Message)
	assert.Equal(suite.T(), int64(1), response.Changes)
}

// TestUpdateUnknownID tests updating a missing reminder
func (suite *ReminderServiceTestSuite) TestUpdateUnknownID() {
	req := &service.ReminderRequest{
		Title:      "Ghost",
		DayOfMonth: 1,
	}

	suite.mockRepo.EXPECT().Update(uint(99), gomock.Any()).Return(int64(0), nil).Times(1)

	response, err := suite.reminderService.Update(99, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), response.Changes)
}

// TestDelete tests deleting a reminder
func (suite *ReminderServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().Delete(uint(7)).Return(int64(1), nil).Times(1)

	response, err := suite.reminderService.Delete(7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Deleted", response.Message)
	assert.Equal(suite.T(), int64(1), response.Changes)
}

// TestDeleteRepositoryError tests delete failure propagation
func (suite *ReminderServiceTestSuite) TestDeleteRepositoryError() {
	suite.mockRepo.EXPECT().Delete(uint(7)).Return(int64(0), errors.New("db failure")).Times(1)

	response, err := suite.reminderService.Delete(7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "failed to delete reminder")
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
