package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CategoryServiceInterface defines the interface for category service
type CategoryServiceInterface interface {
	GetAll() ([]CategoryResponse, error)
	Create(req *CreateCategoryRequest) (*CategoryResponse, error)
	Delete(id uint) (*ChangeResponse, error)
}

// ReminderServiceInterface defines the interface for reminder service
type ReminderServiceInterface interface {
	GetAll() ([]ReminderResponse, error)
	Create(req *ReminderRequest) (*ReminderResponse, error)
	Update(id uint, req *ReminderRequest) (*ChangeResponse, error)
	Delete(id uint) (*ChangeResponse, error)
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	GetAll() ([]PaymentResponse, error)
	Create(req *CreatePaymentRequest) (*PaymentResponse, error)
	CheckPeriod(periodMonth, periodYear int) ([]uint, error)
}

// DuesServiceInterface defines the interface for the dues service
type DuesServiceInterface interface {
	Upcoming(page int) (*UpcomingResponse, error)
	Summary() (*MonthSummaryResponse, error)
}
