package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/subtrackr/subtrackr/internal/config"
	"github.com/subtrackr/subtrackr/internal/domain/category"
	"github.com/subtrackr/subtrackr/internal/domain/payment"
	"github.com/subtrackr/subtrackr/internal/domain/paymentmethod"
	"github.com/subtrackr/subtrackr/internal/domain/subscription"
	"github.com/subtrackr/subtrackr/internal/logger"
	"github.com/subtrackr/subtrackr/internal/types"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	SubscriptionRepo  subscription.Repository
	PaymentRepo       payment.Repository
	CategoryRepo      category.Repository
	PaymentMethodRepo paymentmethod.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		SubscriptionRepo:  NewInMemorySubscriptionStore(),
		PaymentRepo:       NewInMemoryPaymentStore(),
		CategoryRepo:      NewInMemoryCategoryStore(),
		PaymentMethodRepo: NewInMemoryPaymentMethodStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.SubscriptionRepo.(*InMemorySubscriptionStore).Clear()
	s.stores.PaymentRepo.(*InMemoryPaymentStore).Clear()
	s.stores.CategoryRepo.(*InMemoryCategoryStore).Clear()
	s.stores.PaymentMethodRepo.(*InMemoryPaymentMethodStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the configured in-memory stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetNow returns the timestamp captured at test setup
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
