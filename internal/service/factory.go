package service

import (
	"github.com/subtrackr/subtrackr/internal/config"
	"github.com/subtrackr/subtrackr/internal/domain/category"
	"github.com/subtrackr/subtrackr/internal/domain/payment"
	"github.com/subtrackr/subtrackr/internal/domain/paymentmethod"
	"github.com/subtrackr/subtrackr/internal/domain/subscription"
	"github.com/subtrackr/subtrackr/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	SubRepo           subscription.Repository
	PaymentRepo       payment.Repository
	CategoryRepo      category.Repository
	PaymentMethodRepo paymentmethod.Repository
}
