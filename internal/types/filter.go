package types

import (
	"time"

	"github.com/samber/lo"
)

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit"`
	Offset *int    `json:"offset,omitempty" form:"offset"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order"`
}

// DefaultQueryFilter defines default values for query filters
var DefaultQueryFilter = QueryFilter{
	Limit:  lo.ToPtr(50),
	Offset: lo.ToPtr(0),
	Status: lo.ToPtr(StatusActive),
	Sort:   lo.ToPtr("created_at"),
	Order:  lo.ToPtr("desc"),
}

// NewQueryFilter creates a new query filter with default values
func NewQueryFilter() *QueryFilter {
	f := DefaultQueryFilter
	return &f
}

// NewNoLimitQueryFilter creates a new query filter without pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Status: lo.ToPtr(StatusActive),
		Sort:   lo.ToPtr("created_at"),
		Order:  lo.ToPtr("desc"),
	}
}

// GetLimit returns the limit value or default if not set
func (f QueryFilter) GetLimit() int {
	if f.Limit == nil {
		return *DefaultQueryFilter.Limit
	}
	return *f.Limit
}

// GetOffset returns the offset value or default if not set
func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return *DefaultQueryFilter.Offset
	}
	return *f.Offset
}

// GetStatus returns the status value or default if not set
func (f QueryFilter) GetStatus() Status {
	if f.Status == nil {
		return *DefaultQueryFilter.Status
	}
	return *f.Status
}

// IsUnlimited returns true when the filter carries no pagination limit
func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil
}

// BaseFilter is the minimal surface the generic in-memory store needs to
// apply pagination.
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	IsUnlimited() bool
}

// SubscriptionFilter narrows subscription listings
type SubscriptionFilter struct {
	*QueryFilter

	// CategoryID filters by spending category
	CategoryID string `json:"category_id,omitempty" form:"category_id"`

	// PaymentMethodID filters by payment method
	PaymentMethodID string `json:"payment_method_id,omitempty" form:"payment_method_id"`

	// BillingCycle filters by one or more billing cycles
	BillingCycle []BillingCycle `json:"billing_cycle,omitempty" form:"billing_cycle"`

	// BillingCadence filters by one or more cadences
	BillingCadence []BillingCadence `json:"billing_cadence,omitempty" form:"billing_cadence"`

	// ActiveAt keeps only subscriptions active at the given instant:
	// started on or before it and not yet ended
	ActiveAt *time.Time `json:"active_at,omitempty" form:"active_at"`
}

// NewSubscriptionFilter creates a new subscription filter with default query options
func NewSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{QueryFilter: NewQueryFilter()}
}

// NewNoLimitSubscriptionFilter creates a subscription filter without pagination
func NewNoLimitSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{QueryFilter: NewNoLimitQueryFilter()}
}

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	*QueryFilter

	// SubscriptionID filters payments of a single subscription
	SubscriptionID string `json:"subscription_id,omitempty" form:"subscription_id"`

	// PaymentStatus filters by one or more payment statuses
	PaymentStatus []PaymentStatus `json:"payment_status,omitempty" form:"payment_status"`
}

// NewPaymentFilter creates a new payment filter with default query options
func NewPaymentFilter() *PaymentFilter {
	return &PaymentFilter{QueryFilter: NewQueryFilter()}
}

// NewNoLimitPaymentFilter creates a payment filter without pagination
func NewNoLimitPaymentFilter() *PaymentFilter {
	return &PaymentFilter{QueryFilter: NewNoLimitQueryFilter()}
}
