package models

import (
	"context"
	"strings"
	"time"

	"github.com/shynebeauty/shyne_backend/utils"
)

type Customer struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:80;not null" json:"first_name"`
	LastName      string    `gorm:"size:80;not null" json:"last_name"`
	Email         string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone         *string   `gorm:"size:40" json:"phone"`
	StreetAddress *string   `gorm:"size:255" json:"street_address"`
	City          *string   `gorm:"size:120" json:"city"`
	State         *string   `gorm:"size:120" json:"state"`
	PostalCode    *string   `gorm:"size:30" json:"postal_code"`
	Country       *string   `gorm:"size:120;default:'USA'" json:"country"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
}

type NewCustomer struct {
	FirstName     string  `json:"first_name" binding:"required,max=80"`
	LastName      string  `json:"last_name" binding:"required,max=80"`
	Email         string  `json:"email" binding:"required,email,max=255"`
	Phone         *string `json:"phone" binding:"omitempty,max=40"`
	StreetAddress *string `json:"street_address" binding:"omitempty,max=255"`
	City          *string `json:"city" binding:"omitempty,max=120"`
	State         *string `json:"state" binding:"omitempty,max=120"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=30"`
	Country       *string `json:"country" binding:"omitempty,max=120"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CreateCustomer(newCustomer) (Customer,error)
// UpdateCustomer(id, newCustomer) (Customer,error)
// DeleteCustomer(id) (Customer,error)  -- refused by the store while orders exist
// GetCustomer(id) (Customer,error)
// GetCustomerByEmail(email) (Customer,error)
// GetCustomerOrders(id) ([]Order,error)

func (input *NewCustomer) validate() error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	input.Phone = utils.NilIfEmpty(input.Phone)
	if input.Phone != nil {
		phone, err := utils.FormatPhoneNumber(*input.Phone, utils.CountryCode)
		if err != nil {
			return utils.NewValidationError("phone", "phone")
		}
		input.Phone = &phone
	}
	return nil
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer := Customer{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		StreetAddress: input.StreetAddress,
		City:          input.City,
		State:         input.State,
		PostalCode:    input.PostalCode,
		Country:       utils.NilIfEmpty(input.Country),
	}
	if err := createRecord(ctx, tableCustomers, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func UpdateCustomer(ctx context.Context, id int, input *NewCustomer) (*Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	country := utils.NilIfEmpty(input.Country)
	if country == nil {
		c := DefaultCountry
		country = &c
	}
	if err := updateColumns[Customer](ctx, tableCustomers, id, map[string]interface{}{
		"first_name":     input.FirstName,
		"last_name":      input.LastName,
		"email":          input.Email,
		"phone":          input.Phone,
		"street_address": input.StreetAddress,
		"city":           input.City,
		"state":          input.State,
		"postal_code":    input.PostalCode,
		"country":        country,
	}); err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Customer](id); err != nil {
		return nil, err
	}
	return GetCustomer(ctx, id)
}

func DeleteCustomer(ctx context.Context, id int) (*Customer, error) {
	result, err := utils.FetchModel[Customer](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[Customer](ctx, tableCustomers, id); err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Customer](id); err != nil {
		return nil, err
	}
	return result, nil
}

func GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return GetResource[Customer](ctx, id)
}

func GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	return utils.FetchModelBy[Customer](ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func GetCustomerOrders(ctx context.Context, customerId int) ([]*Order, error) {
	return utils.FetchModelsWhere[Order](ctx, "customer_id", customerId)
}
