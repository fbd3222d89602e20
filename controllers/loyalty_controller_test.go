package controllers

import (
	"net/http"
	"testing"

	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestResolveCustomerUnknownEmailSurfacesNotFound(t *testing.T) {
	finders := customerFinders{
		byEmail: func(email string) (*models.Customer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	customer, err := resolveCustomer(finders, "", "ghost@example.com", "")
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResolveCustomerByEmail(t *testing.T) {
	want := &models.Customer{Email: "shopper@example.com"}
	finders := customerFinders{
		byEmail: func(email string) (*models.Customer, error) {
			assert.Equal(t, "shopper@example.com", email)
			return want, nil
		},
	}

	customer, err := resolveCustomer(finders, "", "shopper@example.com", "")
	assert.NoError(t, err)
	assert.Equal(t, want, customer)
}

func TestResolveCustomerIDTakesPriorityOverEmail(t *testing.T) {
	want := &models.Customer{Email: "shopper@example.com"}
	finders := customerFinders{
		byID: func(id uint) (*models.Customer, error) {
			assert.Equal(t, uint(42), id)
			return want, nil
		},
		byEmail: func(email string) (*models.Customer, error) {
			t.Fatal("email lookup should not run when an id is given")
			return nil, nil
		},
	}

	customer, err := resolveCustomer(finders, "42", "shopper@example.com", "")
	assert.NoError(t, err)
	assert.Equal(t, want, customer)
}

func TestResolveCustomerRejectsBadInput(t *testing.T) {
	var appErr *utils.AppError

	_, err := resolveCustomer(customerFinders{}, "not-a-number", "", "")
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	_, err = resolveCustomer(customerFinders{}, "", "", "")
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}
