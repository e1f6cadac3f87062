package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

var validRoles = map[domain.UserRole]struct{}{
	domain.RoleAdmin:      {},
	domain.RoleSalesAgent: {},
	domain.RoleManager:    {},
	domain.RoleAccountant: {},
	domain.RoleAuditor:    {},
}

var validPaymentMethods = map[domain.PaymentMethod]struct{}{
	domain.MethodCash:         {},
	domain.MethodCard:         {},
	domain.MethodBankTransfer: {},
	domain.MethodUPI:          {},
	domain.MethodCheque:       {},
	domain.MethodOther:        {},
}

// RegisterCustomValidations installs the enum validators used by the binding
// tags in this package. Must be called once at startup before the router
// starts accepting requests.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		_, ok := validRoles[domain.UserRole(fl.Field().String())]
		return ok
	}); err != nil {
		return err
	}

	return v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		_, ok := validPaymentMethods[domain.PaymentMethod(fl.Field().String())]
		return ok
	})
}
