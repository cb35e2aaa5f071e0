package workshop

import "errors"

var (
	ErrLoginNotValid    = errors.New("login has not valid format")
	ErrPasswordNotValid = errors.New("password has not valid format")
	ErrPasswordNotEqual = errors.New("password not equal")

	ErrPhoneNotValid       = errors.New("client phone is required")
	ErrFullNameNotValid    = errors.New("client full name is required")
	ErrNameNotValid        = errors.New("name is required")
	ErrAmountNotValid      = errors.New("monetary amount must not be negative")
	ErrWeightNotValid      = errors.New("weight must be positive")
	ErrStatusNotValid      = errors.New("unknown order status")
	ErrClientRequired      = errors.New("order must reference a client")
	ErrProductTypeRequired = errors.New("order must reference a product type")
	ErrMaterialRequired    = errors.New("order line must reference a material")
	ErrRoleRequired        = errors.New("user must reference a role")
)

// IsValidationError reports whether err is a pre-persistence input
// rejection.
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrLoginNotValid, ErrPasswordNotValid,
		ErrPhoneNotValid, ErrFullNameNotValid, ErrNameNotValid,
		ErrAmountNotValid, ErrWeightNotValid, ErrStatusNotValid,
		ErrClientRequired, ErrProductTypeRequired, ErrMaterialRequired,
		ErrRoleRequired,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
