package errstore

import "errors"

var (
	ErrNotFoundData       = errors.New("data not found")
	ErrNotUniqueData      = errors.New("data violates a unique constraint")
	ErrClientHasOrders    = errors.New("client has orders")
	ErrRoleInUse          = errors.New("role is used by users")
	ErrMaterialInUse      = errors.New("material is used by orders")
	ErrProductTypeInUse   = errors.New("product type is used by orders")
	ErrUsernameNotUnique  = errors.New("username already taken")
	ErrReferenceViolation = errors.New("referenced row does not exist")
)
