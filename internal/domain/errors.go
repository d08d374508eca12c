package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already exists")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	ErrInvalidCurrency        = errors.New("unsupported currency")
	ErrInvalidStatus          = errors.New("unsupported invoice status")
	ErrInvalidImageKind       = errors.New("unknown image kind")
	ErrNotPNG                 = errors.New("image is not a valid PNG")
	ErrImageTooLarge          = errors.New("image exceeds maximum allowed size")
	ErrImageNotFound          = errors.New("image not found")
	ErrUploadFailed           = errors.New("image upload to storage failed")
	ErrRenderFailed           = errors.New("could not generate document")
	ErrCustomerMissingEmail   = errors.New("customer has no email address")
)
