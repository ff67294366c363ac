package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateLineItem = errors.New("this item is already in your order, edit its amount instead")
	ErrConflictingCart   = errors.New("you already have an order that is not yet placed")
	ErrCartBusy          = errors.New("cart is being updated, try again")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotEditable  = errors.New("order can no longer be edited")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrEmailTaken        = errors.New("email is already in use")
)

// CollaboratorError wraps a failure of the document store, blob store or identity provider.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Collaborator wraps err unless it is nil or already a domain error.
func Collaborator(op string, err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	return &CollaboratorError{Op: op, Err: err}
}

func IsDomainError(err error) bool {
	var collab *CollaboratorError
	if errors.As(err, &collab) {
		return true
	}
	for _, target := range []error{
		ErrNotFound, ErrDuplicateLineItem, ErrConflictingCart, ErrCartBusy, ErrInvalidPrice,
		ErrInvalidTransition, ErrOrderNotEditable, ErrInvalidInput, ErrUnauthorized, ErrEmailTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
