package kernel

import (
	"strconv"

	"gardenstore/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// one of the constructor functions. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object that represents a store-assigned integer surrogate key.
// Every persisted entity is keyed by an ID; the entity store generates the
// underlying value on insert, so freshly constructed entities carry the zero
// value until they are persisted.
//
// ID is immutable and safe to copy. The zero value is deliberately invalid:
// use NewID to build identifiers received from callers, and IsZero to check
// whether an entity has been persisted yet.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID builds an ID from an externally supplied value.
// Surrogate keys are positive by construction; zero and negative values are
// rejected with a ValueIsInvalid error.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{value: value}, nil
}

// MustNewID builds an ID from a value known to be valid.
// It panics when the value is not a valid identifier and is intended for
// tests and static wiring only.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the underlying integer key.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal representation of the ID.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether the ID still carries the zero value, i.e. the owning
// entity has not been assigned a key by the store yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// ParseID parses an ID from its decimal string representation.
// Typically used when reconstructing identifiers from route parameters.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}
