package item

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("invalid item")
	ErrInvalidID    = errors.New("invalid item id")
)

// ValidationError lists the fields an Item failed validation on.
// It matches ErrInvalidItem under errors.Is.
type ValidationError struct {
	// Fields maps the field name to the failed rule, e.g. "Email": "item_email".
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidItem, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidItem
}
