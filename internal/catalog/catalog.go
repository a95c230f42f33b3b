package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("book not found")
	ErrDuplicateTitle    = errors.New("book already exists")
	ErrEmpty             = errors.New("the collection is empty")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrAlreadyLoaned    = fmt.Errorf("%w: book is already loaned", ErrInvalidTransition)
	ErrAlreadyAvailable = fmt.Errorf("%w: book is already available", ErrInvalidTransition)
)

type Catalog interface {
	Add(b Book) error
	Remove(title string) error
	Find(title string) (Book, error)
	List() ([]Book, error)
	MarkLoaned(title string) error
	Return(title string) error
	All() []Book
	Count() int
}
