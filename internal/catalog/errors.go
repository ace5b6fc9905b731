package catalog

import "errors"

var (
	ErrInvalidDirectory = errors.New("catalog: invalid data directory")
	ErrCategoryNotFound = errors.New("catalog: category not found")
	ErrFileRead         = errors.New("catalog: unable to read category file")
)
