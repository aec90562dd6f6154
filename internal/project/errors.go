package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrCategoryNotFound indicates the category doesn't exist in the project.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryExists indicates a category with the same name exists.
	ErrCategoryExists = errors.New("category already exists")
	// ErrInvalidInput indicates invalid project or category input.
	ErrInvalidInput = errors.New("invalid project input")
)
