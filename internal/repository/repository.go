// Package repository contains data access layer abstractions.
// Implementations live in subpackages (yamlfs) inside this directory.
package repository

import (
	"errors"

	"craftly/internal/store"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
	// ErrMalformed reports an unparsable YAML document.
	ErrMalformed = store.ErrMalformed
)
