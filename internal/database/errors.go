package database

import "errors"

var (
	// ErrStoreNotFound indicates the requested store does not exist.
	ErrStoreNotFound = errors.New("store not found")
	// ErrRunNotFound indicates the requested sync run does not exist.
	ErrRunNotFound = errors.New("sync run not found")
)
