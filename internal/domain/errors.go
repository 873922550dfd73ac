package domain

import "errors"

var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrUnknownScreen = errors.New("unknown screen")
	ErrEmptyMessage  = errors.New("message is empty")
	ErrEmptyEntry    = errors.New("entry has neither text nor image")
	ErrNoJournal     = errors.New("screen has no journal")
)
