package domain

import "errors"

// Domain errors.
var (
	ErrMissingColumn = errors.New("required column missing from CSV header")
	ErrMissingField  = errors.New("required field missing from CSV row")
	ErrEmptyFile     = errors.New("CSV file has no header row")
	ErrRenderFailed  = errors.New("graph rendering failed")
	ErrOpenFailed    = errors.New("opening rendered file failed")
	ErrConfigExists  = errors.New("config file already exists")
	ErrInvalidFormat = errors.New("invalid output format")
)
