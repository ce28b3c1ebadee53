package repository

import "errors"

var (
	ErrSourceUnavailable = errors.New("doctor source unavailable")
	ErrSourceNotFound    = errors.New("doctor source file not found")
	ErrMalformedCSV      = errors.New("malformed doctor csv")
	ErrReadOnlySource    = errors.New("doctor source is read-only")
	ErrDoctorExists      = errors.New("doctor already exists")
)
