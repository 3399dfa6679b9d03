package models

import "errors"

var (
	ErrInvalidIsbn             = errors.New("invalid isbn")
	ErrUnknownNotificationType = errors.New("unknown notification type")
	ErrUnknownReportType       = errors.New("unknown report type")
	ErrUnsupportedOperation    = errors.New("unsupported operation")
	ErrRecordNotFound          = errors.New("record not found")
)
