package repository

import "errors"

// Common repository errors.
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrWidgetNotFound = errors.New("widget not found")
	ErrReportNotFound = errors.New("report not found")
)
