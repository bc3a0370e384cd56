package report

import "errors"

var (
	ErrInvalidHorizon         = errors.New("horizon must be one of daily, weekly, monthly")
	ErrNoDataFound            = errors.New("no data found for the specified criteria")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
