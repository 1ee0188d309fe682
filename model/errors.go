package model

import (
	"errors"
	"fmt"
)

// UserNotFoundError is returned when github has no user with this login
type UserNotFoundError struct {
	Username string
}

func (e UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.Username)
}

// InvalidInputError is returned when the repository list can't be aggregated
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid repositories list: " + e.Reason
}

type UnsupportedChartTypeError struct {
	ChartType string
}

func (e UnsupportedChartTypeError) Error() string {
	return fmt.Sprintf("unsupported chart type %q, expected one of pie, bar, donut", e.ChartType)
}

// ChartRenderError wrap any failure happening while building the svg
type ChartRenderError struct {
	ChartType ChartType
	Err       error
}

func (e ChartRenderError) Error() string {
	return fmt.Sprintf("unable to render %s chart: %v", e.ChartType, e.Err)
}

func (e ChartRenderError) Unwrap() error {
	return e.Err
}

// FetchError wrap errors returned by github other than user not found
type FetchError struct {
	RateLimited bool
	Err         error
}

func (e FetchError) Error() string {
	if e.RateLimited {
		return "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again"
	}

	return fmt.Sprintf("unable to fetch repositories from github: %v", e.Err)
}

func (e FetchError) Unwrap() error {
	return e.Err
}

// ErrorResponsePrefix is prepended to every error message sent back to the caller
const ErrorResponsePrefix = "Error: Something went wrong - "

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError convert an error from the pipeline to a code and a human readable message
func NewAPIError(errReason error) APIError {
	var (
		notFound    UserNotFoundError
		invalid     InvalidInputError
		unsupported UnsupportedChartTypeError
		render      ChartRenderError
		fetch       FetchError
	)

	switch {
	case errReason == nil:
		return APIError{
			Code:    "GENERIC_ERROR",
			Message: "internal server error. contact our support with the reason code for assistance",
		}

	case errors.As(errReason, &notFound):
		return APIError{Code: "USER_NOT_FOUND", Message: notFound.Error()}

	case errors.As(errReason, &invalid):
		return APIError{Code: "INVALID_INPUT", Message: invalid.Error()}

	case errors.As(errReason, &unsupported):
		return APIError{Code: "UNSUPPORTED_CHART_TYPE", Message: unsupported.Error()}

	case errors.As(errReason, &render):
		return APIError{Code: "CHART_RENDER_ERROR", Message: render.Error()}

	case errors.As(errReason, &fetch):
		if fetch.RateLimited {
			return APIError{Code: "RATE_LIMIT_REACHED", Message: fetch.Error()}
		}

		return APIError{Code: "FETCH_ERROR", Message: fetch.Error()}
	}

	return APIError{
		Code:    "GENERIC_ERROR",
		Message: errReason.Error(),
	}
}

// ResponseBody is the plain text body sent with a 500 status
func (e APIError) ResponseBody() string {
	return ErrorResponsePrefix + e.Message
}
