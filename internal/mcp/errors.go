package mcp

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/pkg/dataal"
)

var (
	errInvalidParams = errors.New("invalid params")
	errUnknownTool   = errors.New("unknown tool")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var decodeErr *dataal.DecodeError
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects"}
	case errors.Is(err, project.ErrCategoryNotFound):
		return &APIError{Code: "CATEGORY_NOT_FOUND", Message: "category not found", RecoveryHint: "Call list_categories or set new_category"}
	case errors.Is(err, project.ErrCategoryExists):
		return &APIError{Code: "CATEGORY_EXISTS", Message: "category already exists", RecoveryHint: "Omit new_category to replace it"}
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, dataal.ErrFileNotFound):
		return &APIError{Code: "FILE_NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the path"}
	case errors.Is(err, dataal.ErrUnsupportedFormat):
		return &APIError{Code: "UNSUPPORTED_FORMAT", Message: err.Error(), RecoveryHint: "Use an xlsx, xls or csv file"}
	case errors.Is(err, dataal.ErrInvalidFormat):
		return &APIError{Code: "INVALID_FORMAT", Message: err.Error()}
	case errors.As(err, &decodeErr):
		return &APIError{
			Code:    "DECODE_FAILED",
			Message: decodeErr.Error(),
			Details: map[string]string{"format": string(decodeErr.Format), "name": decodeErr.Name},
		}
	case errors.Is(err, errInvalidParams):
		return &APIError{Code: "INVALID_PARAMS", Message: err.Error()}
	case errors.Is(err, errUnknownTool):
		return &APIError{Code: "UNKNOWN_TOOL", Message: err.Error()}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
