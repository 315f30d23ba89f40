package contract

import "errors"

var (
	// ErrUnknownActivity is matched by CalcErrors carrying ErrCodeUnknownActivity.
	ErrUnknownActivity = errors.New("unknown activity")

	// ErrUnknownCategory is matched by CalcErrors carrying ErrCodeUnknownCategory.
	ErrUnknownCategory = errors.New("unknown category")

	ErrInvalidTargetDate = errors.New("invalid target date")
)

type CalcErrorCode string

const (
	ErrCodeUnknownActivity   CalcErrorCode = "UNKNOWN_ACTIVITY"
	ErrCodeUnknownCategory   CalcErrorCode = "UNKNOWN_CATEGORY"
	ErrCodeInvalidTargetDate CalcErrorCode = "INVALID_TARGET_DATE"
	ErrCodeInvalidArgument   CalcErrorCode = "INVALID_ARGUMENT"
)

type CalcError struct {
	Code    CalcErrorCode
	Message string
}

func (e *CalcError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap exposes the sentinel for the error code so callers can use errors.Is.
func (e *CalcError) Unwrap() error {
	switch e.Code {
	case ErrCodeUnknownActivity:
		return ErrUnknownActivity
	case ErrCodeUnknownCategory:
		return ErrUnknownCategory
	case ErrCodeInvalidTargetDate:
		return ErrInvalidTargetDate
	}
	return nil
}

func NewCalcError(code CalcErrorCode, message string) *CalcError {
	return &CalcError{Code: code, Message: message}
}
