package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// notFoundCodes are the per-service spellings of "this does not exist".
// Every modeled SDK exception surfaces its code through smithy.APIError.
var notFoundCodes = map[string]struct{}{
	"NotFound":                  {},
	"NoSuchBucket":              {},
	"NoSuchKey":                 {},
	"ResourceNotFoundException": {},
	"NoSuchEntity":              {},
	"NotFoundException":         {},
	"ParameterNotFound":         {},
}

// isNotFound reports whether err is a clean "does not exist" response.
func isNotFound(err error) bool {
	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return false
	}
	_, ok := notFoundCodes[ae.ErrorCode()]
	return ok
}

// isAccessDenied reports whether err is an authorization failure. These
// always propagate; the check only sharpens the message.
func isAccessDenied(err error) bool {
	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation":
		return true
	}
	return false
}
