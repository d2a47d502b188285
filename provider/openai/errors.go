package openai

import (
	"errors"

	"github.com/openai/openai-go"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// wrapError classifies an OpenAI SDK error into the shared error taxonomy so
// the fallback layer can tell recoverable failures from permanent ones.
// Non-API errors (network failures and the like) pass through untouched and
// stay recoverable.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.StatusCode
	msg := err.Error()
	switch categorizeStatusCode(code) {
	case imagegen.ErrorTransient:
		return imagegen.NewTransientError(msg, code, err)
	case imagegen.ErrorUserInput:
		return imagegen.NewUserInputError(msg, code, err)
	default:
		return imagegen.NewPermanentError(msg, code, err)
	}
}

// categorizeStatusCode maps an HTTP status code onto an error category.
func categorizeStatusCode(code int) imagegen.ErrorCategory {
	switch {
	case code == 429:
		return imagegen.ErrorTransient // rate limited
	case code >= 500 && code < 600:
		return imagegen.ErrorTransient // server error
	case code == 401 || code == 403:
		return imagegen.ErrorPermanent // authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return imagegen.ErrorUserInput // bad request or not found
	default:
		return imagegen.ErrorPermanent
	}
}
