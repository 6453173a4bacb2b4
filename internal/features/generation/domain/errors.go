package domain

import (
	"errors"
	"strings"
)

// ErrorKind classifies a failed remote model call.
type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	ErrorKindRateLimited
)

func (k ErrorKind) String() string {
	if k == ErrorKindRateLimited {
		return "rate_limited"
	}
	return "other"
}

// Classify maps a provider error message to an ErrorKind. The provider does
// not expose a structured code, so the message is scanned for "quota" or
// "rate", ignoring case.
func Classify(message string) ErrorKind {
	m := strings.ToLower(message)
	if strings.Contains(m, "quota") || strings.Contains(m, "rate") {
		return ErrorKindRateLimited
	}
	return ErrorKindOther
}

// MentionsQuota reports whether message names a quota failure, the only
// condition that triggers a retry against the fallback model.
func MentionsQuota(message string) bool {
	return strings.Contains(strings.ToLower(message), "quota")
}

// ModelError is a failed model call, classified where the remote client
// returned it.
type ModelError struct {
	Kind    ErrorKind
	Model   string
	Message string
	Err     error
}

func (e *ModelError) Error() string {
	return e.Message
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError classifies err as returned by the remote client for model.
func NewModelError(model string, err error) *ModelError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	return &ModelError{Kind: Classify(msg), Model: model, Message: msg, Err: err}
}

// NewSchemaError reports model output that does not conform to the
// requested schema. It is never treated as a rate limit.
func NewSchemaError(model string, err error) *ModelError {
	return &ModelError{
		Kind:    ErrorKindOther,
		Model:   model,
		Message: "model output does not match schema: " + err.Error(),
		Err:     err,
	}
}

// KindOf returns the ErrorKind carried by err, classifying the message of
// errors that did not come from a model call.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindOther
	}
	var me *ModelError
	if errors.As(err, &me) {
		return me.Kind
	}
	return Classify(err.Error())
}
