// Package errors provides structured error reporting for the interaction engines.
//
// The engines never fail on user input: bad configuration is corrected and
// irrelevant events are ignored. What can fail is host code the engines call
// back into (formatters, change listeners, drag callbacks). Those failures are
// recovered and routed to a process-wide [ErrorHandler] so a misbehaving
// callback cannot leave a widget half-updated.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindCallback indicates a host-supplied callback failed.
	KindCallback
	// KindConfig indicates a configuration file could not be loaded.
	KindConfig
	// KindScenario indicates a replay scenario could not be decoded or run.
	KindScenario
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindCallback:
		return "callback"
	case KindConfig:
		return "config"
	case KindScenario:
		return "scenario"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// InteractError represents a structured error raised around a widget operation.
type InteractError struct {
	// Op is the operation that failed (e.g., "multirange.Slider.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget names the widget instance involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InteractError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *InteractError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "tree.Tree.SelectItem").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// DecodeError represents a failure to decode a document field.
type DecodeError struct {
	// Source is the file or stream that was being decoded.
	Source string
	// Field is the dotted path of the offending field.
	Field string
	// Got is the value that could not be interpreted.
	Got any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s in %s: got %v (%T)", e.Field, e.Source, e.Got, e.Got)
}

// ErrorHandler receives errors reported by the engines.
type ErrorHandler interface {
	// HandleError is called when an operation fails.
	HandleError(err *InteractError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
