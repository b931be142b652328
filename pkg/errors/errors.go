// Package errors provides the error handling and warning system used across
// costlearn. Structural problems in cost-sensitive examples, configuration
// mistakes, and numerical degeneracies each get a typed error so callers can
// branch on them, and every constructor attaches a stack trace via
// cockroachdb/errors.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("costlearn-Warning: %v\n", w)
	}
	// zerolog warn hook, installed lazily to avoid a circular import with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// Warnings report conditions that are worth surfacing but must not stop an
// online training pass, such as a weighted-all-pairs example with a single
// candidate label.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warn function. pkg/log calls
// this when a zerolog provider is configured.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the installed handler. When a zerolog warn
// function is present it takes precedence over the plain handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// SingleCandidateWarning is raised when a pairwise reduction receives a
// training example with exactly one candidate label. There is no pairwise
// signal to learn from, so the update is a no-op rather than an error.
type SingleCandidateWarning struct {
	Op    string
	Label int
}

func (w *SingleCandidateWarning) Error() string {
	return fmt.Sprintf("%s: example has a single candidate label %d; no pairwise signal, update skipped", w.Op, w.Label)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *SingleCandidateWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("label", w.Label).
		Str("type", "SingleCandidateWarning")
}

// NewSingleCandidateWarning creates a new SingleCandidateWarning.
func NewSingleCandidateWarning(op string, label int) *SingleCandidateWarning {
	return &SingleCandidateWarning{Op: op, Label: label}
}

// ===========================================================================
//
//	Example model errors
//
// ===========================================================================

// MalformedExampleError reports a structural violation of the cost-sensitive
// example model: duplicate labels, a negative or non-finite cost, a label id
// below 1 or above the configured bound, or a missing feature vector.
type MalformedExampleError struct {
	Op     string
	Reason string
	Label  int // offending label id, 0 when not tied to one label
}

func (e *MalformedExampleError) Error() string {
	if e.Label > 0 {
		return fmt.Sprintf("costlearn: %s: malformed example: %s (label %d)", e.Op, e.Reason, e.Label)
	}
	return fmt.Sprintf("costlearn: %s: malformed example: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MalformedExampleError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Int("label", e.Label).
		Str("type", "MalformedExampleError")
}

// NewMalformedExampleError creates a new MalformedExampleError with a stack trace.
func NewMalformedExampleError(op, reason string, label int) error {
	err := &MalformedExampleError{Op: op, Reason: reason, Label: label}
	return errors.WithStack(err)
}

// InvalidLDFMappingError reports a candidate label that has no entry in the
// example's label-dependent feature mapping. The mapping must cover every
// label that appears in the label-cost pairs.
type InvalidLDFMappingError struct {
	Op    string
	Label int
}

func (e *InvalidLDFMappingError) Error() string {
	return fmt.Sprintf("costlearn: %s: label %d has no label-dependent feature entry", e.Op, e.Label)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InvalidLDFMappingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("label", e.Label).
		Str("type", "InvalidLDFMappingError")
}

// NewInvalidLDFMappingError creates a new InvalidLDFMappingError with a stack trace.
func NewInvalidLDFMappingError(op string, label int) error {
	err := &InvalidLDFMappingError{Op: op, Label: label}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Candidate set errors
//
// ===========================================================================

// NoCandidateLabelsError reports a prediction request with no candidate
// labels: the example carries no label-cost pairs and no out-of-band
// candidate set is available.
type NoCandidateLabelsError struct {
	Op string
}

func (e *NoCandidateLabelsError) Error() string {
	return fmt.Sprintf("costlearn: %s: no candidate labels to score", e.Op)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NoCandidateLabelsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "NoCandidateLabelsError")
}

// NewNoCandidateLabelsError creates a new NoCandidateLabelsError with a stack trace.
func NewNoCandidateLabelsError(op string) error {
	err := &NoCandidateLabelsError{Op: op}
	return errors.WithStack(err)
}

// EmptyCandidateSetError reports a pairwise operation on an example whose
// resolved candidate set is empty. A single candidate is not an error: it is
// returned trivially on predict and skipped with a warning on learn.
type EmptyCandidateSetError struct {
	Op string
}

func (e *EmptyCandidateSetError) Error() string {
	return fmt.Sprintf("costlearn: %s: empty candidate set", e.Op)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyCandidateSetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "EmptyCandidateSetError")
}

// NewEmptyCandidateSetError creates a new EmptyCandidateSetError with a stack trace.
func NewEmptyCandidateSetError(op string) error {
	err := &EmptyCandidateSetError{Op: op}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Configuration errors
//
// ===========================================================================

// UnsupportedReductionKindError reports a reduction kind the driver does not
// recognize.
type UnsupportedReductionKindError struct {
	Kind string
}

func (e *UnsupportedReductionKindError) Error() string {
	return fmt.Sprintf("costlearn: unsupported reduction kind %q", e.Kind)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *UnsupportedReductionKindError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("kind", e.Kind).
		Str("type", "UnsupportedReductionKindError")
}

// NewUnsupportedReductionKindError creates a new UnsupportedReductionKindError
// with a stack trace.
func NewUnsupportedReductionKindError(kind string) error {
	err := &UnsupportedReductionKindError{Kind: kind}
	return errors.WithStack(err)
}

// MissingNumLabelsError reports a reduction that needs a label-count bound but
// was configured without one.
type MissingNumLabelsError struct {
	Kind string
}

func (e *MissingNumLabelsError) Error() string {
	return fmt.Sprintf("costlearn: reduction %q requires NumLabels (the maximum expected label id)", e.Kind)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MissingNumLabelsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("kind", e.Kind).
		Str("type", "MissingNumLabelsError")
}

// NewMissingNumLabelsError creates a new MissingNumLabelsError with a stack trace.
func NewMissingNumLabelsError(kind string) error {
	err := &MissingNumLabelsError{Kind: kind}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to the error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Online learning errors
//
// ===========================================================================

// NumericalInstabilityError reports NaN or Inf escaping from a base learner
// or from cost arithmetic during an online pass.
type NumericalInstabilityError struct {
	Operation string    // e.g. "csoaa.Predict", "wap.Learn"
	Values    []float64 // the offending values
	Example   int64     // ordinal of the example being processed, 0 if unknown
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("costlearn: numerical instability in %s at example %d. Values: [%s]",
		e.Operation, e.Example, valStr)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int64("example", e.Example).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError with a
// stack trace.
func NewNumericalInstabilityError(operation string, values []float64, example int64) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Example:   example,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrNilBaseLearner is returned when a reduction is built without a base learner.
	ErrNilBaseLearner = New("nil base learner")

	// ErrEmptyData is returned when a metric is asked to summarize nothing.
	ErrEmptyData = New("empty data")
)
