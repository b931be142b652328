package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	cserrors "github.com/YuminosukeSato/costlearn/pkg/errors"
)

// ErrFmtHandler is a slog handler that decorates records carrying an error
// attribute. It extracts the cockroachdb/errors stacktrace and, for typed
// reduction errors, a stable error code.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler function wraps the standard slog handler.
// The returned handler emits logs with stacktrace and error code attributes
// whenever an error is attached under ErrAttrKey.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace, code string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			err, ok := attr.Value.Any().(error)
			if ok {
				stacktrace = extractStacktrace(err)
				code = ErrorCode(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	if code != "" {
		r.AddAttrs(slog.String(ErrorCodeKey, code))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// ErrorCode maps typed reduction errors to their structured code. It returns
// an empty string for errors outside the costlearn taxonomy.
func ErrorCode(err error) string {
	var (
		malformed   *cserrors.MalformedExampleError
		ldf         *cserrors.InvalidLDFMappingError
		emptySet    *cserrors.EmptyCandidateSetError
		noLabels    *cserrors.NoCandidateLabelsError
		unsupported *cserrors.UnsupportedReductionKindError
		numLabels   *cserrors.MissingNumLabelsError
		numerical   *cserrors.NumericalInstabilityError
	)
	switch {
	case cserrors.As(err, &malformed):
		return ErrorMalformedExample
	case cserrors.As(err, &ldf):
		return ErrorInvalidLDFMapping
	case cserrors.As(err, &emptySet):
		return ErrorEmptyCandidateSet
	case cserrors.As(err, &noLabels):
		return ErrorNoCandidateLabels
	case cserrors.As(err, &unsupported):
		return ErrorUnsupportedReduction
	case cserrors.As(err, &numLabels):
		return ErrorMissingNumLabels
	case cserrors.As(err, &numerical):
		return ErrorNumerical
	}
	return ""
}
