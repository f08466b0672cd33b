package errs

import "errors"

// Kind classifies an error for the presentation boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindIllegalTransition
	KindValidation
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindIllegalTransition:
		return "IllegalTransition"
	case KindValidation:
		return "ValidationError"
	case KindStorage:
		return "StorageError"
	default:
		return "Unknown"
	}
}

// KindOf returns the first matching kind found in err's chain.
// Domain kinds win over KindStorage so that a not-found detected by a
// repository is still reported as KindNotFound.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrIllegalTransition):
		return KindIllegalTransition
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindUnknown
	}
}
