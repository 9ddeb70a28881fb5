package workspace

import (
	"errors"
	"fmt"
)

// Kind classifies workspace errors under the two-tier error policy.
//
// Fatal kinds mark invariant violations that indicate a programmer error:
// the caller asked for something the workspace contract says must exist
// (or must not). Recoverable kinds mark expected runtime misses that the
// caller is meant to handle.
type Kind int

// Workspace error kinds.
const (
	// KindNotFound: a tensor was missing after exhaustive local and
	// remote search. Fatal.
	KindNotFound Kind = iota + 1
	// KindExhausted: a buffer pool had no pooled tensor left. Fatal.
	KindExhausted
	// KindInvalidOwnership: release of a tensor the workspace does not
	// locally own. Fatal.
	KindInvalidOwnership
	// KindDuplicateCategory: a buffer category was created twice. Fatal.
	KindDuplicateCategory
	// KindInvalidFiller: a filler spec without a tensor name. Fatal.
	KindInvalidFiller
	// KindInvalidWorkspace: attaching a nil workspace. Fatal.
	KindInvalidWorkspace
	// KindUnknownGraph: running a graph name that is not registered.
	// Recoverable.
	KindUnknownGraph
)

// Fatal reports whether the kind marks an unrecoverable programmer error.
func (k Kind) Fatal() bool {
	return k != KindUnknownGraph
}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindExhausted:
		return "exhausted"
	case KindInvalidOwnership:
		return "invalid ownership"
	case KindDuplicateCategory:
		return "duplicate category"
	case KindInvalidFiller:
		return "invalid filler"
	case KindInvalidWorkspace:
		return "invalid workspace"
	case KindUnknownGraph:
		return "unknown graph"
	default:
		return "unknown"
	}
}

// Error is a structured workspace error carrying its kind.
type Error struct {
	Kind Kind
	msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 if err is not a workspace error.
func KindOf(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return 0
}
