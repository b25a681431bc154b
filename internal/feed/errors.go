package feed

// ErrorKind identifies a business-rule violation. The set is closed; the HTTP
// boundary translates each kind to a client-facing status code.
type ErrorKind int

const (
	KindNotFoundOrAccessDenied ErrorKind = iota + 1
	KindDuplicateReaction
	KindMaxNestingDepthExceeded
	KindEmptyOrOversizeContent
	KindInvalidEmoji
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFoundOrAccessDenied:
		return "not_found_or_access_denied"
	case KindDuplicateReaction:
		return "duplicate_reaction"
	case KindMaxNestingDepthExceeded:
		return "max_nesting_depth_exceeded"
	case KindEmptyOrOversizeContent:
		return "empty_or_oversize_content"
	case KindInvalidEmoji:
		return "invalid_emoji"
	}
	return "unknown"
}

// Error is a typed business-rule violation. Storage failures are never
// wrapped in it; they propagate as-is and surface as internal errors.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// errMemoryNotFound deliberately conflates "does not exist" with "exists in
// another family unit" so cross-tenant existence is never revealed.
func errMemoryNotFound() *Error {
	return &Error{Kind: KindNotFoundOrAccessDenied, Message: "memory not found or access denied"}
}

func errCommentNotFound() *Error {
	return &Error{Kind: KindNotFoundOrAccessDenied, Message: "comment not found or access denied"}
}

func errReactionNotFound() *Error {
	return &Error{Kind: KindNotFoundOrAccessDenied, Message: "reaction not found or access denied"}
}
