package localsearch

import "errors"

// ErrUnknownMethod is returned by ParseMethod and Descend for a method name
// that names no engine.
var ErrUnknownMethod = errors.New("localsearch: unknown method")
