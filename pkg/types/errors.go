package types

import "errors"

// ErrModelUnavailable indicates the external object model cannot be
// accessed at all. This is the only fatal condition in the lookup core;
// every other failure degrades to a sentinel value or an empty result set.
var ErrModelUnavailable = errors.New("object model unavailable")
