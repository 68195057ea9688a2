// Package affinity enumerates the logical processors available to the
// process and binds the calling thread to a specific one.
package affinity

import "errors"

// ErrUnsupported is returned on platforms without processor-affinity
// control; callers degrade to single-processor operation.
var ErrUnsupported = errors.New("affinity: not supported on this platform")
