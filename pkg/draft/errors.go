package draft

import "errors"

var ErrLockNotAcquired = errors.New("draft.lock_not_acquired")
