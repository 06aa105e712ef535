package chainy

import "github.com/mgnsk/chainy/internal/alloc"

// ErrExhausted indicates a bounded allocator has no free nodes left.
var ErrExhausted = alloc.ErrExhausted
