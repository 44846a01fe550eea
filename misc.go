package mtxt

const preViolation = "precondition violation"

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Returns floor(n/2), also for negative values. Integer division
// would round towards zero instead, and blocks taller than the
// canvas would then be centered one pixel off.
func halfFloor(n int) int { return n >> 1 }
