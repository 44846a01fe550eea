package matrix

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Returned by [WindowSink.Run]() on builds without Ebitengine (-tags cputext).
const ErrWindowUnavailable errMsg = "window sink unavailable on cputext builds"

// Returned by [WindowSink.Run]() when no frame has been synced yet.
const ErrNoFrame errMsg = "no frame to show, sync the matrix first"
