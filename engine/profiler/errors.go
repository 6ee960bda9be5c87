// Package profiler records nested timing scopes from the render thread and
// exports them for speedscope. Scopes are only recorded in builds with the
// "profile" tag; otherwise every call is a no-op.
package profiler

import "errors"

var (
	ErrNoEvents = errors.New("profiler: no events recorded")
	ErrDisabled = errors.New("profiler: built without the profile tag")
)
