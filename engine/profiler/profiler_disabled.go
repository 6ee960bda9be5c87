//go:build !profile

package profiler

const Enabled = false

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Dump() (string, error) { return "", ErrDisabled }

func WriteSpeedscope(path string) error { return ErrDisabled }
