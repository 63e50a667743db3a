//go:build !debug
// +build !debug

package beamform

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
