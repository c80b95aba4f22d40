//go:build !debug
// +build !debug

package rays3d

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
