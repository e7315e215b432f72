package debug

import "testing"

func TestLog(t *testing.T) {
	if Enabled {
		Log("enabled: %v", Enabled)
	}
	Log("no-op without the debug tag: %d", 1)
}
