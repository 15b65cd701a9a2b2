package engine

import "sync"

// resetPluginsForTest unwinds the process-wide plugin registration so
// tests can exercise the first-use path repeatedly.
func resetPluginsForTest() {
	pluginMu.Lock()
	defer pluginMu.Unlock()
	pluginOnce = sync.Once{}
	pluginSet = nil
	stagedSet = nil
	pluginsInit = false
}
