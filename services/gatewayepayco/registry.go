package gatewayepayco

import "sync"

// ResourceRegistry tracks the gateway resources that must exist at most once
// per process: the checkout script and the configured widget handles.
// It replaces ambient globals so that tests can inject a fresh one.
type ResourceRegistry struct {
	mutex         sync.Mutex
	loadedScripts map[string]bool
	handles       map[string]*WidgetHandle
}

func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		loadedScripts: map[string]bool{},
		handles:       map[string]*WidgetHandle{},
	}
}

func (r *ResourceRegistry) IsScriptLoaded(url string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.loadedScripts[url]
}

func (r *ResourceRegistry) MarkScriptLoaded(url string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.loadedScripts[url] = true
}

func (r *ResourceRegistry) GetHandle(key string) (*WidgetHandle, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	handle, found := r.handles[key]
	return handle, found
}

func (r *ResourceRegistry) PutHandle(key string, handle *WidgetHandle) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.handles[key] = handle
}

func (r *ResourceRegistry) HandleCount() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.handles)
}
