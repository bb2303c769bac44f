package aster

import "log/slog"

// Plugin receives a per-tick update hook, invoked strictly before timeline or
// state-machine evaluation. Initialize runs once at registration, Cleanup on
// unregister. A panic in any of the three hooks is recovered and logged; it
// never aborts the tick and never removes the plugin.
type Plugin interface {
	Initialize(rt *Runtime)
	Update(deltaMillis float64)
	Cleanup()
}

// pluginEntry pairs a plugin with its registration name for logging.
type pluginEntry struct {
	name   string
	plugin Plugin
}

// RegisterPlugin adds a plugin and calls its Initialize hook. The name is
// used only for log attribution.
func (r *Runtime) RegisterPlugin(name string, p Plugin) {
	if p == nil {
		panic("aster: cannot register nil plugin")
	}
	r.plugins = append(r.plugins, pluginEntry{name: name, plugin: p})
	guardPlugin(name, "initialize", func() { p.Initialize(r) })
}

// UnregisterPlugin removes a plugin and calls its Cleanup hook.
// No-op if the plugin is not registered.
func (r *Runtime) UnregisterPlugin(p Plugin) {
	for i, entry := range r.plugins {
		if entry.plugin == p {
			r.plugins = append(r.plugins[:i:i], r.plugins[i+1:]...)
			guardPlugin(entry.name, "cleanup", p.Cleanup)
			return
		}
	}
}

// updatePlugins runs every plugin's Update hook with the tick's delta in
// milliseconds.
func (r *Runtime) updatePlugins(deltaMillis float64) {
	for _, entry := range r.plugins {
		guardPlugin(entry.name, "update", func() {
			entry.plugin.Update(deltaMillis)
		})
	}
}

// guardPlugin runs a plugin hook, recovering and logging any panic so plugin
// failures stay isolated from the frame loop.
func guardPlugin(name, hook string, fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.Warn("plugin hook panicked",
				slog.String("plugin", name),
				slog.String("hook", hook),
				slog.Any("error", err))
		}
	}()
	fn()
}
