package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotick/internal/core/timer"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnGo          func()
	OnToggle      func()
	OnSkip        func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	items      map[timer.Action]*fyne.MenuItem
	toggleItem *fyne.MenuItem
	menu       *fyne.Menu
}

// New creates a tray manager and installs its menu.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: Ready", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Pause", func() { call(manager.callbacks.OnToggle) })
	manager.items = map[timer.Action]*fyne.MenuItem{
		timer.ActionGo:    fyne.NewMenuItem("Go!", func() { call(manager.callbacks.OnGo) }),
		timer.ActionPause: manager.toggleItem,
		timer.ActionSkip:  fyne.NewMenuItem("Skip", func() { call(manager.callbacks.OnSkip) }),
		timer.ActionReset: fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) }),
	}
	manager.items[timer.ActionResume] = manager.toggleItem

	manager.menu = fyne.NewMenu("Pomotick",
		fyne.NewMenuItem("Show", func() { call(manager.callbacks.OnShow) }),
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.items[timer.ActionGo],
		manager.toggleItem,
		manager.items[timer.ActionSkip],
		manager.items[timer.ActionReset],
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", func() { call(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	)
	manager.Update(timer.Status{State: timer.StateReady}, []timer.Action{timer.ActionGo})
	return manager
}

// Update reflects the engine status and the actions it currently allows.
func (manager *Manager) Update(status timer.Status, actions []timer.Action) {
	manager.statusItem.Label = StatusText(status)

	for _, item := range manager.items {
		item.Disabled = true
	}
	manager.toggleItem.Label = "Pause"
	for _, action := range actions {
		if item, ok := manager.items[action]; ok {
			item.Disabled = false
		}
		if action == timer.ActionResume {
			manager.toggleItem.Label = "Resume"
		}
	}
	manager.refresh()
}

// StatusText renders the tray status line.
func StatusText(status timer.Status) string {
	if status.State == timer.StateReady {
		return "Status: Ready"
	}
	text := fmt.Sprintf("Status: %s", status.State)
	if !status.Active {
		text += " (paused)"
	}
	return text
}

func (manager *Manager) refresh() {
	if manager.app == nil {
		return
	}
	manager.menu.Refresh()
	manager.app.SetSystemTrayMenu(manager.menu)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
