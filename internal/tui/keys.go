package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Theme   key.Binding
	Dismiss key.Binding
	Exit    key.Binding

	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Student  key.Binding
	Guardian key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Back      key.Binding

	ThemeShort key.Binding
	Logout     key.Binding

	Unlock key.Binding
	Resend key.Binding

	NewOTP     key.Binding
	ResetUsage key.Binding
	Leave      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Dismiss: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "dismiss")),
		Exit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Student:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "student")),
		Guardian: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "guardian")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start session")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		ThemeShort: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Logout:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "logout")),

		Unlock: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "unlock")),
		Resend: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "resend otp")),

		NewOTP:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "new otp")),
		ResetUsage: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset time")),
		Leave:      key.NewBinding(key.WithKeys("l", "esc"), key.WithHelp("l", "logout")),
	}
}

func (k keyMap) welcomeHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Student, k.Guardian, k.Exit}
}

func (k keyMap) loginHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.Back, k.Theme}
}

func (k keyMap) dashboardHelp() []key.Binding {
	return []key.Binding{k.ThemeShort, k.Logout, k.Exit}
}

func (k keyMap) lockHelp() []key.Binding {
	return []key.Binding{k.Unlock, k.Resend, k.Dismiss, k.Theme, k.Quit}
}

func (k keyMap) guardianHelp() []key.Binding {
	return []key.Binding{k.NewOTP, k.ResetUsage, k.ThemeShort, k.Leave, k.Exit}
}
