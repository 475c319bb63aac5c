package ui

import tea "github.com/charmbracelet/bubbletea"

const (
	alertTitle  = "Hata"
	alertButton = "Tamam"
)

// alert is a modal with a single acknowledge button. While it is open the
// owning screen routes every key to it; other messages still reach the
// screen so loads finish and spinners keep ticking underneath.
type alert struct {
	message string
	onClose func()
}

func newAlert(message string, onClose func()) *alert {
	return &alert{message: message, onClose: onClose}
}

// Update reports whether the alert was acknowledged.
func (a *alert) Update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
		if a.onClose != nil {
			a.onClose()
		}
		return true
	}
	return false
}

func (a *alert) View(st Styles) string {
	return st.Dialog.Render(
		st.DialogHead.Render(alertTitle) + "\n\n" +
			a.message + "\n\n" +
			st.Button.Render(alertButton),
	)
}
