package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/a3faarms/petboarding/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHome:
		content = docStyle.Render(m.homeModel.View())
	case constants.StateBookings:
		content = docStyle.Render(m.bookingList.View())
	case constants.StateNewBooking:
		content = m.viewBookingForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Home", "Bookings"}
	for i, title := range tabTitles {
		if m.mainTab() == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// mainTab maps sub-states back onto the tab they belong to.
func (m Model) mainTab() constants.SessionState {
	switch m.state {
	case constants.StateNewBooking, constants.StateConfirmDelete:
		return constants.StateBookings
	}
	return m.state
}

func (m Model) viewBookingForm() string {
	if m.formError != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			dangerStyle.Render(m.formError),
			m.form.View(),
		)
	}
	return m.form.View()
}

func (m Model) viewConfirmDelete() string {
	prompt := "Are you sure you want to delete this booking?"
	if m.bookingToDelete != nil {
		prompt = fmt.Sprintf("Delete booking for %s (%s → %s)?",
			m.bookingToDelete.PetName, m.bookingToDelete.CheckIn, m.bookingToDelete.CheckOut)
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewStatus() string {
	if m.statusMessage == "" {
		return ""
	}
	if strings.HasPrefix(m.statusMessage, "⚠") {
		return errorStatusStyle.Render(" " + m.statusMessage)
	}
	return statusStyle.Render(" " + m.statusMessage)
}
