package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/a3faarms/petboarding/internal/constants"
	"github.com/a3faarms/petboarding/internal/remote"
	"github.com/a3faarms/petboarding/internal/tui/components/bookinglist"
)

// syncResultMsg reports the outcome of a background remote insert.
type syncResultMsg struct {
	result remote.Result
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle New Booking form state
	if m.state == constants.StateNewBooking {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateBookings
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			data, err := m.bookingForm.FormData()
			if err != nil {
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			booking, err := m.store.AddBooking(data)
			if err != nil {
				m.formError = fmt.Sprintf("Failed to add booking: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			m.refreshBookings()
			m.formError = ""
			m.statusMessage = fmt.Sprintf("Added booking for %s", booking.PetName)
			m.state = constants.StateHome

			if m.remote.Configured() {
				payload := remote.PayloadFromForm(data)
				client := m.remote
				cmds = append(cmds, func() tea.Msg {
					return syncResultMsg{result: client.InsertBooking(context.Background(), payload)}
				})
			}
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StateBookings
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete state
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if m.bookingToDelete != nil {
					if err := m.store.DeleteBooking(m.bookingToDelete.ID); err == nil {
						m.statusMessage = fmt.Sprintf("Deleted booking for %s", m.bookingToDelete.PetName)
						m.refreshBookings()
					}
				}
				m.bookingToDelete = nil
				m.state = constants.StateBookings
				return m, nil
			case "n", "N", "esc":
				m.bookingToDelete = nil
				m.state = constants.StateBookings
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Tabs, status line and help take four rows.
		contentHeight := msg.Height - 4
		h, v := docStyle.GetFrameSize()
		m.homeModel.SetSize(msg.Width-h, contentHeight-v)
		m.bookingList.SetSize(msg.Width-h, contentHeight-v)

	case syncResultMsg:
		if msg.result.Success {
			m.statusMessage = "✓ Synced to remote"
		} else {
			m.statusMessage = fmt.Sprintf("⚠ Remote sync failed: %v (saved locally)", msg.result.Err)
		}
		return m, nil

	case bookinglist.NewBookingMsg:
		m.bookingForm = &BookingFormModel{}
		m.form = NewBookingForm(m.bookingForm)
		m.state = constants.StateNewBooking
		return m, m.form.Init()

	case bookinglist.DeleteBookingMsg:
		booking := msg.Booking
		m.bookingToDelete = &booking
		m.state = constants.StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		// The search box owns the keyboard while focused.
		if m.state == constants.StateBookings && m.bookingList.Searching() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.statusMessage = ""
			m.state = (m.state + 1) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.statusMessage = ""
			m.state = (m.state - 1 + constants.NumMainTabs) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.New):
			m.bookingForm = &BookingFormModel{}
			m.form = NewBookingForm(m.bookingForm)
			m.state = constants.StateNewBooking
			return m, m.form.Init()
		}
	}

	// Route remaining messages to the active view.
	var cmd tea.Cmd
	switch m.state {
	case constants.StateHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case constants.StateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
