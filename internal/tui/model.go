package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/a3faarms/petboarding/internal/constants"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/remote"
	"github.com/a3faarms/petboarding/internal/storage"
	"github.com/a3faarms/petboarding/internal/tui/components/bookinglist"
	"github.com/a3faarms/petboarding/internal/tui/components/home"
)

type Model struct {
	store           storage.Provider
	remote          *remote.Client
	state           constants.SessionState
	keys            KeyMap
	help            help.Model
	homeModel       home.Model
	bookingList     bookinglist.Model
	form            *huh.Form
	bookingForm     *BookingFormModel
	bookingToDelete *models.Booking
	statusMessage   string
	formError       string
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, remoteClient *remote.Client) Model {
	bookings, err := store.AllBookings()
	if err != nil {
		bookings = []models.Booking{}
	}

	return Model{
		store:       store,
		remote:      remoteClient,
		state:       constants.StateHome,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		homeModel:   home.New(bookings, 0, 0),
		bookingList: bookinglist.New(bookings, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateBookings {
		keys = append(keys, m.keys.New, m.keys.Delete, m.keys.Search)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == constants.StateBookings {
		actions = []key.Binding{m.keys.New, m.keys.Delete, m.keys.Search}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshBookings reloads both views from the store.
func (m *Model) refreshBookings() {
	bookings, err := m.store.AllBookings()
	if err != nil {
		return
	}
	m.homeModel.SetBookings(bookings)
	m.bookingList.SetBookings(bookings)
}
