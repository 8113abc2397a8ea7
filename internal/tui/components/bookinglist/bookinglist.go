package bookinglist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/query"
)

type NewBookingMsg struct{}

type DeleteBookingMsg struct {
	Booking models.Booking
}

type Item struct {
	Booking models.Booking
}

func (i Item) Title() string {
	icon := "🐶"
	if i.Booking.PetType == models.PetTypeCat {
		icon = "🐱"
	}
	return fmt.Sprintf("%s %s", icon, i.Booking.PetName)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s → %s | %s (%s)",
		i.Booking.CheckIn, i.Booking.CheckOut, i.Booking.OwnerName, i.Booking.OwnerPhone)
	if i.Booking.Notes != "" {
		desc += " | " + i.Booking.Notes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Booking.PetName }

type KeyMap struct {
	New    key.Binding
	Delete key.Binding
	Search key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new booking"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
	}
}

var (
	activeChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			PaddingLeft(1)
)

// Model shows the full booking collection with the search box and category
// chips applied on top. The bookings slice is the unfiltered source; the
// visible list is recomputed whenever search or category changes.
type Model struct {
	list     list.Model
	search   textinput.Model
	keys     KeyMap
	bookings []models.Booking
	category query.Category
}

func New(bookings []models.Booking, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "All Bookings"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false) // search is handled by the text input

	ti := textinput.New()
	ti.Placeholder = "Search bookings..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.New, keys.Delete, keys.Search}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.New, keys.Delete, keys.Search}
	}

	m := Model{
		list:     l,
		search:   ti,
		keys:     keys,
		bookings: bookings,
		category: query.CategoryAll,
	}
	m.applyFilters()
	return m
}

func (m *Model) SetBookings(bookings []models.Booking) {
	m.bookings = bookings
	m.applyFilters()
}

func (m *Model) SetSize(width, height int) {
	// Two lines for the search box and chips row.
	m.list.SetSize(width, height-2)
	m.search.Width = width - 4
}

// Searching reports whether the search box currently owns the keyboard.
func (m Model) Searching() bool {
	return m.search.Focused()
}

// SelectedBooking returns the highlighted booking, if any.
func (m Model) SelectedBooking() (models.Booking, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Booking, true
	}
	return models.Booking{}, false
}

func (m *Model) applyFilters() {
	filtered := query.Apply(m.bookings, m.search.Value(), m.category, models.Today())
	items := make([]list.Item, len(filtered))
	for i, b := range filtered {
		items[i] = Item{Booking: b}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.Type {
			case tea.KeyEsc:
				m.search.Blur()
				m.search.SetValue("")
				m.applyFilters()
				return m, nil
			case tea.KeyEnter:
				m.search.Blur()
				return m, nil
			}
			m.search, cmd = m.search.Update(msg)
			m.applyFilters()
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.New):
			return m, func() tea.Msg { return NewBookingMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if b, ok := m.SelectedBooking(); ok {
				return m, func() tea.Msg { return DeleteBookingMsg{Booking: b} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Search):
			return m, m.search.Focus()
		}

		// Number keys select a category chip.
		for i, c := range query.Categories() {
			if msg.String() == fmt.Sprintf("%d", i+1) {
				m.category = c
				m.applyFilters()
				return m, nil
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.search.View(),
		m.viewChips(),
		m.list.View(),
	)
}

func (m Model) viewChips() string {
	chips := make([]string, 0, len(query.Categories())+1)
	for i, c := range query.Categories() {
		label := fmt.Sprintf("%d:%s", i+1, c)
		if c == m.category {
			chips = append(chips, activeChipStyle.Render(label))
		} else {
			chips = append(chips, inactiveChipStyle.Render(label))
		}
	}
	chips = append(chips, countStyle.Render(fmt.Sprintf("%d booking(s)", len(m.list.Items()))))
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
