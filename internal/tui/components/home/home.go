package home

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/a3faarms/petboarding/internal/constants"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/query"
)

var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				MarginTop(1)

	catCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 2).
			MarginRight(2)

	dogCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 2)

	fullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	bookingLineStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// Model is the dashboard view: occupancy for today, today's boarders, and
// the most recently created bookings.
type Model struct {
	bookings []models.Booking
	width    int
	height   int
}

func New(bookings []models.Booking, width, height int) Model {
	return Model{bookings: bookings, width: width, height: height}
}

func (m *Model) SetBookings(bookings []models.Booking) {
	m.bookings = bookings
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	today := models.Today()
	capacity := query.Capacity(m.bookings, today)
	todays := query.CoveringDate(m.bookings, today)
	recent := query.Recent(m.bookings, constants.RecentBookingsShown)

	sections := []string{
		sectionTitleStyle.Render("Capacity Overview"),
		m.viewCapacityCards(capacity),
		sectionTitleStyle.Render(fmt.Sprintf("Today's Bookings (%d)", len(todays))),
		m.viewTodayBookings(todays),
		sectionTitleStyle.Render("Recent Bookings"),
		m.viewRecentBookings(recent),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCapacityCards(capacity models.CapacityCount) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		catCardStyle.Render(capacityCard("Cat Rooms", capacity.Cats, constants.CatRoomsTotal)),
		dogCardStyle.Render(capacityCard("Dog Spaces", capacity.Dogs, constants.DogSpacesTotal)),
	)
}

func capacityCard(title string, current, total int) string {
	percentage := 0
	if total > 0 {
		percentage = current * 100 / total
	}

	status := fmt.Sprintf("%d / %d  (%d%%)", current, total, percentage)
	if current >= total {
		status = fullStyle.Render(status + "  FULL")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		status,
		capacityBar(current, total),
	)
}

// capacityBar renders a simple 10-cell occupancy gauge.
func capacityBar(current, total int) string {
	const cells = 10
	filled := 0
	if total > 0 {
		filled = current * cells / total
		if filled > cells {
			filled = cells
		}
	}

	bar := ""
	for i := 0; i < cells; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func (m Model) viewTodayBookings(todays []models.Booking) string {
	if len(todays) == 0 {
		return emptyStyle.Render("  No bookings today — all pets are checked out for today")
	}

	lines := make([]string, 0, len(todays))
	for _, b := range todays {
		lines = append(lines, bookingLineStyle.Render(bookingLine(b)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewRecentBookings(recent []models.Booking) string {
	if len(recent) == 0 {
		return emptyStyle.Render("  No bookings yet — add your first booking to get started")
	}

	lines := make([]string, 0, len(recent))
	for _, b := range recent {
		lines = append(lines, bookingLineStyle.Render(bookingLine(b)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bookingLine(b models.Booking) string {
	return fmt.Sprintf("%s %-12s %s → %s  owner: %s",
		petIcon(b.PetType), b.PetName, b.CheckIn, b.CheckOut, b.OwnerName)
}

func petIcon(t models.PetType) string {
	if t == models.PetTypeCat {
		return "🐱"
	}
	return "🐶"
}
