// Package query holds the pure filtering, searching and counting functions
// over a booking collection. Nothing here owns state: callers pass the
// store's current collection in and get derived copies out.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a3faarms/petboarding/internal/models"
)

// Category is the list view's filter chip.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryActive   Category = "active"
	CategoryUpcoming Category = "upcoming"
	CategoryCats     Category = "cat"
	CategoryDogs     Category = "dog"
)

// Categories lists the filter chips in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryActive, CategoryUpcoming, CategoryCats, CategoryDogs}
}

// ParseCategory maps a user-supplied filter name to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryAll, "":
		return CategoryAll, nil
	case CategoryActive:
		return CategoryActive, nil
	case CategoryUpcoming:
		return CategoryUpcoming, nil
	case CategoryCats, "cats":
		return CategoryCats, nil
	case CategoryDogs, "dogs":
		return CategoryDogs, nil
	default:
		return "", fmt.Errorf("invalid filter %q (expected all|active|upcoming|cat|dog)", s)
	}
}

// MatchesSearch reports whether the query is a case-insensitive substring of
// the booking's pet name, owner name, or pet type. An empty query matches
// everything.
func MatchesSearch(b models.Booking, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(b.PetName), q) ||
		strings.Contains(strings.ToLower(b.OwnerName), q) ||
		strings.Contains(strings.ToLower(string(b.PetType)), q)
}

func matchesCategory(b models.Booking, c Category, today models.Date) bool {
	switch c {
	case CategoryCats:
		return b.PetType == models.PetTypeCat
	case CategoryDogs:
		return b.PetType == models.PetTypeDog
	case CategoryActive:
		return b.Covers(today)
	case CategoryUpcoming:
		return b.CheckIn.After(today)
	default:
		return true
	}
}

// Apply runs the list view's pipeline: search and category compose as a
// logical AND, and the result is sorted descending by check-in date. The
// input slice is never modified.
func Apply(bookings []models.Booking, search string, category Category, today models.Date) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if MatchesSearch(b, search) && matchesCategory(b, category, today) {
			out = append(out, b)
		}
	}
	SortByCheckInDesc(out)
	return out
}

// SortByCheckInDesc orders bookings most recent/future check-in first.
// Ordering between bookings with the same check-in date is unspecified.
func SortByCheckInDesc(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CheckIn.After(bookings[j].CheckIn)
	})
}

// Capacity counts the bookings per pet type covering the given date. A full
// linear scan of the collection.
func Capacity(bookings []models.Booking, date models.Date) models.CapacityCount {
	var count models.CapacityCount
	for _, b := range bookings {
		if !b.Covers(date) {
			continue
		}
		switch b.PetType {
		case models.PetTypeCat:
			count.Cats++
		case models.PetTypeDog:
			count.Dogs++
		}
	}
	return count
}

// CoveringDate returns the bookings covering the given date, in store order.
func CoveringDate(bookings []models.Booking, date models.Date) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if b.Covers(date) {
			out = append(out, b)
		}
	}
	return out
}

// Recent returns up to n of the most recently added bookings, newest first.
func Recent(bookings []models.Booking, n int) []models.Booking {
	if n > len(bookings) {
		n = len(bookings)
	}
	out := make([]models.Booking, 0, n)
	for i := len(bookings) - 1; i >= len(bookings)-n; i-- {
		out = append(out, bookings[i])
	}
	return out
}
