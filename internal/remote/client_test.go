package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a3faarms/petboarding/internal/models"
)

func testPayload() Payload {
	return PayloadFromForm(models.BookingFormData{
		PetName:    "Whiskers",
		PetType:    models.PetTypeCat,
		OwnerName:  "Dana Reyes",
		OwnerPhone: "555-0142",
		CheckIn:    models.NewDate(2024, 3, 1),
		CheckOut:   models.NewDate(2024, 3, 5),
		Notes:      "grain-free diet",
	})
}

func TestPayloadFromForm(t *testing.T) {
	p := testPayload()

	if p.StartDate != "2024-03-01" || p.EndDate != "2024-03-05" {
		t.Errorf("dates = %s..%s, want 2024-03-01..2024-03-05", p.StartDate, p.EndDate)
	}
	if p.PetType != "cat" {
		t.Errorf("PetType = %q, want cat", p.PetType)
	}
	if p.SpecialNotes != "grain-free diet" {
		t.Errorf("SpecialNotes = %q", p.SpecialNotes)
	}
}

func TestPayloadOmitsEmptyNotes(t *testing.T) {
	p := testPayload()
	p.SpecialNotes = ""

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["special_notes"]; ok {
		t.Error("empty special_notes was serialized")
	}
}

func TestInsertBookingSuccess(t *testing.T) {
	var gotPath, gotAPIKey, gotAuth, gotPrefer string
	var gotBody Payload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPrefer = r.Header.Get("Prefer")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, Key: "test-key", Table: "bookings"})

	result := client.InsertBooking(context.Background(), testPayload())
	if !result.Success {
		t.Fatalf("InsertBooking() failed: %v", result.Err)
	}

	if gotPath != "/rest/v1/bookings" {
		t.Errorf("request path = %q, want /rest/v1/bookings", gotPath)
	}
	if gotAPIKey != "test-key" || gotAuth != "Bearer test-key" {
		t.Errorf("auth headers = %q / %q", gotAPIKey, gotAuth)
	}
	if gotPrefer != "return=minimal" {
		t.Errorf("Prefer = %q, want return=minimal", gotPrefer)
	}
	if gotBody.PetName != "Whiskers" || gotBody.StartDate != "2024-03-01" {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestInsertBookingServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "row level security", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, Key: "bad-key", Table: "bookings"})

	result := client.InsertBooking(context.Background(), testPayload())
	if result.Success {
		t.Fatal("InsertBooking() succeeded against a 401 response")
	}
	if result.Err == nil {
		t.Fatal("InsertBooking() failed without an error")
	}
}

func TestInsertBookingUnreachable(t *testing.T) {
	// A server closed before the request guarantees a transport error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{URL: server.URL, Key: "test-key", Table: "bookings"})

	result := client.InsertBooking(context.Background(), testPayload())
	if result.Success || result.Err == nil {
		t.Error("InsertBooking() did not surface the transport error")
	}
}

func TestInsertBookingNotConfigured(t *testing.T) {
	client := NewClient(Config{Table: "bookings"})

	result := client.InsertBooking(context.Background(), testPayload())
	if result.Success {
		t.Fatal("InsertBooking() succeeded without configuration")
	}
	if result.Err != ErrNotConfigured {
		t.Errorf("Err = %v, want ErrNotConfigured", result.Err)
	}
}
