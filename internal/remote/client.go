package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/a3faarms/petboarding/internal/logger"
	"github.com/a3faarms/petboarding/internal/models"
)

// ErrNotConfigured is returned when an insert is attempted without a sync
// URL and API key.
var ErrNotConfigured = errors.New("remote sync is not configured")

const requestTimeout = 10 * time.Second

// Payload is the wire form of a booking insert. Dates travel as YYYY-MM-DD
// strings; the remote table never sees an instant.
type Payload struct {
	PetName      string `json:"pet_name"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	PetType      string `json:"pet_type"`
	SpecialNotes string `json:"special_notes,omitempty"`
}

// PayloadFromForm maps the local form fields onto the remote column names.
func PayloadFromForm(data models.BookingFormData) Payload {
	return Payload{
		PetName:      data.PetName,
		OwnerName:    data.OwnerName,
		OwnerPhone:   data.OwnerPhone,
		StartDate:    data.CheckIn.String(),
		EndDate:      data.CheckOut.String(),
		PetType:      string(data.PetType),
		SpecialNotes: data.Notes,
	}
}

// Result reports the outcome of a remote insert. A failed insert never
// aborts the caller's flow; the Err is carried for display.
type Result struct {
	Success bool
	Err     error
}

// Client posts bookings to the hosted table. It is constructed once at
// startup and shared; commands and views receive it, never build their own.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// InsertBooking posts one booking to the remote table. Failures are logged
// and returned in the Result; they are never fatal to the session.
func (c *Client) InsertBooking(ctx context.Context, payload Payload) Result {
	if !c.cfg.Configured() {
		return Result{Err: ErrNotConfigured}
	}

	if err := c.post(ctx, payload); err != nil {
		logger.Error("Remote insert failed", "pet", payload.PetName, "error", err)
		return Result{Err: err}
	}

	logger.Info("Remote insert succeeded", "pet", payload.PetName)
	return Result{Success: true}
}

func (c *Client) post(ctx context.Context, payload Payload) error {
	url := fmt.Sprintf("%s/rest/v1/%s", c.cfg.URL, c.cfg.Table)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.Key)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Key)
	req.Header.Set("Prefer", "return=minimal")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return fmt.Errorf("remote insert returned %d: %s", res.StatusCode, string(body))
}
