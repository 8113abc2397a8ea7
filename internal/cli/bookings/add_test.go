package bookings

import (
	"strings"
	"testing"
)

func validAddCmd() AddCmd {
	return AddCmd{
		PetName:  "Whiskers",
		PetType:  "cat",
		Owner:    "Dana Reyes",
		Phone:    "555-0142",
		CheckIn:  "2024-03-01",
		CheckOut: "2024-03-05",
	}
}

func TestAddCmdValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AddCmd)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *AddCmd) {},
		},
		{
			name:    "empty pet name",
			mutate:  func(c *AddCmd) { c.PetName = "   " },
			wantErr: "pet name",
		},
		{
			name:    "unknown pet type",
			mutate:  func(c *AddCmd) { c.PetType = "ferret" },
			wantErr: "pet type",
		},
		{
			name:    "empty owner",
			mutate:  func(c *AddCmd) { c.Owner = "" },
			wantErr: "owner name",
		},
		{
			name:    "empty phone",
			mutate:  func(c *AddCmd) { c.Phone = "" },
			wantErr: "owner phone",
		},
		{
			name:    "bad check-in format",
			mutate:  func(c *AddCmd) { c.CheckIn = "03/01/2024" },
			wantErr: "check-in",
		},
		{
			name:    "bad check-out format",
			mutate:  func(c *AddCmd) { c.CheckOut = "tomorrow" },
			wantErr: "check-out",
		},
		{
			name:    "check-out equals check-in",
			mutate:  func(c *AddCmd) { c.CheckOut = "2024-03-01" },
			wantErr: "check-out must be after",
		},
		{
			name:    "check-out before check-in",
			mutate:  func(c *AddCmd) { c.CheckOut = "2024-02-28" },
			wantErr: "check-out must be after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validAddCmd()
			tt.mutate(&cmd)

			err := cmd.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
