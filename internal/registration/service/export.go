package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// csvHeader is the fixed export column set the club's spreadsheets expect.
var csvHeader = []string{
	"Player Name",
	"Team",
	"Status",
	"DOB",
	"Guardian 1 First",
	"Guardian 1 Last",
	"Guardian 1 Email",
	"Guardian 1 Phone",
	"Guardian 2 First",
	"Guardian 2 Last",
	"Guardian 2 Email",
	"Guardian 2 Phone",
	"Address",
	"Amount",
	"Date",
	"Jersey Size",
	"Short Size",
	"Medical Notes",
	"Age Verified",
}

// WriteCSV streams all registrations (optionally filtered) as CSV.
func (s *service) WriteCSV(ctx context.Context, w io.Writer, statusFilter string) error {
	regs, err := s.List(ctx, statusFilter)
	if err != nil {
		return err
	}

	csvw := csv.NewWriter(w)
	if err := csvw.Write(csvHeader); err != nil {
		return err
	}

	for _, reg := range regs {
		status := reg.PaymentStatus
		if reg.IsWaitlist {
			status = "WAITLIST"
		}

		ageVerified := "No"
		if reg.AgeVerificationAccepted {
			ageVerified = "Yes"
		}

		address := strings.TrimSpace(reg.Street1 + " " + reg.Street2)
		address = fmt.Sprintf("%s, %s, %s %s", address, reg.City, reg.State, reg.Zip)

		row := []string{
			fmt.Sprintf("%s, %s", reg.PlayerLastName, reg.PlayerFirstName),
			reg.TeamName,
			status,
			reg.DateOfBirth,
			reg.Guardian1FirstName,
			reg.Guardian1LastName,
			reg.Guardian1Email,
			reg.Guardian1Phone,
			reg.Guardian2FirstName,
			reg.Guardian2LastName,
			reg.Guardian2Email,
			reg.Guardian2Phone,
			address,
			fmt.Sprintf("%.2f", float64(reg.AmountCents)/100),
			reg.CreatedAt.Format("2006-01-02"),
			reg.JerseySize,
			reg.ShortSize,
			reg.MedicalNotes,
			ageVerified,
		}
		if err := csvw.Write(row); err != nil {
			return err
		}
	}

	csvw.Flush()
	return csvw.Error()
}
