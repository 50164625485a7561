package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	regModel "github.com/cavalryfc/registration-api/internal/registration/model"
)

func TestService_WriteCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("writes header and rows", func(t *testing.T) {
		db := setupTestDB(t)
		gateway := new(mockGateway)
		svc := newTestService(db, gateway)
		team := seedTeam(t, db, nil)

		req := intakeRequest(team.ID)
		req.JerseySize = "YM"
		req.ShortSize = "YS"
		req.MedicalNotes = "peanut allergy"
		_, err := svc.Waitlist(ctx, req)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, svc.WriteCSV(ctx, &buf, ""))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, csvHeader, rows[0])

		row := rows[1]
		assert.Equal(t, "Player, Pat", row[0])
		assert.Equal(t, "U10 Red", row[1])
		assert.Equal(t, "WAITLIST", row[2])
		assert.Equal(t, "2014-03-02", row[3])
		assert.Equal(t, "Gail", row[4])
		assert.Equal(t, "1 Main St, Springfield, IL 62701", row[12])
		assert.Equal(t, "160.00", row[13])
		assert.Equal(t, "YM", row[15])
		assert.Equal(t, "YS", row[16])
		assert.Equal(t, "peanut allergy", row[17])
		assert.Equal(t, "Yes", row[18])
	})

	t.Run("honors status filter", func(t *testing.T) {
		db := setupTestDB(t)
		gateway := new(mockGateway)
		svc := newTestService(db, gateway)
		team := seedTeam(t, db, nil)

		_, err := svc.Waitlist(ctx, intakeRequest(team.ID))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, svc.WriteCSV(ctx, &buf, regModel.FilterPaid))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("invalid filter", func(t *testing.T) {
		db := setupTestDB(t)
		gateway := new(mockGateway)
		svc := newTestService(db, gateway)

		var buf bytes.Buffer
		err := svc.WriteCSV(ctx, &buf, "bogus")

		assert.ErrorIs(t, err, regModel.ErrInvalidStatusFilter)
		assert.Zero(t, buf.Len())
	})
}
