package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dcastilloq/reservation-service/internal/model"
)

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	rsv := model.Reservation{
		ID:          1,
		TableNumber: 5,
		HolderName:  "Ana",
		IsActive:    true,
		Date:        model.NewDate(2024, time.June, 1),
		PartySize:   4,
		Services:    "catering",
	}
	data, err := json.Marshal(rsv)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"tableNumber":5,"holderName":"Ana","isActive":true,"date":"2024-06-01","partySize":4,"services":"catering"}`, string(data))

	var back model.Reservation
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Date.Equal(rsv.Date))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := model.ParseDate("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", d.String())

	_, err = model.ParseDate("01-06-2024")
	require.Error(t, err)

	_, err = model.ParseDate("2024-13-01")
	require.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d model.Date
	require.NoError(t, d.Scan(time.Date(2024, time.June, 1, 15, 4, 5, 0, time.Local)))
	require.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan("2024-06-02"))
	require.Equal(t, "2024-06-02", d.String())

	require.Error(t, d.Scan(42))
}
