package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"schoolku_backend/internals/features/school/events/model"

	"github.com/stretchr/testify/assert"
)

func TestDecideRegistrationStatus(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		activeCount int64
		want        string
	}{
		{"unlimited capacity", 0, 1000, model.RegStatusRegistered},
		{"seats left", 50, 49, model.RegStatusRegistered},
		{"exactly full", 50, 50, model.RegStatusWaitlisted},
		{"over capacity", 50, 51, model.RegStatusWaitlisted},
		{"first registrant", 1, 0, model.RegStatusRegistered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideRegistrationStatus(tt.capacity, tt.activeCount))
		})
	}
}

func TestWriteRegistrantsCSV(t *testing.T) {
	registeredAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	rows := []RegistrantRow{
		{FullName: "Siti Aminah", Email: "siti@example.com", Status: model.RegStatusRegistered, RegisteredAt: registeredAt},
		{FullName: "Budi, Jr.", Email: "budi@example.com", Status: model.RegStatusWaitlisted, RegisteredAt: registeredAt},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteRegistrantsCSV(&buf, rows))

	parsed, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)

	// header + satu baris per pendaftar
	assert.Len(t, parsed, 3)
	assert.Equal(t, []string{"full_name", "email", "status", "registered_at"}, parsed[0])
	assert.Equal(t, []string{"Siti Aminah", "siti@example.com", "registered", "2026-03-02 09:30:00"}, parsed[1])
	// koma di nama harus selamat lewat quoting CSV
	assert.Equal(t, "Budi, Jr.", parsed[2][0])
}

func TestWriteRegistrantsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteRegistrantsCSV(&buf, nil))

	parsed, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, parsed, 1) // header saja
}
