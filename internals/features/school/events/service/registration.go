// internals/features/school/events/service/registration.go
package service

import (
	"encoding/csv"
	"io"
	"time"

	"schoolku_backend/internals/features/school/events/model"
)

// DecideRegistrationStatus: kapasitas 0 = tanpa batas; kalau kuota
// terisi, pendaftar baru masuk waitlist.
func DecideRegistrationStatus(capacity int, activeCount int64) string {
	if capacity > 0 && activeCount >= int64(capacity) {
		return model.RegStatusWaitlisted
	}
	return model.RegStatusRegistered
}

// ActiveStatuses adalah status yang menghitung kuota kapasitas.
var ActiveStatuses = []string{model.RegStatusRegistered, model.RegStatusAttended}

// RegistrantRow adalah satu baris export CSV.
type RegistrantRow struct {
	FullName     string
	Email        string
	Status       string
	RegisteredAt time.Time
}

// WriteRegistrantsCSV menulis header + satu baris per pendaftar.
func WriteRegistrantsCSV(w io.Writer, rows []RegistrantRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"full_name", "email", "status", "registered_at"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.FullName,
			r.Email,
			r.Status,
			r.RegisteredAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
