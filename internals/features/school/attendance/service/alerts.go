// internals/features/school/attendance/service/alerts.go
package service

import (
	"sort"
	"time"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"

	"github.com/google/uuid"
)

const (
	// Jendela pengamatan: [hari ini - 3 hari, hari ini] inklusif.
	AlertWindowDays = 3
	// Minimal jumlah absen dalam jendela agar masuk daftar peringatan.
	AlertThreshold = 3
)

// AlertSnapshot adalah hasil komputasi harian yang diparkir di redis,
// dipakai sebagai fallback saat komputasi segar gagal.
type AlertSnapshot struct {
	Alerts      []AbsenteeAlert `json:"alerts"`
	GeneratedAt time.Time       `json:"generated_at"`
}

func AlertSnapshotKey(schoolID uuid.UUID) string {
	return "attendance:alerts:" + schoolID.String()
}

type AbsenteeAlert struct {
	UserID     uuid.UUID `json:"user_id"`
	AbsentDays int       `json:"absent_days"`
	LastAbsent string    `json:"last_absent"` // YYYY-MM-DD
}

// AbsenteeAlerts mencari siswa yang absen >= AlertThreshold kali dalam
// jendela AlertWindowDays terakhir. Input di-sort ulang di sini; urutan
// dari pemanggil tidak dipercaya.
func AbsenteeAlerts(sessions []*Session, today time.Time) []AbsenteeAlert {
	sorted := make([]*Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	windowStart := today.AddDate(0, 0, -AlertWindowDays).Format("2006-01-02")
	windowEnd := today.Format("2006-01-02")

	counts := make(map[uuid.UUID]int)
	lastAbsent := make(map[uuid.UUID]string)

	for _, s := range sorted {
		if s.Date < windowStart || s.Date > windowEnd {
			continue
		}
		for userID, status := range s.Records {
			if status != attendanceModel.StatusAbsent {
				continue
			}
			counts[userID]++
			if s.Date > lastAbsent[userID] {
				lastAbsent[userID] = s.Date
			}
		}
	}

	alerts := make([]AbsenteeAlert, 0)
	for userID, n := range counts {
		if n < AlertThreshold {
			continue
		}
		alerts = append(alerts, AbsenteeAlert{
			UserID:     userID,
			AbsentDays: n,
			LastAbsent: lastAbsent[userID],
		})
	}

	// Urutan deterministik: paling banyak absen dulu, lalu per user id.
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].AbsentDays != alerts[j].AbsentDays {
			return alerts[i].AbsentDays > alerts[j].AbsentDays
		}
		return alerts[i].UserID.String() < alerts[j].UserID.String()
	})
	return alerts
}
