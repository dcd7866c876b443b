// internals/features/school/attendance/service/aggregate.go
package service

import (
	"log"
	"time"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	studentModel "schoolku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
)

// MarkerPolicy menentukan siapa yang tercatat sebagai penanda sesi
// ketika lebih dari satu guru menulis ke sesi yang sama.
type MarkerPolicy string

const (
	// Penulis pertama yang dipertahankan (default).
	MarkerEarliestWins MarkerPolicy = "earliest_wins"
	// Penulis terakhir yang dipertahankan.
	MarkerLatestWins MarkerPolicy = "latest_wins"
)

func ResolveMarkerPolicy(s string) MarkerPolicy {
	if MarkerPolicy(s) == MarkerLatestWins {
		return MarkerLatestWins
	}
	return MarkerEarliestWins
}

const DefaultSubject = "general"

// Session adalah hasil agregasi baris absensi:
// satu sesi per kombinasi tanggal|kelas|section|mapel.
type Session struct {
	Date    string               `json:"date"` // YYYY-MM-DD
	Class   string               `json:"class"`
	Section string               `json:"section"`
	Subject string               `json:"subject"`
	Records map[uuid.UUID]string `json:"records"` // user_id → status
	MarkedBy  uuid.UUID          `json:"marked_by"`
	Timestamp time.Time          `json:"timestamp"`

	firstMarkedBy uuid.UUID
	firstSeen     time.Time
	lastMarkedBy  uuid.UUID
	lastSeen      time.Time
}

func sessionKey(date, class, section, subject string) string {
	return date + "|" + class + "|" + section + "|" + subject
}

// BuildSessions mengelompokkan baris absensi menjadi sesi.
// Baris yang profilnya tidak ditemukan di lookup dilewati tanpa error.
// Urutan sesi mengikuti urutan kemunculan pertama di input.
// Status duplikat untuk (sesi, siswa) yang sama: baris belakangan menang.
func BuildSessions(
	rows []attendanceModel.AttendanceRecordModel,
	profiles map[uuid.UUID]studentModel.StudentProfileModel,
	policy MarkerPolicy,
) []*Session {
	sessions := make(map[string]*Session)
	order := make([]string, 0)
	skipped := 0

	for _, r := range rows {
		p, ok := profiles[r.StudentProfileID]
		if !ok {
			skipped++
			continue
		}

		subject := r.Subject
		if subject == "" {
			subject = DefaultSubject
		}
		date := r.AttendanceDate.Format("2006-01-02")
		key := sessionKey(date, p.Class, p.Section, subject)

		s, ok := sessions[key]
		if !ok {
			s = &Session{
				Date:          date,
				Class:         p.Class,
				Section:       p.Section,
				Subject:       subject,
				Records:       make(map[uuid.UUID]string),
				firstMarkedBy: r.MarkedBy,
				firstSeen:     r.CreatedAt,
			}
			sessions[key] = s
			order = append(order, key)
		}

		s.Records[p.UserID] = r.Status
		s.lastMarkedBy = r.MarkedBy
		s.lastSeen = r.CreatedAt
	}

	if skipped > 0 {
		log.Printf("[DEBUG] BuildSessions: %d baris absensi tanpa profil dilewati", skipped)
	}

	out := make([]*Session, 0, len(order))
	for _, key := range order {
		s := sessions[key]
		switch policy {
		case MarkerLatestWins:
			s.MarkedBy = s.lastMarkedBy
			s.Timestamp = s.lastSeen
		default:
			s.MarkedBy = s.firstMarkedBy
			s.Timestamp = s.firstSeen
		}
		out = append(out, s)
	}
	return out
}
