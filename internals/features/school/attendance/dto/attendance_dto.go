package dto

import (
	"time"

	"schoolku_backend/internals/features/school/attendance/service"

	"github.com/google/uuid"
)

// 🔹 Request simpan absensi satu kelas untuk satu tanggal
type MarkAttendanceRequest struct {
	Date    string            `json:"date" validate:"required"` // YYYY-MM-DD
	Class   string            `json:"class" validate:"required"`
	Section string            `json:"section" validate:"required"`
	Subject string            `json:"subject"` // kosong → "general"
	Entries []AttendanceEntry `json:"entries" validate:"dive"`
}

type AttendanceEntry struct {
	StudentProfileID uuid.UUID `json:"student_profile_id" validate:"required"`
	Status           string    `json:"status" validate:"required,oneof=present absent late"`
}

// 🔹 Response satu sesi absensi hasil agregasi
type SessionResponse struct {
	Date         string            `json:"date"`
	Class        string            `json:"class"`
	Section      string            `json:"section"`
	Subject      string            `json:"subject"`
	Records      map[string]string `json:"records"` // user_id → status
	MarkedBy     uuid.UUID         `json:"marked_by"`
	MarkedByName string            `json:"marked_by_name,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// 🔹 Response peringatan siswa sering absen
type AbsenteeAlertResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	AbsentDays  int       `json:"absent_days"`
	LastAbsent  string    `json:"last_absent"`
}

type AbsenteeAlertListResponse struct {
	Alerts      []AbsenteeAlertResponse `json:"alerts"`
	GeneratedAt time.Time               `json:"generated_at"`
	Source      string                  `json:"source"` // fresh | snapshot
}

// 🔄 Konversi sesi → response
func ToSessionResponse(s *service.Session, markerNames map[uuid.UUID]string) SessionResponse {
	records := make(map[string]string, len(s.Records))
	for userID, status := range s.Records {
		records[userID.String()] = status
	}
	return SessionResponse{
		Date:         s.Date,
		Class:        s.Class,
		Section:      s.Section,
		Subject:      s.Subject,
		Records:      records,
		MarkedBy:     s.MarkedBy,
		MarkedByName: markerNames[s.MarkedBy],
		Timestamp:    s.Timestamp,
	}
}

// 🔄 Konversi alert service → response
func ToAbsenteeAlertResponses(alerts []service.AbsenteeAlert, studentNames map[uuid.UUID]string) []AbsenteeAlertResponse {
	out := make([]AbsenteeAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AbsenteeAlertResponse{
			StudentID:   a.UserID,
			StudentName: studentNames[a.UserID],
			AbsentDays:  a.AbsentDays,
			LastAbsent:  a.LastAbsent,
		})
	}
	return out
}
