// internals/features/school/attendance/service/save.go
package service

import (
	"time"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"

	"github.com/google/uuid"
)

type SaveEntry struct {
	StudentProfileID uuid.UUID
	Status           string
}

// BuildRecords menyusun baris absensi yang akan disimpan untuk satu
// pengambilan absen. Deterministik: input sama → baris sama.
func BuildRecords(
	schoolID uuid.UUID,
	date time.Time,
	subject string,
	markedBy uuid.UUID,
	entries []SaveEntry,
) []attendanceModel.AttendanceRecordModel {
	if subject == "" {
		subject = DefaultSubject
	}
	records := make([]attendanceModel.AttendanceRecordModel, 0, len(entries))
	for _, e := range entries {
		records = append(records, attendanceModel.AttendanceRecordModel{
			SchoolID:         schoolID,
			StudentProfileID: e.StudentProfileID,
			AttendanceDate:   date,
			Subject:          subject,
			Status:           e.Status,
			MarkedBy:         markedBy,
		})
	}
	return records
}
