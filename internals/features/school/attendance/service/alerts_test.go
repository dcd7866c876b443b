package service

import (
	"testing"
	"time"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	studentModel "schoolku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// absentOn membuat baris absen untuk tanggal-tanggal yang diberikan.
func absentOn(t *testing.T, s fixtureStudent, dates ...string) []attendanceModel.AttendanceRecordModel {
	t.Helper()
	marker := uuid.New()
	rows := make([]attendanceModel.AttendanceRecordModel, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, row(t, s, d, "general", attendanceModel.StatusAbsent, marker, time.Now()))
	}
	return rows
}

func TestAbsenteeAlertsThreeAbsencesTriggersAlert(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	today := mustDate(t, "2026-03-05")

	rows := absentOn(t, alice, "2026-03-03", "2026-03-04", "2026-03-05")
	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	alerts := AbsenteeAlerts(sessions, today)

	assert.Len(t, alerts, 1)
	assert.Equal(t, alice.userID, alerts[0].UserID)
	assert.Equal(t, 3, alerts[0].AbsentDays)
	assert.Equal(t, "2026-03-05", alerts[0].LastAbsent)
}

func TestAbsenteeAlertsTwoAbsencesNoAlert(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	today := mustDate(t, "2026-03-05")

	rows := absentOn(t, alice, "2026-03-04", "2026-03-05")
	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	assert.Empty(t, AbsenteeAlerts(sessions, today))
}

func TestAbsenteeAlertsWindowIsInclusive(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	today := mustDate(t, "2026-03-05")

	// 2026-03-02 = today-3d, masih masuk jendela; 2026-03-01 tidak.
	rows := absentOn(t, alice, "2026-03-01", "2026-03-02", "2026-03-04", "2026-03-05")
	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	alerts := AbsenteeAlerts(sessions, today)

	assert.Len(t, alerts, 1)
	assert.Equal(t, 3, alerts[0].AbsentDays)
	assert.Equal(t, "2026-03-05", alerts[0].LastAbsent)
}

func TestAbsenteeAlertsIgnoresLateAndPresent(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	marker := uuid.New()
	today := mustDate(t, "2026-03-05")

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-03", "general", attendanceModel.StatusLate, marker, time.Now()),
		row(t, alice, "2026-03-04", "general", attendanceModel.StatusAbsent, marker, time.Now()),
		row(t, alice, "2026-03-05", "general", attendanceModel.StatusPresent, marker, time.Now()),
	}
	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	assert.Empty(t, AbsenteeAlerts(sessions, today))
}

func TestAbsenteeAlertsIndependentOfInputOrder(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	bob := newStudent("10", "A", profiles)
	today := mustDate(t, "2026-03-05")

	rows := append(
		absentOn(t, alice, "2026-03-03", "2026-03-04", "2026-03-05"),
		absentOn(t, bob, "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05")...,
	)

	reversed := make([]attendanceModel.AttendanceRecordModel, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	forward := AbsenteeAlerts(BuildSessions(rows, profiles, MarkerEarliestWins), today)
	backward := AbsenteeAlerts(BuildSessions(reversed, profiles, MarkerEarliestWins), today)

	assert.Equal(t, forward, backward)
	assert.Len(t, forward, 2)
	// paling banyak absen dulu
	assert.Equal(t, bob.userID, forward[0].UserID)
	assert.Equal(t, 4, forward[0].AbsentDays)
}

func TestAbsenteeAlertsCountsSessionsNotDays(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	marker := uuid.New()
	today := mustDate(t, "2026-03-05")

	// Tiga mapel absen di hari yang sama = tiga sesi absen.
	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-05", "math", attendanceModel.StatusAbsent, marker, time.Now()),
		row(t, alice, "2026-03-05", "science", attendanceModel.StatusAbsent, marker, time.Now()),
		row(t, alice, "2026-03-05", "english", attendanceModel.StatusAbsent, marker, time.Now()),
	}
	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	alerts := AbsenteeAlerts(sessions, today)
	assert.Len(t, alerts, 1)
	assert.Equal(t, 3, alerts[0].AbsentDays)
}
