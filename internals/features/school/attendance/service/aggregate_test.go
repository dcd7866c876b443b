package service

import (
	"testing"
	"time"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	studentModel "schoolku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

type fixtureStudent struct {
	profileID uuid.UUID
	userID    uuid.UUID
}

func newStudent(class, section string, profiles map[uuid.UUID]studentModel.StudentProfileModel) fixtureStudent {
	s := fixtureStudent{profileID: uuid.New(), userID: uuid.New()}
	profiles[s.profileID] = studentModel.StudentProfileModel{
		ID:      s.profileID,
		UserID:  s.userID,
		Class:   class,
		Section: section,
	}
	return s
}

func row(t *testing.T, s fixtureStudent, date, subject, status string, markedBy uuid.UUID, seen time.Time) attendanceModel.AttendanceRecordModel {
	t.Helper()
	return attendanceModel.AttendanceRecordModel{
		ID:               uuid.New(),
		StudentProfileID: s.profileID,
		AttendanceDate:   mustDate(t, date),
		Subject:          subject,
		Status:           status,
		MarkedBy:         markedBy,
		CreatedAt:        seen,
	}
}

func TestBuildSessionsGroupsByDateClassSectionSubject(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	bob := newStudent("10", "A", profiles)
	carol := newStudent("10", "B", profiles)
	marker := uuid.New()
	now := time.Now()

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-02", "math", attendanceModel.StatusPresent, marker, now),
		row(t, bob, "2026-03-02", "math", attendanceModel.StatusAbsent, marker, now),
		row(t, carol, "2026-03-02", "math", attendanceModel.StatusPresent, marker, now),
		row(t, alice, "2026-03-02", "science", attendanceModel.StatusLate, marker, now),
	}

	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	assert.Len(t, sessions, 3)

	first := sessions[0]
	assert.Equal(t, "2026-03-02", first.Date)
	assert.Equal(t, "10", first.Class)
	assert.Equal(t, "A", first.Section)
	assert.Equal(t, "math", first.Subject)
	assert.Len(t, first.Records, 2)
	assert.Equal(t, attendanceModel.StatusPresent, first.Records[alice.userID])
	assert.Equal(t, attendanceModel.StatusAbsent, first.Records[bob.userID])

	// insertion order of first sight
	assert.Equal(t, "B", sessions[1].Section)
	assert.Equal(t, "science", sessions[2].Subject)
}

func TestBuildSessionsDuplicateUserLaterStatusWins(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	marker := uuid.New()
	now := time.Now()

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-02", "math", attendanceModel.StatusAbsent, marker, now),
		row(t, alice, "2026-03-02", "math", attendanceModel.StatusPresent, marker, now.Add(time.Minute)),
	}

	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	assert.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Records, 1)
	assert.Equal(t, attendanceModel.StatusPresent, sessions[0].Records[alice.userID])
}

func TestBuildSessionsEmptySubjectDefaultsToGeneral(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	marker := uuid.New()
	now := time.Now()

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-02", "", attendanceModel.StatusPresent, marker, now),
		row(t, alice, "2026-03-02", "general", attendanceModel.StatusAbsent, marker, now.Add(time.Minute)),
	}

	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)

	// "" dan "general" jatuh ke sesi yang sama
	assert.Len(t, sessions, 1)
	assert.Equal(t, "general", sessions[0].Subject)
	assert.Equal(t, attendanceModel.StatusAbsent, sessions[0].Records[alice.userID])
}

func TestBuildSessionsSubjectExactMatchNoNormalization(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	marker := uuid.New()
	now := time.Now()

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-02", "Math", attendanceModel.StatusPresent, marker, now),
		row(t, alice, "2026-03-02", "math", attendanceModel.StatusPresent, marker, now),
	}

	sessions := BuildSessions(rows, profiles, MarkerEarliestWins)
	assert.Len(t, sessions, 2)
}

func TestBuildSessionsSkipsOrphanRows(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	orphan := fixtureStudent{profileID: uuid.New(), userID: uuid.New()} // tidak terdaftar
	marker := uuid.New()
	now := time.Now()

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, orphan, "2026-03-02", "math", attendanceModel.StatusAbsent, marker, now),
		row(t, alice, "2026-03-02", "math", attendanceModel.StatusPresent, marker, now),
	}

	var sessions []*Session
	assert.NotPanics(t, func() {
		sessions = BuildSessions(rows, profiles, MarkerEarliestWins)
	})

	assert.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Records, 1)
	_, ok := sessions[0].Records[orphan.userID]
	assert.False(t, ok)
}

func TestBuildSessionsMarkerPolicy(t *testing.T) {
	profiles := map[uuid.UUID]studentModel.StudentProfileModel{}
	alice := newStudent("10", "A", profiles)
	bob := newStudent("10", "A", profiles)
	firstMarker := uuid.New()
	secondMarker := uuid.New()
	t0 := time.Now()

	rows := []attendanceModel.AttendanceRecordModel{
		row(t, alice, "2026-03-02", "math", attendanceModel.StatusPresent, firstMarker, t0),
		row(t, bob, "2026-03-02", "math", attendanceModel.StatusPresent, secondMarker, t0.Add(time.Hour)),
	}

	earliest := BuildSessions(rows, profiles, MarkerEarliestWins)
	latest := BuildSessions(rows, profiles, MarkerLatestWins)

	assert.Equal(t, firstMarker, earliest[0].MarkedBy)
	assert.Equal(t, t0, earliest[0].Timestamp)
	assert.Equal(t, secondMarker, latest[0].MarkedBy)
	assert.Equal(t, t0.Add(time.Hour), latest[0].Timestamp)

	// kebijakan marker tidak menyentuh isi records
	assert.Equal(t, earliest[0].Records, latest[0].Records)
}

func TestResolveMarkerPolicy(t *testing.T) {
	assert.Equal(t, MarkerEarliestWins, ResolveMarkerPolicy(""))
	assert.Equal(t, MarkerEarliestWins, ResolveMarkerPolicy("unknown"))
	assert.Equal(t, MarkerLatestWins, ResolveMarkerPolicy("latest_wins"))
}

func TestBuildRecordsDeterministicAndDefaultsSubject(t *testing.T) {
	schoolID := uuid.New()
	marker := uuid.New()
	date := mustDate(t, "2026-03-02")
	entries := []SaveEntry{
		{StudentProfileID: uuid.New(), Status: attendanceModel.StatusPresent},
		{StudentProfileID: uuid.New(), Status: attendanceModel.StatusAbsent},
	}

	first := BuildRecords(schoolID, date, "", marker, entries)
	second := BuildRecords(schoolID, date, "", marker, entries)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	for _, r := range first {
		assert.Equal(t, DefaultSubject, r.Subject)
		assert.Equal(t, schoolID, r.SchoolID)
		assert.Equal(t, marker, r.MarkedBy)
	}
}

func TestBuildRecordsEmptyEntries(t *testing.T) {
	records := BuildRecords(uuid.New(), mustDate(t, "2026-03-02"), "math", uuid.New(), nil)
	assert.Empty(t, records)
}
