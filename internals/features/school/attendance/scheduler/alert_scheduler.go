// internals/features/school/attendance/scheduler/alert_scheduler.go
package scheduler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"schoolku_backend/internals/databases"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/attendance/service"
	studentModel "schoolku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const snapshotTTL = 48 * time.Hour

// StartAbsenteeAlertScheduler memarkir snapshot peringatan absensi per
// sekolah ke redis, sekali sehari. Snapshot dipakai sebagai fallback
// oleh endpoint alerts.
func StartAbsenteeAlertScheduler(db *gorm.DB) {
	go func() {
		log.Println("[SCHEDULER] Absentee alert scheduler aktif (interval 24 jam)")
		for {
			runAlertSnapshot(db)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func runAlertSnapshot(db *gorm.DB) {
	today := time.Now()
	windowStart := today.AddDate(0, 0, -service.AlertWindowDays)

	var schoolIDs []uuid.UUID
	if err := db.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_date >= ?", windowStart.Format("2006-01-02")).
		Distinct("school_id").
		Pluck("school_id", &schoolIDs).Error; err != nil {
		log.Printf("[SCHEDULER] Gagal mengambil daftar sekolah: %v", err)
		return
	}

	for _, schoolID := range schoolIDs {
		var rows []attendanceModel.AttendanceRecordModel
		if err := db.
			Where("school_id = ? AND attendance_date >= ?", schoolID, windowStart.Format("2006-01-02")).
			Find(&rows).Error; err != nil {
			log.Printf("[SCHEDULER] Gagal mengambil absensi sekolah %s: %v", schoolID, err)
			continue
		}

		var profiles []studentModel.StudentProfileModel
		if err := db.Where("school_id = ?", schoolID).Find(&profiles).Error; err != nil {
			log.Printf("[SCHEDULER] Gagal mengambil profil sekolah %s: %v", schoolID, err)
			continue
		}
		lookup := make(map[uuid.UUID]studentModel.StudentProfileModel, len(profiles))
		for _, p := range profiles {
			lookup[p.ID] = p
		}

		sessions := service.BuildSessions(rows, lookup, service.MarkerEarliestWins)
		snap := service.AlertSnapshot{
			Alerts:      service.AbsenteeAlerts(sessions, today),
			GeneratedAt: today,
		}

		payload, err := json.Marshal(snap)
		if err != nil {
			log.Printf("[SCHEDULER] Gagal marshal snapshot sekolah %s: %v", schoolID, err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := database.Redis.Set(ctx, service.AlertSnapshotKey(schoolID), payload, snapshotTTL).Err(); err != nil {
			log.Printf("[SCHEDULER] Gagal menyimpan snapshot sekolah %s: %v", schoolID, err)
		}
		cancel()
	}

	log.Printf("[SCHEDULER] Snapshot peringatan absensi selesai untuk %d sekolah", len(schoolIDs))
}
