// internals/features/school/imports/service/commit.go
package service

import (
	"fmt"
	"strings"

	"schoolku_backend/internals/constants"
	importModel "schoolku_backend/internals/features/school/imports/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const commitBatchSize = 100

// Commit menulis baris import yang sudah lolos validasi ke database
// dalam satu transaksi. Error apa pun membatalkan seluruh batch.
func Commit(db *gorm.DB, importType string, schoolID uuid.UUID, mapping map[string]string, rows []map[string]string) (int, error) {
	if errs := Validate(importType, mapping, rows); len(errs) > 0 {
		return 0, fmt.Errorf("masih ada %d error validasi", len(errs))
	}

	value := func(row map[string]string, key string) string {
		return strings.TrimSpace(row[mapping[key]])
	}

	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		switch importType {
		case TypeStudents:
			users := make([]userModel.UserModel, 0, len(rows))
			for _, row := range rows {
				hashed, err := authService.HashPassword(uuid.NewString())
				if err != nil {
					return err
				}
				users = append(users, userModel.UserModel{
					FullName: value(row, "full_name"),
					Email:    strings.ToLower(value(row, "email")),
					Password: hashed,
					Role:     constants.RoleStudent,
					SchoolID: &schoolID,
					IsActive: true,
				})
			}
			if len(users) > 0 {
				if err := tx.CreateInBatches(&users, commitBatchSize).Error; err != nil {
					return err
				}
				profiles := make([]studentModel.StudentProfileModel, 0, len(users))
				for i, u := range users {
					profiles = append(profiles, studentModel.StudentProfileModel{
						UserID:   u.ID,
						SchoolID: schoolID,
						Class:    value(rows[i], "class"),
						Section:  value(rows[i], "section"),
					})
				}
				if err := tx.CreateInBatches(&profiles, commitBatchSize).Error; err != nil {
					return err
				}
			}
			inserted = len(users)

		case TypeFaculty:
			users := make([]userModel.UserModel, 0, len(rows))
			for _, row := range rows {
				hashed, err := authService.HashPassword(uuid.NewString())
				if err != nil {
					return err
				}
				users = append(users, userModel.UserModel{
					FullName: value(row, "full_name"),
					Email:    strings.ToLower(value(row, "email")),
					Password: hashed,
					Role:     constants.RoleFaculty,
					SchoolID: &schoolID,
					IsActive: true,
				})
			}
			if len(users) > 0 {
				if err := tx.CreateInBatches(&users, commitBatchSize).Error; err != nil {
					return err
				}
			}
			inserted = len(users)

		case TypeAcademic:
			records := make([]importModel.AcademicRecordModel, 0, len(rows))
			for _, row := range rows {
				records = append(records, importModel.AcademicRecordModel{
					SchoolID:     schoolID,
					StudentEmail: strings.ToLower(value(row, "student_email")),
					Subject:      value(row, "subject"),
					Term:         value(row, "term"),
					Marks:        value(row, "marks"),
				})
			}
			if len(records) > 0 {
				if err := tx.CreateInBatches(&records, commitBatchSize).Error; err != nil {
					return err
				}
			}
			inserted = len(records)

		default:
			return fmt.Errorf("tipe import %q tidak dikenal", importType)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
