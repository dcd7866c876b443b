// internals/features/school/imports/service/validate.go
package service

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	ErrTypeMapping  = "mapping"
	ErrTypeRequired = "required"
	ErrTypeFormat   = "format"
)

// ValidationError: Row 0 untuk error mapping; untuk error baris,
// Row = index slice + 2 (baris header + penomoran mulai 1).
type ValidationError struct {
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateMapping memeriksa setiap kolom wajib sudah dipetakan
// ke kolom spreadsheet. Satu error per field yang hilang.
func ValidateMapping(specs []FieldSpec, mapping map[string]string) []ValidationError {
	errs := make([]ValidationError, 0)
	for _, spec := range specs {
		if !spec.Required {
			continue
		}
		if strings.TrimSpace(mapping[spec.Key]) == "" {
			errs = append(errs, ValidationError{
				Field:   spec.Key,
				Type:    ErrTypeMapping,
				Message: fmt.Sprintf("Kolom wajib %q belum dipetakan", spec.Label),
			})
		}
	}
	return errs
}

// ValidateRows memeriksa isi baris untuk field yang sudah terpetakan.
// Field wajib yang mapping-nya hilang dilaporkan oleh ValidateMapping,
// bukan di sini.
func ValidateRows(specs []FieldSpec, mapping map[string]string, rows []map[string]string) []ValidationError {
	errs := make([]ValidationError, 0)
	for i, row := range rows {
		rowNum := i + 2
		for _, spec := range specs {
			column := mapping[spec.Key]
			if column == "" {
				continue
			}
			value := strings.TrimSpace(row[column])

			if value == "" {
				if spec.Required {
					errs = append(errs, ValidationError{
						Row:     rowNum,
						Field:   spec.Key,
						Type:    ErrTypeRequired,
						Message: fmt.Sprintf("Baris %d: %s tidak boleh kosong", rowNum, spec.Label),
					})
				}
				continue
			}

			switch {
			case isEmailField(spec.Key):
				if !emailPattern.MatchString(value) {
					errs = append(errs, ValidationError{
						Row:     rowNum,
						Field:   spec.Key,
						Type:    ErrTypeFormat,
						Message: fmt.Sprintf("Baris %d: %s bukan email yang valid", rowNum, spec.Label),
					})
				}
			case spec.Key == "phone":
				if countDigits(value) < 10 {
					errs = append(errs, ValidationError{
						Row:     rowNum,
						Field:   spec.Key,
						Type:    ErrTypeFormat,
						Message: fmt.Sprintf("Baris %d: %s minimal 10 digit", rowNum, spec.Label),
					})
				}
			}
		}
	}
	return errs
}

// Validate menggabungkan pemeriksaan mapping + baris. Import diblokir
// selama masih ada error apa pun.
func Validate(importType string, mapping map[string]string, rows []map[string]string) []ValidationError {
	specs := FieldSpecs(importType)
	errs := ValidateMapping(specs, mapping)
	errs = append(errs, ValidateRows(specs, mapping, rows)...)
	return errs
}

func isEmailField(key string) bool {
	return key == "email" || key == "student_email"
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
