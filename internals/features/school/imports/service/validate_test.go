package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func studentMapping() map[string]string {
	return map[string]string{
		"full_name": "Nama",
		"email":     "Email",
		"phone":     "HP",
		"class":     "Kelas",
		"section":   "Section",
	}
}

func studentRow(name, email, phone, class, section string) map[string]string {
	return map[string]string{
		"Nama":    name,
		"Email":   email,
		"HP":      phone,
		"Kelas":   class,
		"Section": section,
	}
}

func TestValidateMappingMissingRequiredField(t *testing.T) {
	mapping := studentMapping()
	delete(mapping, "email")

	errs := ValidateMapping(FieldSpecs(TypeStudents), mapping)

	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, ErrTypeMapping, errs[0].Type)
}

func TestValidateMappingOptionalFieldMayBeUnmapped(t *testing.T) {
	mapping := studentMapping()
	delete(mapping, "phone")

	assert.Empty(t, ValidateMapping(FieldSpecs(TypeStudents), mapping))
}

func TestValidateBlockedWhileMappingErrorExists(t *testing.T) {
	mapping := studentMapping()
	delete(mapping, "class")

	rows := []map[string]string{
		studentRow("Siti", "not-an-email", "08123456789", "10", "A"),
	}
	errs := Validate(TypeStudents, mapping, rows)

	// error mapping + error baris untuk field yang masih terpetakan
	types := map[string]bool{}
	for _, e := range errs {
		types[e.Type] = true
	}
	assert.True(t, types[ErrTypeMapping])
	assert.True(t, types[ErrTypeFormat])
}

func TestValidateRowsEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"siti@example.com", true},
		{"s@x.co", true},
		{"not-an-email", false},
		{"missing@domain", false},
		{"@nouser.com", false},
		{"spaces in@mail.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			rows := []map[string]string{
				studentRow("Siti", tt.email, "08123456789", "10", "A"),
			}
			errs := ValidateRows(FieldSpecs(TypeStudents), studentMapping(), rows)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Len(t, errs, 1)
				assert.Equal(t, "email", errs[0].Field)
				assert.Equal(t, ErrTypeFormat, errs[0].Type)
			}
		})
	}
}

func TestValidateRowsPhoneFormat(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"eight digits fails", "12345678", false},
		{"ten digits passes", "0812345678", true},
		{"formatted US number passes", "(555) 123-4567", true},
		{"empty optional passes", "", true},
		{"letters only fails", "tidak-ada", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []map[string]string{
				studentRow("Siti", "siti@example.com", tt.phone, "10", "A"),
			}
			errs := ValidateRows(FieldSpecs(TypeStudents), studentMapping(), rows)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Len(t, errs, 1)
				assert.Equal(t, "phone", errs[0].Field)
			}
		})
	}
}

func TestValidateRowsRequiredEmpty(t *testing.T) {
	rows := []map[string]string{
		studentRow("", "siti@example.com", "", "10", "A"),
	}
	errs := ValidateRows(FieldSpecs(TypeStudents), studentMapping(), rows)

	assert.Len(t, errs, 1)
	assert.Equal(t, "full_name", errs[0].Field)
	assert.Equal(t, ErrTypeRequired, errs[0].Type)
}

func TestValidateRowsRowNumberOffset(t *testing.T) {
	rows := []map[string]string{
		studentRow("Siti", "siti@example.com", "", "10", "A"), // baris 2
		studentRow("", "budi@example.com", "", "10", "A"),     // baris 3
		studentRow("Andi", "bad-email", "", "10", "A"),        // baris 4
	}
	errs := ValidateRows(FieldSpecs(TypeStudents), studentMapping(), rows)

	assert.Len(t, errs, 2)
	assert.Equal(t, 3, errs[0].Row)
	assert.Equal(t, 4, errs[1].Row)
}

func TestValidateAcademicType(t *testing.T) {
	mapping := map[string]string{
		"student_email": "Email",
		"subject":       "Mapel",
		"term":          "Semester",
		"marks":         "Nilai",
	}
	rows := []map[string]string{
		{"Email": "siti@example.com", "Mapel": "Matematika", "Semester": "Ganjil", "Nilai": "88"},
	}
	assert.Empty(t, Validate(TypeAcademic, mapping, rows))
}

func TestFieldSpecsUnknownType(t *testing.T) {
	assert.Nil(t, FieldSpecs("payroll"))
	assert.False(t, ValidImportType("payroll"))
}
