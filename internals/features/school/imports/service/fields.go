// internals/features/school/imports/service/fields.go
package service

const (
	TypeStudents = "students"
	TypeFaculty  = "faculty"
	TypeAcademic = "academic"
)

func ValidImportType(s string) bool {
	return s == TypeStudents || s == TypeFaculty || s == TypeAcademic
}

// FieldSpec mendeskripsikan satu kolom sistem untuk import massal.
type FieldSpec struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

var studentFields = []FieldSpec{
	{Key: "full_name", Label: "Nama Lengkap", Required: true},
	{Key: "email", Label: "Email", Required: true},
	{Key: "phone", Label: "No. HP", Required: false},
	{Key: "class", Label: "Kelas", Required: true},
	{Key: "section", Label: "Section", Required: true},
}

var facultyFields = []FieldSpec{
	{Key: "full_name", Label: "Nama Lengkap", Required: true},
	{Key: "email", Label: "Email", Required: true},
	{Key: "phone", Label: "No. HP", Required: false},
	{Key: "subject", Label: "Mata Pelajaran", Required: false},
}

var academicFields = []FieldSpec{
	{Key: "student_email", Label: "Email Siswa", Required: true},
	{Key: "subject", Label: "Mata Pelajaran", Required: true},
	{Key: "term", Label: "Semester", Required: true},
	{Key: "marks", Label: "Nilai", Required: true},
}

// FieldSpecs mengembalikan daftar kolom sistem per tipe import.
func FieldSpecs(importType string) []FieldSpec {
	switch importType {
	case TypeStudents:
		return studentFields
	case TypeFaculty:
		return facultyFields
	case TypeAcademic:
		return academicFields
	}
	return nil
}
