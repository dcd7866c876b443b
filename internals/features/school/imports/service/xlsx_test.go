package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestParseWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	assert.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Nama", "Email", "Kelas"}))
	assert.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Siti", "siti@example.com", "10"}))
	assert.NoError(t, f.SetSheetRow(sheet, "A3", &[]string{"Budi", "budi@example.com"})) // sel terakhir kosong

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	headers, rows, err := ParseWorkbook(buf)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Nama", "Email", "Kelas"}, headers)
	assert.Len(t, rows, 2)
	assert.Equal(t, "siti@example.com", rows[0]["Email"])
	assert.Equal(t, "", rows[1]["Kelas"]) // sel yang hilang jadi string kosong
}

func TestTemplateWorkbookHeaders(t *testing.T) {
	f, err := TemplateWorkbook(TypeStudents)
	assert.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Nama Lengkap *", rows[0][0])
	assert.Equal(t, "No. HP", rows[0][2]) // opsional tanpa tanda bintang
}

func TestTemplateWorkbookUnknownType(t *testing.T) {
	_, err := TemplateWorkbook("payroll")
	assert.Error(t, err)
}
