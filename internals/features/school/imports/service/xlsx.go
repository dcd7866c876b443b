// internals/features/school/imports/service/xlsx.go
package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook membaca sheet pertama: baris pertama jadi header,
// sisanya jadi []map[header]value.
func ParseWorkbook(r io.Reader) (headers []string, rows []map[string]string, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("file xlsx tidak bisa dibaca: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook tidak punya sheet")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("gagal membaca sheet: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("sheet kosong")
	}

	for _, h := range raw[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	rows = make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// TemplateWorkbook membuat workbook kosong dengan header sesuai
// spesifikasi kolom tipe import.
func TemplateWorkbook(importType string) (*excelize.File, error) {
	specs := FieldSpecs(importType)
	if specs == nil {
		return nil, fmt.Errorf("tipe import %q tidak dikenal", importType)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, spec := range specs {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		label := spec.Label
		if spec.Required {
			label += " *"
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
