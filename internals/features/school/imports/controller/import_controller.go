// internals/features/school/imports/controller/import_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"schoolku_backend/internals/features/school/imports/service"
	helper "schoolku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

/* ===================== FIELDS & TEMPLATE ===================== */

// 🟢 GET /api/a/imports/fields?type=
func (ctrl *ImportController) GetImportFields(c *fiber.Ctx) error {
	importType := c.Query("type")
	specs := service.FieldSpecs(importType)
	if specs == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe import tidak dikenal")
	}
	return helper.JsonOK(c, "Daftar kolom import", fiber.Map{
		"type":   importType,
		"fields": specs,
	})
}

// 🟢 GET /api/a/imports/template?type=
// Unduh workbook kosong dengan header sesuai tipe import.
func (ctrl *ImportController) DownloadTemplate(c *fiber.Ctx) error {
	importType := c.Query("type")
	f, err := service.TemplateWorkbook(importType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe import tidak dikenal")
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="import-%s-template.xlsx"`, importType))
	return c.Send(buf.Bytes())
}

/* ===================== VALIDATE ===================== */

// 🟢 POST /api/a/imports/validate
// Multipart: file (xlsx), type, mapping (JSON systemField → kolom).
func (ctrl *ImportController) ValidateImport(c *fiber.Ctx) error {
	importType, mapping, rows, ok := ctrl.readImportRequest(c)
	if !ok {
		return nil
	}

	errs := service.Validate(importType, mapping, rows)
	return helper.JsonOK(c, "Hasil validasi import", fiber.Map{
		"type":       importType,
		"total_rows": len(rows),
		"valid":      len(errs) == 0,
		"errors":     errs,
	})
}

/* ===================== COMMIT ===================== */

// 🟢 POST /api/a/imports/commit
// Validasi ulang lalu tulis seluruh batch dalam satu transaksi.
func (ctrl *ImportController) CommitImport(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	importType, mapping, rows, ok := ctrl.readImportRequest(c)
	if !ok {
		return nil
	}

	if errs := service.Validate(importType, mapping, rows); len(errs) > 0 {
		fieldErrors := map[string][]string{}
		for _, e := range errs {
			fieldErrors[e.Field] = append(fieldErrors[e.Field], e.Message)
		}
		return helper.JsonValidationError(c, fieldErrors)
	}

	inserted, err := service.Commit(ctrl.DB, importType, schoolID, mapping, rows)
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Ada email yang sudah terdaftar, seluruh batch dibatalkan")
		}
		log.Printf("[ERROR] Commit import gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data import")
	}

	return helper.JsonCreated(c, "Import berhasil", fiber.Map{
		"type":     importType,
		"inserted": inserted,
	})
}

/* ===================== PARSING ===================== */

// readImportRequest membaca multipart form import. Kalau ok == false,
// response error sudah ditulis oleh fungsi ini.
func (ctrl *ImportController) readImportRequest(c *fiber.Ctx) (string, map[string]string, []map[string]string, bool) {
	importType := c.FormValue("type")
	if !service.ValidImportType(importType) {
		helper.JsonError(c, fiber.StatusBadRequest, "Tipe import tidak dikenal")
		return "", nil, nil, false
	}

	var mapping map[string]string
	if err := json.Unmarshal([]byte(c.FormValue("mapping")), &mapping); err != nil {
		helper.JsonError(c, fiber.StatusBadRequest, "Mapping kolom tidak valid")
		return "", nil, nil, false
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		helper.JsonError(c, fiber.StatusBadRequest, "File xlsx wajib diunggah")
		return "", nil, nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
		return "", nil, nil, false
	}
	defer file.Close()

	_, rows, err := service.ParseWorkbook(file)
	if err != nil {
		helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		return "", nil, nil, false
	}
	return importType, mapping, rows, true
}
