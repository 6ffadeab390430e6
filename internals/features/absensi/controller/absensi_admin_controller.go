package controller

import (
	"bytes"

	"alhikam_backend/internals/features/absensi/dto"
	"alhikam_backend/internals/features/absensi/service"
	settings "alhikam_backend/internals/features/settings/model"
	helper "alhikam_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AbsensiAdminController = endpoint admin: toggle unlock + import rekap.
type AbsensiAdminController struct {
	DB    *gorm.DB
	Store *service.Store
}

func NewAbsensiAdminController(db *gorm.DB) *AbsensiAdminController {
	return &AbsensiAdminController{DB: db, Store: service.NewStore(db)}
}

// GetUnlock status flag unlock global.
// GET /api/a/absensi/unlock
func (ctl *AbsensiAdminController) GetUnlock(c *fiber.Ctx) error {
	unlocked, err := settings.IsAttendanceUnlocked(ctl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca setting")
	}
	return helper.Success(c, "Status unlock absensi", fiber.Map{"unlocked": unlocked})
}

// SetUnlock toggle flag unlock global. Berlaku seketika untuk semua
// percobaan submit berikutnya (flag dibaca fresh per submit).
// PUT /api/a/absensi/unlock
func (ctl *AbsensiAdminController) SetUnlock(c *fiber.Ctx) error {
	var req dto.UnlockAbsensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	value := "false"
	if *req.Unlocked {
		value = "true"
	}
	if err := settings.SetValue(ctl.DB, settings.KeyUnlockAllAttendance, value, "boolean"); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan setting")
	}
	return helper.Success(c, "Unlock absensi diperbarui", fiber.Map{"unlocked": *req.Unlocked})
}

// ImportJSON import rekap absensi siswa dari body JSON.
// POST /api/a/absensi/import
func (ctl *AbsensiAdminController) ImportJSON(c *fiber.Ctx) error {
	var req dto.ImportAbsensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows := make([]service.ImportRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, service.ImportRow{
			Tanggal:    r.Tanggal,
			Nama:       r.Nama,
			Kelas:      r.Kelas,
			Status:     r.Status,
			Keterangan: r.Keterangan,
		})
	}

	res, err := ctl.Store.ImportAbsensiSiswa(rows)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Import absensi selesai", res)
}

// ImportXLSX import rekap dari file XLSX wali kelas (multipart "file").
// POST /api/a/absensi/import-xlsx
func (ctl *AbsensiAdminController) ImportXLSX(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File xlsx wajib dilampirkan (field: file)")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibaca")
	}

	rows, err := service.ParseXLSXAbsensi(buf)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}

	res, err := ctl.Store.ImportAbsensiSiswa(rows)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Import absensi selesai", res)
}
