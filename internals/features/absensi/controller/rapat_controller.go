package controller

import (
	"errors"

	"alhikam_backend/internals/features/absensi/dto"
	"alhikam_backend/internals/features/absensi/model"
	"alhikam_backend/internals/features/absensi/service"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	helper "alhikam_backend/internals/helpers"
	helperAuth "alhikam_backend/internals/helpers/auth"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RapatController = endpoint absensi rapat (batch sekretaris/pimpinan +
// absen mandiri peserta).
type RapatController struct {
	DB    *gorm.DB
	Store *service.Store
}

func NewRapatController(db *gorm.DB) *RapatController {
	return &RapatController{DB: db, Store: service.NewStore(db)}
}

// GetList rapat yang melibatkan guru login di satu bulan.
// GET /api/u/rapat?bulan=&tahun=
func (ctl *RapatController) GetList(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bulan, tahun := parsePeriodeQuery(c)
	start, end := dbtime.MonthRange(tahun, bulan)

	var rapat []sekolah.RapatModel
	if err := ctl.DB.Where("rapat_tanggal >= ? AND rapat_tanggal < ?", start, end).
		Order("rapat_tanggal").
		Find(&rapat).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil rapat")
	}

	now := dbtime.Now()
	type item struct {
		Rapat  *sekolah.RapatModel `json:"rapat"`
		Peran  string              `json:"peran"` // pimpinan | sekretaris | peserta
		Status string              `json:"status"`
	}
	out := make([]item, 0)
	for i := range rapat {
		r := &rapat[i]
		peran := ""
		switch {
		case r.IsPimpinan(guruID):
			peran = "pimpinan"
		case r.IsSekretaris(guruID):
			peran = "sekretaris"
		case r.IsPeserta(guruID):
			peran = "peserta"
		default:
			continue
		}

		_, hasRecord, err := ctl.loadAbsensi(r.RapatID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi rapat")
		}
		tanggal := dbtime.StartOfDay(r.RapatTanggal)
		status, serr := service.ResolveSesi(tanggal, r.RapatWaktuMulai, r.RapatWaktuSelesai, hasRecord, now)
		if serr != nil {
			status = model.SesiBelumMulai
		}
		out = append(out, item{Rapat: r, Peran: peran, Status: status.Legacy()})
	}
	return helper.Success(c, "Daftar rapat", out)
}

// GetDetail rapat + absensinya.
// GET /api/u/rapat/:rapat_id/absensi
func (ctl *RapatController) GetDetail(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rapatID, err := uuid.Parse(c.Params("rapat_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "rapat_id tidak valid")
	}

	var rapat sekolah.RapatModel
	err = ctl.DB.Where("rapat_id = ?", rapatID).Take(&rapat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Rapat tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil rapat")
	}
	if !rapat.IsPimpinan(guruID) && !rapat.IsSekretaris(guruID) && !rapat.IsPeserta(guruID) {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak terdaftar di rapat ini")
	}

	rec, hasRecord, err := ctl.loadAbsensi(rapatID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi rapat")
	}
	tanggal := dbtime.StartOfDay(rapat.RapatTanggal)
	status, serr := service.ResolveSesi(tanggal, rapat.RapatWaktuMulai, rapat.RapatWaktuSelesai,
		hasRecord, dbtime.Now())
	if serr != nil {
		return helper.Error(c, service.HTTPStatus(serr), serr.Error())
	}

	return helper.Success(c, "Detail rapat", fiber.Map{
		"rapat":         rapat,
		"status":        status.Legacy(),
		"absensi":       rec,
		"is_pimpinan":   rapat.IsPimpinan(guruID),
		"is_sekretaris": rapat.IsSekretaris(guruID),
	})
}

// Submit batch oleh sekretaris/pimpinan.
// POST /api/u/rapat/:rapat_id/absensi
func (ctl *RapatController) Submit(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rapatID, err := uuid.Parse(c.Params("rapat_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "rapat_id tidak valid")
	}

	var req dto.SubmitRapatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in := service.RapatSubmit{
		GuruID:               guruID,
		RapatID:              rapatID,
		PimpinanStatus:       model.Kehadiran(req.PimpinanStatus),
		PimpinanKeterangan:   req.PimpinanKeterangan,
		SekretarisStatus:     model.Kehadiran(req.SekretarisStatus),
		SekretarisKeterangan: req.SekretarisKeterangan,
		Notulensi:            req.Notulensi,
		Foto:                 helper.CompressBase64Multiple(req.Foto),
	}
	for _, p := range req.Peserta {
		id, err := uuid.Parse(p.GuruID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "guru_id peserta tidak valid")
		}
		in.Peserta = append(in.Peserta, service.PesertaEntri{
			GuruID:     id,
			Status:     model.Kehadiran(p.Status),
			Keterangan: p.Keterangan,
		})
	}

	row, err := ctl.Store.SubmitRapat(in)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Absensi rapat tersimpan", row)
}

// SubmitMandiri peserta/pimpinan absen dirinya sendiri.
// POST /api/u/rapat/:rapat_id/absensi-mandiri
func (ctl *RapatController) SubmitMandiri(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rapatID, err := uuid.Parse(c.Params("rapat_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "rapat_id tidak valid")
	}

	var req dto.AbsenMandiriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Store.SubmitRapatMandiri(guruID, rapatID,
		model.Kehadiran(req.Status), req.Keterangan)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Absensi mandiri tersimpan", row)
}

func (ctl *RapatController) loadAbsensi(rapatID uuid.UUID) (*model.AbsensiRapatModel, bool, error) {
	var a model.AbsensiRapatModel
	err := ctl.DB.Where("absensi_rapat_rapat_id = ?", rapatID).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &a, true, nil
}
