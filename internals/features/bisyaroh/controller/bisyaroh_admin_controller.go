package controller

import (
	"errors"

	absensi "alhikam_backend/internals/features/absensi/model"
	absensisvc "alhikam_backend/internals/features/absensi/service"
	"alhikam_backend/internals/features/bisyaroh/dto"
	"alhikam_backend/internals/features/bisyaroh/model"
	"alhikam_backend/internals/features/bisyaroh/service"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	helper "alhikam_backend/internals/helpers"
	helperAuth "alhikam_backend/internals/helpers/auth"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// BisyarohAdminController = settings tarif, generate, daftar slip, riwayat.
type BisyarohAdminController struct {
	DB         *gorm.DB
	Calculator *service.Calculator
	Summarizer *service.Summarizer
}

func NewBisyarohAdminController(db *gorm.DB) *BisyarohAdminController {
	return &BisyarohAdminController{
		DB:         db,
		Calculator: service.NewCalculator(db),
		Summarizer: service.NewSummarizer(db),
	}
}

// GetSettings semua setting tarif, urut kategori + sort_order.
// GET /api/a/bisyaroh/settings
func (ctl *BisyarohAdminController) GetSettings(c *fiber.Ctx) error {
	var rows []model.BisyarohSettingModel
	if err := ctl.DB.Order("bisyaroh_setting_category, bisyaroh_setting_sort_order").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}
	return helper.Success(c, "Settings bisyaroh", rows)
}

// UpdateSetting ubah nilai satu tarif. Slip periode berjalan TIDAK otomatis
// berubah — admin generate ulang setelah selesai mengubah tarif.
// PUT /api/a/bisyaroh/settings/:key
func (ctl *BisyarohAdminController) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var req dto.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var setting model.BisyarohSettingModel
	err := ctl.DB.Where("bisyaroh_setting_key = ?", key).Take(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Setting tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil setting")
	}

	if err := ctl.DB.Model(&setting).
		Update("bisyaroh_setting_value", req.Value).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan setting")
	}
	return helper.Success(c, "Setting diperbarui", setting)
}

// Generate hitung ulang slip satu periode untuk semua guru aktif.
// POST /api/a/bisyaroh/generate
func (ctl *BisyarohAdminController) Generate(c *fiber.Ctx) error {
	var req dto.PeriodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Calculator.Generate(req.Bulan, req.Tahun)
	if err != nil {
		return helper.Error(c, absensisvc.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Bisyaroh periode "+service.LabelPeriode(req.Bulan, req.Tahun)+" digenerate", res)
}

// GetSlips daftar slip satu periode (halaman rekap admin).
// GET /api/a/bisyaroh?bulan=&tahun=
func (ctl *BisyarohAdminController) GetSlips(c *fiber.Ctx) error {
	bulan, tahun := periodeQuery(c)
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	q := ctl.DB.Model(&model.BisyarohModel{}).
		Where("bisyaroh_bulan = ? AND bisyaroh_tahun = ?", bulan, tahun)
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil slip")
	}

	var slips []model.BisyarohModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).
		Find(&slips).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil slip")
	}

	return helper.Success(c, "Daftar slip bisyaroh", fiber.Map{
		"periode":    service.LabelPeriode(bulan, tahun),
		"slips":      slips,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(slips)),
	})
}

// GetSlipDetail satu slip lengkap dengan data guru.
// GET /api/a/bisyaroh/:bisyaroh_id
func (ctl *BisyarohAdminController) GetSlipDetail(c *fiber.Ctx) error {
	slipID, err := uuid.Parse(c.Params("bisyaroh_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "bisyaroh_id tidak valid")
	}

	var slip model.BisyarohModel
	err = ctl.DB.Where("bisyaroh_id = ?", slipID).Take(&slip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Slip tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil slip")
	}

	var guru sekolah.GuruModel
	if err := ctl.DB.Where("guru_id = ?", slip.BisyarohGuruID).Take(&guru).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	return helper.Success(c, "Detail slip bisyaroh", fiber.Map{
		"periode": service.LabelPeriode(slip.BisyarohBulan, slip.BisyarohTahun),
		"guru":    guru,
		"slip":    slip,
	})
}

// DeleteSlips hapus seluruh slip satu periode (sebelum generate ulang dari nol).
// Periode yang riwayatnya terkunci tidak boleh dihapus.
// DELETE /api/a/bisyaroh?bulan=&tahun=
func (ctl *BisyarohAdminController) DeleteSlips(c *fiber.Ctx) error {
	bulan, tahun := periodeQuery(c)

	var hist model.BisyarohHistoryModel
	err := ctl.DB.Where("bisyaroh_history_bulan = ? AND bisyaroh_history_tahun = ? AND bisyaroh_history_status = ?",
		bulan, tahun, "locked").Take(&hist).Error
	if err == nil {
		return helper.Error(c, fiber.StatusLocked,
			"Riwayat periode "+service.LabelPeriode(bulan, tahun)+" terkunci, slip tidak bisa dihapus")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa riwayat")
	}

	res := ctl.DB.Where("bisyaroh_bulan = ? AND bisyaroh_tahun = ?", bulan, tahun).
		Delete(&model.BisyarohModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus slip")
	}

	return helper.Success(c, "Slip periode "+service.LabelPeriode(bulan, tahun)+" dihapus", fiber.Map{
		"deleted": res.RowsAffected,
	})
}

// GetGuruSummary rekap kehadiran bulanan satu guru (layar admin).
// GET /api/a/guru/:guru_id/summary?bulan=&tahun=
func (ctl *BisyarohAdminController) GetGuruSummary(c *fiber.Ctx) error {
	guruID, err := uuid.Parse(c.Params("guru_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "guru_id tidak valid")
	}
	bulan, tahun := periodeQuery(c)

	var guru sekolah.GuruModel
	err = ctl.DB.Where("guru_id = ?", guruID).Take(&guru).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	sum, err := ctl.Summarizer.Summarize(guruID, bulan, tahun)
	if err != nil {
		return helper.Error(c, absensisvc.HTTPStatus(err), err.Error())
	}

	return helper.Success(c, "Rekap kehadiran guru", fiber.Map{
		"guru":    guru,
		"periode": service.LabelPeriode(bulan, tahun),
		"rekap":   sum,
	})
}

// GetKegiatanBulan daftar kegiatan satu bulan beserta status absensinya
// (audit sumber tunjangan kegiatan sebelum generate).
// GET /api/a/bisyaroh/kegiatan-bulan?bulan=&tahun=
func (ctl *BisyarohAdminController) GetKegiatanBulan(c *fiber.Ctx) error {
	bulan, tahun := periodeQuery(c)
	awal, akhir := dbtime.MonthRange(tahun, bulan)

	var kegiatan []sekolah.KegiatanModel
	if err := ctl.DB.Where("kegiatan_waktu_mulai >= ? AND kegiatan_waktu_mulai < ?", awal, akhir).
		Order("kegiatan_waktu_mulai").
		Find(&kegiatan).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}

	ids := make([]uuid.UUID, 0, len(kegiatan))
	for i := range kegiatan {
		ids = append(ids, kegiatan[i].KegiatanID)
	}
	recordByKegiatan := map[uuid.UUID]absensi.AbsensiKegiatanModel{}
	if len(ids) > 0 {
		var records []absensi.AbsensiKegiatanModel
		if err := ctl.DB.Where("absensi_kegiatan_kegiatan_id IN ?", ids).
			Find(&records).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi kegiatan")
		}
		for i := range records {
			recordByKegiatan[records[i].AbsensiKegiatanKegiatanID] = records[i]
		}
	}

	items := make([]fiber.Map, 0, len(kegiatan))
	for i := range kegiatan {
		k := &kegiatan[i]
		item := fiber.Map{
			"kegiatan":    k,
			"sudah_absen": false,
		}
		if rec, ok := recordByKegiatan[k.KegiatanID]; ok {
			item["sudah_absen"] = true
			item["absensi"] = rec
		}
		items = append(items, item)
	}

	return helper.Success(c, "Kegiatan bulan "+service.LabelPeriode(bulan, tahun), fiber.Map{
		"periode":  service.LabelPeriode(bulan, tahun),
		"kegiatan": items,
	})
}

// GetRapatBulan daftar rapat satu bulan beserta status absensinya.
// GET /api/a/bisyaroh/rapat-bulan?bulan=&tahun=
func (ctl *BisyarohAdminController) GetRapatBulan(c *fiber.Ctx) error {
	bulan, tahun := periodeQuery(c)
	awal, akhir := dbtime.MonthRange(tahun, bulan)

	var rapat []sekolah.RapatModel
	if err := ctl.DB.Where("rapat_tanggal >= ? AND rapat_tanggal < ?", awal, akhir).
		Order("rapat_tanggal, rapat_waktu_mulai").
		Find(&rapat).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil rapat")
	}

	ids := make([]uuid.UUID, 0, len(rapat))
	for i := range rapat {
		ids = append(ids, rapat[i].RapatID)
	}
	recordByRapat := map[uuid.UUID]absensi.AbsensiRapatModel{}
	if len(ids) > 0 {
		var records []absensi.AbsensiRapatModel
		if err := ctl.DB.Where("absensi_rapat_rapat_id IN ?", ids).
			Find(&records).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi rapat")
		}
		for i := range records {
			recordByRapat[records[i].AbsensiRapatRapatID] = records[i]
		}
	}

	items := make([]fiber.Map, 0, len(rapat))
	for i := range rapat {
		r := &rapat[i]
		item := fiber.Map{
			"rapat":       r,
			"sudah_absen": false,
		}
		if rec, ok := recordByRapat[r.RapatID]; ok {
			item["sudah_absen"] = true
			item["absensi"] = rec
		}
		items = append(items, item)
	}

	return helper.Success(c, "Rapat bulan "+service.LabelPeriode(bulan, tahun), fiber.Map{
		"periode": service.LabelPeriode(bulan, tahun),
		"rapat":   items,
	})
}

// SaveHistory arsipkan slip periode ke riwayat.
// POST /api/a/bisyaroh/history
func (ctl *BisyarohAdminController) SaveHistory(c *fiber.Ctx) error {
	var req dto.SaveHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, _ := helperAuth.GetUserIDFromToken(c)
	var createdBy *uuid.UUID
	if userID != uuid.Nil {
		createdBy = &userID
	}

	hist, err := ctl.Calculator.SaveSnapshot(req.Bulan, req.Tahun, createdBy)
	if err != nil {
		return helper.Error(c, absensisvc.HTTPStatus(err), err.Error())
	}
	if req.Notes != nil {
		if err := ctl.DB.Model(hist).
			Update("bisyaroh_history_notes", req.Notes).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan catatan")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Riwayat bisyaroh tersimpan", hist)
}

// GetHistory daftar riwayat, terbaru dulu.
// GET /api/a/bisyaroh/history
func (ctl *BisyarohAdminController) GetHistory(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 24, 120)

	var total int64
	if err := ctl.DB.Model(&model.BisyarohHistoryModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	var rows []model.BisyarohHistoryModel
	if err := ctl.DB.Order("bisyaroh_history_tahun DESC, bisyaroh_history_bulan DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.Success(c, "Riwayat bisyaroh", fiber.Map{
		"history":    rows,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(rows)),
	})
}

// ShowHistory satu riwayat lengkap dengan data snapshot per guru.
// GET /api/a/bisyaroh/history/:history_id
func (ctl *BisyarohAdminController) ShowHistory(c *fiber.Ctx) error {
	historyID, err := uuid.Parse(c.Params("history_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "history_id tidak valid")
	}

	var hist model.BisyarohHistoryModel
	err = ctl.DB.Where("bisyaroh_history_id = ?", historyID).Take(&hist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	return helper.Success(c, "Detail riwayat bisyaroh", hist)
}

// DeleteHistory hapus satu riwayat. Riwayat terkunci harus dibuka dulu.
// DELETE /api/a/bisyaroh/history/:history_id
func (ctl *BisyarohAdminController) DeleteHistory(c *fiber.Ctx) error {
	historyID, err := uuid.Parse(c.Params("history_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "history_id tidak valid")
	}

	var hist model.BisyarohHistoryModel
	err = ctl.DB.Where("bisyaroh_history_id = ?", historyID).Take(&hist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	if hist.BisyarohHistoryStatus == "locked" {
		return helper.Error(c, fiber.StatusLocked, "Riwayat terkunci, buka kunci dulu sebelum menghapus")
	}

	if err := ctl.DB.Delete(&hist).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus riwayat")
	}
	return helper.Success(c, "Riwayat dihapus", fiber.Map{
		"bisyaroh_history_id": historyID,
	})
}

// LockHistory kunci satu riwayat (arsip final).
// POST /api/a/bisyaroh/history/:history_id/lock
func (ctl *BisyarohAdminController) LockHistory(c *fiber.Ctx) error {
	return ctl.setLock(c, true)
}

// UnlockHistory buka kunci riwayat.
// POST /api/a/bisyaroh/history/:history_id/unlock
func (ctl *BisyarohAdminController) UnlockHistory(c *fiber.Ctx) error {
	return ctl.setLock(c, false)
}

func (ctl *BisyarohAdminController) setLock(c *fiber.Ctx, lock bool) error {
	historyID, err := uuid.Parse(c.Params("history_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "history_id tidak valid")
	}

	userID, _ := helperAuth.GetUserIDFromToken(c)
	var by *uuid.UUID
	if userID != uuid.Nil {
		by = &userID
	}

	var hist *model.BisyarohHistoryModel
	if lock {
		hist, err = ctl.Calculator.LockSnapshot(historyID, by)
	} else {
		hist, err = ctl.Calculator.UnlockSnapshot(historyID, by)
	}
	if err != nil {
		return helper.Error(c, absensisvc.HTTPStatus(err), err.Error())
	}

	msg := "Riwayat dikunci"
	if !lock {
		msg = "Kunci riwayat dibuka"
	}
	return helper.Success(c, msg, hist)
}
