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

// KegiatanController = endpoint absensi kegiatan (PJ batch + pendamping mandiri).
type KegiatanController struct {
	DB    *gorm.DB
	Store *service.Store
}

func NewKegiatanController(db *gorm.DB) *KegiatanController {
	return &KegiatanController{DB: db, Store: service.NewStore(db)}
}

// GetList kegiatan yang melibatkan guru login (PJ atau pendamping) di satu
// bulan, beserta status sesi dan peran.
// GET /api/u/kegiatan?bulan=&tahun=
func (ctl *KegiatanController) GetList(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bulan, tahun := parsePeriodeQuery(c)
	start, end := dbtime.MonthRange(tahun, bulan)

	var kegiatan []sekolah.KegiatanModel
	if err := ctl.DB.Where("kegiatan_waktu_mulai >= ? AND kegiatan_waktu_mulai < ?", start, end).
		Order("kegiatan_waktu_mulai").
		Find(&kegiatan).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}

	now := dbtime.Now()
	type item struct {
		Kegiatan *sekolah.KegiatanModel `json:"kegiatan"`
		Peran    string                 `json:"peran"` // pj | pendamping
		Status   string                 `json:"status"`
	}
	out := make([]item, 0)
	for i := range kegiatan {
		k := &kegiatan[i]
		peran := ""
		switch {
		case k.IsPJ(guruID):
			peran = "pj"
		case k.IsPendamping(guruID):
			peran = "pendamping"
		default:
			continue
		}

		_, hasRecord, err := ctl.loadAbsensi(k.KegiatanID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi kegiatan")
		}
		status := service.ResolveSesiRange(k.KegiatanWaktuMulai, k.KegiatanWaktuBerakhir, hasRecord, now)
		out = append(out, item{Kegiatan: k, Peran: peran, Status: status.Legacy()})
	}
	return helper.Success(c, "Daftar kegiatan", out)
}

// GetDetail detail kegiatan + absensinya (kalau sudah ada).
// GET /api/u/kegiatan/:kegiatan_id/absensi
func (ctl *KegiatanController) GetDetail(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	kegiatanID, err := uuid.Parse(c.Params("kegiatan_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "kegiatan_id tidak valid")
	}

	var kegiatan sekolah.KegiatanModel
	err = ctl.DB.Where("kegiatan_id = ?", kegiatanID).Take(&kegiatan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}
	if !kegiatan.IsPJ(guruID) && !kegiatan.IsPendamping(guruID) {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak terlibat di kegiatan ini")
	}

	rec, hasRecord, err := ctl.loadAbsensi(kegiatanID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi kegiatan")
	}
	status := service.ResolveSesiRange(kegiatan.KegiatanWaktuMulai, kegiatan.KegiatanWaktuBerakhir,
		hasRecord, dbtime.Now())

	return helper.Success(c, "Detail kegiatan", fiber.Map{
		"kegiatan": kegiatan,
		"status":   status.Legacy(),
		"absensi":  rec,
		"is_pj":    kegiatan.IsPJ(guruID),
	})
}

// Submit batch oleh PJ: status PJ, pendamping, siswa peserta, berita acara,
// foto (dikompres webp sebelum disimpan).
// POST /api/u/kegiatan/:kegiatan_id/absensi
func (ctl *KegiatanController) Submit(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	kegiatanID, err := uuid.Parse(c.Params("kegiatan_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "kegiatan_id tidak valid")
	}

	var req dto.SubmitKegiatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in := service.KegiatanSubmit{
		GuruID:       guruID,
		KegiatanID:   kegiatanID,
		PJStatus:     model.Kehadiran(req.PJStatus),
		PJKeterangan: req.PJKeterangan,
		BeritaAcara:  req.BeritaAcara,
		Foto:         helper.CompressBase64Multiple(req.Foto),
	}
	for _, p := range req.Pendamping {
		id, err := uuid.Parse(p.GuruID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "guru_id pendamping tidak valid")
		}
		in.Pendamping = append(in.Pendamping, service.PendampingEntri{
			GuruID:     id,
			Status:     model.Kehadiran(p.Status),
			Keterangan: p.Keterangan,
		})
	}
	for _, sw := range req.Siswa {
		id, err := uuid.Parse(sw.SiswaID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "siswa_id tidak valid")
		}
		in.Siswa = append(in.Siswa, service.SiswaEntri{
			SiswaID:    id,
			Status:     model.Kehadiran(sw.Status),
			Keterangan: sw.Keterangan,
		})
	}

	row, err := ctl.Store.SubmitKegiatan(in)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Absensi kegiatan tersimpan", row)
}

// SubmitMandiri pendamping absen dirinya sendiri.
// POST /api/u/kegiatan/:kegiatan_id/absensi-mandiri
func (ctl *KegiatanController) SubmitMandiri(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	kegiatanID, err := uuid.Parse(c.Params("kegiatan_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "kegiatan_id tidak valid")
	}

	var req dto.AbsenMandiriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Store.SubmitKegiatanMandiri(guruID, kegiatanID,
		model.Kehadiran(req.Status), req.Keterangan)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Absensi mandiri tersimpan", row)
}

func (ctl *KegiatanController) loadAbsensi(kegiatanID uuid.UUID) (*model.AbsensiKegiatanModel, bool, error) {
	var a model.AbsensiKegiatanModel
	err := ctl.DB.Where("absensi_kegiatan_kegiatan_id = ?", kegiatanID).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &a, true, nil
}
