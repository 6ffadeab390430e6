package controller

import (
	"errors"

	"alhikam_backend/internals/features/bisyaroh/model"
	"alhikam_backend/internals/features/bisyaroh/service"
	helper "alhikam_backend/internals/helpers"
	helperAuth "alhikam_backend/internals/helpers/auth"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BisyarohGuruController = slip + rekap kehadiran untuk guru login.
type BisyarohGuruController struct {
	DB         *gorm.DB
	Summarizer *service.Summarizer
}

func NewBisyarohGuruController(db *gorm.DB) *BisyarohGuruController {
	return &BisyarohGuruController{DB: db, Summarizer: service.NewSummarizer(db)}
}

// GetSlip slip bisyaroh guru login satu periode.
// GET /api/u/bisyaroh?bulan=&tahun=
func (ctl *BisyarohGuruController) GetSlip(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bulan, tahun := periodeQuery(c)

	var slip model.BisyarohModel
	err = ctl.DB.Where("bisyaroh_guru_id = ? AND bisyaroh_bulan = ? AND bisyaroh_tahun = ?",
		guruID, bulan, tahun).Take(&slip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound,
			"Slip bisyaroh periode "+service.LabelPeriode(bulan, tahun)+" belum digenerate")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil slip")
	}

	return helper.Success(c, "Slip bisyaroh", fiber.Map{
		"periode": service.LabelPeriode(bulan, tahun),
		"slip":    slip,
	})
}

// GetRekap rekap kehadiran guru login (tiga sumber) satu periode.
// GET /api/u/bisyaroh/rekap?bulan=&tahun=
func (ctl *BisyarohGuruController) GetRekap(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bulan, tahun := periodeQuery(c)

	sum, err := ctl.Summarizer.Summarize(guruID, bulan, tahun)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung rekap")
	}
	return helper.Success(c, "Rekap kehadiran", sum)
}

func periodeQuery(c *fiber.Ctx) (bulan, tahun int) {
	now := dbtime.Now()
	bulan = c.QueryInt("bulan", int(now.Month()))
	tahun = c.QueryInt("tahun", now.Year())
	if bulan < 1 || bulan > 12 {
		bulan = int(now.Month())
	}
	return bulan, tahun
}
