package controller

import (
	"errors"
	"time"

	"alhikam_backend/internals/features/absensi/dto"
	"alhikam_backend/internals/features/absensi/model"
	"alhikam_backend/internals/features/absensi/service"
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

// AbsensiGuruController = endpoint absensi mengajar untuk guru login.
type AbsensiGuruController struct {
	DB    *gorm.DB
	Store *service.Store
}

func NewAbsensiGuruController(db *gorm.DB) *AbsensiGuruController {
	return &AbsensiGuruController{DB: db, Store: service.NewStore(db)}
}

// jadwalItem = satu slot jadwal + status sesi terhitung.
type jadwalItem struct {
	JadwalID   uuid.UUID `json:"jadwal_id"`
	Hari       string    `json:"hari"`
	JamKe      string    `json:"jam_ke"`
	JamMulai   string    `json:"jam_mulai"`
	JamSelesai string    `json:"jam_selesai"`
	Mapel      string    `json:"mapel"`
	Kelas      string    `json:"kelas"`
	Status     string    `json:"status"`       // belum_mulai | sedang_berlangsung | terlewat | sudah_absen
	BolehAbsen bool      `json:"boleh_absen"`
}

// GetJadwalHariIni daftar jadwal guru untuk hari ini + status per slot.
// GET /api/u/absensi/jadwal-hari-ini
func (ctl *AbsensiGuruController) GetJadwalHariIni(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := dbtime.Now()
	items, err := ctl.jadwalByTanggal(guruID, dbtime.Today(), now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.Success(c, "Jadwal hari ini", fiber.Map{
		"tanggal": dbtime.Today().Format("2006-01-02"),
		"jadwal":  items,
	})
}

// GetJadwalSeminggu jadwal guru 7 hari ke depan mulai hari ini, per tanggal.
// GET /api/u/absensi/jadwal-seminggu
func (ctl *AbsensiGuruController) GetJadwalSeminggu(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := dbtime.Now()
	type hariGroup struct {
		Tanggal string       `json:"tanggal"`
		Hari    string       `json:"hari"`
		Jadwal  []jadwalItem `json:"jadwal"`
	}
	out := make([]hariGroup, 0, 7)
	for i := 0; i < 7; i++ {
		tanggal := dbtime.Today().AddDate(0, 0, i)
		items, err := ctl.jadwalByTanggal(guruID, tanggal, now)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
		}
		out = append(out, hariGroup{
			Tanggal: tanggal.Format("2006-01-02"),
			Hari:    hariLabel(tanggal),
			Jadwal:  items,
		})
	}
	return helper.Success(c, "Jadwal seminggu", out)
}

// GetDetail detail satu slot untuk form absensi: info jadwal, record yang
// sudah ada (kalau ada), dan daftar siswa kelas beserta status hariannya.
// GET /api/u/absensi/jadwal/:jadwal_id/detail?tanggal=YYYY-MM-DD
func (ctl *AbsensiGuruController) GetDetail(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	jadwalID, err := uuid.Parse(c.Params("jadwal_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "jadwal_id tidak valid")
	}
	tanggal, err := parseTanggalQuery(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tanggal tidak valid (YYYY-MM-DD)")
	}

	var jadwal sekolah.JadwalModel
	err = ctl.DB.Preload("Mapel").Preload("Kelas").
		Where("jadwal_id = ?", jadwalID).Take(&jadwal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	if jadwal.JadwalGuruID != guruID {
		return helper.Error(c, fiber.StatusForbidden, "Jadwal ini bukan milik Anda")
	}

	var record *model.AbsensiMengajarModel
	var rec model.AbsensiMengajarModel
	err = ctl.DB.Where("absensi_mengajar_jadwal_id = ? AND absensi_mengajar_tanggal = ?",
		jadwalID, tanggal).Take(&rec).Error
	if err == nil {
		record = &rec
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	now := dbtime.Now()
	status, serr := service.ResolveSesi(tanggal, jadwal.JadwalJamMulai, jadwal.JadwalJamSelesai, record != nil, now)
	if serr != nil {
		return helper.Error(c, service.HTTPStatus(serr), serr.Error())
	}

	// daftar siswa kelas + status harian (default H, ditimpa row S/I/A)
	var siswaList []sekolah.SiswaModel
	if err := ctl.DB.Where("siswa_kelas_id = ? AND siswa_status = ?", jadwal.JadwalKelasID, "Aktif").
		Order("siswa_nama").Find(&siswaList).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	var harian []model.AbsensiSiswaModel
	if err := ctl.DB.Where("absensi_siswa_kelas_id = ? AND absensi_siswa_tanggal = ?",
		jadwal.JadwalKelasID, tanggal).Find(&harian).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil absensi siswa")
	}
	harianIdx := make(map[uuid.UUID]*model.AbsensiSiswaModel, len(harian))
	for i := range harian {
		harianIdx[harian[i].AbsensiSiswaSiswaID] = &harian[i]
	}

	type siswaStatus struct {
		SiswaID    uuid.UUID `json:"siswa_id"`
		Nama       string    `json:"nama"`
		NIS        *string   `json:"nis,omitempty"`
		Status     string    `json:"status"`
		Keterangan string    `json:"keterangan,omitempty"`
	}
	siswa := make([]siswaStatus, 0, len(siswaList))
	for i := range siswaList {
		sw := &siswaList[i]
		st := siswaStatus{
			SiswaID: sw.SiswaID,
			Nama:    sw.SiswaNama,
			NIS:     sw.SiswaNIS,
			Status:  string(model.KehadiranHadir),
		}
		if row, ok := harianIdx[sw.SiswaID]; ok {
			st.Status = string(row.AbsensiSiswaStatus)
			if row.AbsensiSiswaKeterangan != nil {
				st.Keterangan = *row.AbsensiSiswaKeterangan
			}
		}
		siswa = append(siswa, st)
	}

	return helper.Success(c, "Detail absensi", fiber.Map{
		"jadwal":      jadwal,
		"tanggal":     tanggal.Format("2006-01-02"),
		"status":      status.Legacy(),
		"boleh_absen": status.BolehAbsen() || status == model.SesiTercatat,
		"absensi":     record,
		"siswa":       siswa,
	})
}

// Simpan submit absensi mengajar + absensi siswa kelas.
// POST /api/u/absensi/jadwal/:jadwal_id/simpan
func (ctl *AbsensiGuruController) Simpan(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	jadwalID, err := uuid.Parse(c.Params("jadwal_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "jadwal_id tidak valid")
	}

	var req dto.SubmitMengajarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tanggal, _ := time.ParseInLocation("2006-01-02", req.Tanggal, dbtime.Location())

	in := service.MengajarSubmit{
		GuruID:          guruID,
		JadwalID:        jadwalID,
		Tanggal:         tanggal,
		GuruStatus:      model.Kehadiran(req.GuruStatus),
		GuruKeterangan:  req.GuruKeterangan,
		TugasSiswa:      req.TugasSiswa,
		RingkasanMateri: req.RingkasanMateri,
		BeritaAcara:     req.BeritaAcara,
	}
	if req.GuruTugasID != "" {
		id, err := uuid.Parse(req.GuruTugasID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "guru_tugas_id tidak valid")
		}
		in.GuruTugasID = &id
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

	row, err := ctl.Store.SubmitMengajar(in)
	if err != nil {
		return helper.Error(c, service.HTTPStatus(err), err.Error())
	}
	return helper.Success(c, "Absensi mengajar tersimpan", row)
}

// GetRiwayat riwayat absensi mengajar guru satu bulan.
// GET /api/u/absensi/riwayat?bulan=&tahun=
func (ctl *AbsensiGuruController) GetRiwayat(c *fiber.Ctx) error {
	guruID, err := helperAuth.GetGuruIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bulan, tahun := parsePeriodeQuery(c)

	start, end := dbtime.MonthRange(tahun, bulan)
	var records []model.AbsensiMengajarModel
	if err := ctl.DB.Where(`absensi_mengajar_guru_id = ?
		AND absensi_mengajar_tanggal >= ? AND absensi_mengajar_tanggal < ?`,
		guruID, start, end).
		Order("absensi_mengajar_tanggal DESC").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.Success(c, "Riwayat absensi", fiber.Map{
		"bulan":   bulan,
		"tahun":   tahun,
		"riwayat": records,
	})
}

// ===================== helpers =====================

func (ctl *AbsensiGuruController) jadwalByTanggal(guruID uuid.UUID, tanggal time.Time, now time.Time) ([]jadwalItem, error) {
	hari := hariLabel(tanggal)
	var jadwal []sekolah.JadwalModel
	if err := ctl.DB.Preload("Mapel").Preload("Kelas").
		Where("jadwal_guru_id = ? AND jadwal_hari = ? AND jadwal_status = ?", guruID, hari, "Aktif").
		Order("jadwal_jam_mulai").
		Find(&jadwal).Error; err != nil {
		return nil, err
	}
	if len(jadwal) == 0 {
		return []jadwalItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(jadwal))
	for i := range jadwal {
		ids = append(ids, jadwal[i].JadwalID)
	}
	var records []model.AbsensiMengajarModel
	if err := ctl.DB.Where("absensi_mengajar_jadwal_id IN ? AND absensi_mengajar_tanggal = ?",
		ids, tanggal).Find(&records).Error; err != nil {
		return nil, err
	}
	recorded := make(map[uuid.UUID]bool, len(records))
	for i := range records {
		if records[i].AbsensiMengajarJadwalID != nil {
			recorded[*records[i].AbsensiMengajarJadwalID] = true
		}
	}

	items := make([]jadwalItem, 0, len(jadwal))
	for i := range jadwal {
		j := &jadwal[i]
		status, err := service.ResolveSesi(tanggal, j.JadwalJamMulai, j.JadwalJamSelesai,
			recorded[j.JadwalID], now)
		if err != nil {
			// jam rusak di master: tampilkan slot tanpa status daripada
			// merobohkan seluruh list
			status = model.SesiBelumMulai
		}
		item := jadwalItem{
			JadwalID:   j.JadwalID,
			Hari:       j.JadwalHari,
			JamKe:      j.JadwalJamKe,
			JamMulai:   j.JadwalJamMulai,
			JamSelesai: j.JadwalJamSelesai,
			Status:     status.Legacy(),
			BolehAbsen: status.BolehAbsen(),
		}
		if j.Mapel != nil {
			item.Mapel = j.Mapel.MapelNama
		}
		if j.Kelas != nil {
			item.Kelas = j.Kelas.KelasNama
		}
		items = append(items, item)
	}
	return items, nil
}

var namaHari = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

func hariLabel(t time.Time) string {
	return namaHari[int(t.In(dbtime.Location()).Weekday())]
}

func parseTanggalQuery(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("tanggal", dbtime.Today().Format("2006-01-02"))
	t, err := time.ParseInLocation("2006-01-02", raw, dbtime.Location())
	if err != nil {
		return time.Time{}, err
	}
	return dbtime.StartOfDay(t), nil
}

func parsePeriodeQuery(c *fiber.Ctx) (bulan, tahun int) {
	now := dbtime.Now()
	bulan = c.QueryInt("bulan", int(now.Month()))
	tahun = c.QueryInt("tahun", now.Year())
	if bulan < 1 || bulan > 12 {
		bulan = int(now.Month())
	}
	return bulan, tahun
}
