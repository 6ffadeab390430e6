package service

import (
	"errors"
	"log"
	"strings"
	"time"

	absensi "alhikam_backend/internals/features/absensi/model"
	"alhikam_backend/internals/features/bisyaroh/model"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Semua komponen dihitung dalam rupiah utuh (int64). Invariannya:
// jumlah = gaji_pokok + seluruh tunjangan, dan
// total_penerimaan = jumlah - jumlah_potongan — keduanya eksak, tanpa float.

// jabatanAlias memetakan penulisan jabatan di master guru ke key setting
// tunjangan struktural. Alias yang mengarah ke key sama di-dedup: guru
// dengan jabatan "Kamad, Kepala Madrasah" cuma dapat satu tunjangan.
var jabatanAlias = map[string]string{
	"kepala madrasah":         "tunj_kepala_madrasah",
	"kamad":                   "tunj_kepala_madrasah",
	"tata administrasi i":     "tunj_tata_administrasi_i",
	"tu i":                    "tunj_tata_administrasi_i",
	"tata administrasi ii":    "tunj_tata_administrasi_ii",
	"tu ii":                   "tunj_tata_administrasi_ii",
	"waka kurikulum":          "tunj_waka_kurikulum",
	"wakil kepala kurikulum":  "tunj_waka_kurikulum",
	"waka kesiswaan":          "tunj_waka_kesiswaan",
	"wakil kepala kesiswaan":  "tunj_waka_kesiswaan",
	"wali kelas":              "tunj_wali_kelas",
	"proktor anbk":            "tunj_proktor_anbk",
	"teknisi anbk":            "tunj_teknisi_anbk",
}

// Calculator men-generate slip bisyaroh satu periode untuk semua guru aktif.
type Calculator struct {
	DB *gorm.DB
}

func NewCalculator(db *gorm.DB) *Calculator { return &Calculator{DB: db} }

// GenerateResult = rekap hasil generate untuk admin.
type GenerateResult struct {
	Bulan           int   `json:"bulan"`
	Tahun           int   `json:"tahun"`
	TotalGuru       int   `json:"total_guru"`
	TotalJumlah     int64 `json:"total_jumlah"`
	TotalPenerimaan int64 `json:"total_penerimaan"`
	Removed         int   `json:"removed"`
}

// Generate hitung ulang seluruh slip periode (bulan, tahun). Idempoten:
// slip di-upsert per (guru, bulan, tahun), slip milik guru yang sudah
// nonaktif dihapus.
func (c *Calculator) Generate(bulan, tahun int) (*GenerateResult, error) {
	settings, err := model.LoadSettingMap(c.DB)
	if err != nil {
		return nil, err
	}
	potongan, err := model.LoadPotongan(c.DB)
	if err != nil {
		return nil, err
	}

	var guruList []sekolah.GuruModel
	if err := c.DB.Where("guru_status = ?", sekolah.GuruAktif).
		Order("guru_nama").Find(&guruList).Error; err != nil {
		return nil, err
	}

	res := &GenerateResult{Bulan: bulan, Tahun: tahun}
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		aktifIDs := make([]uuid.UUID, 0, len(guruList))
		for i := range guruList {
			g := &guruList[i]
			aktifIDs = append(aktifIDs, g.GuruID)

			slip, err := c.hitungGuru(tx, g, bulan, tahun, settings, potongan)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "bisyaroh_guru_id"},
					{Name: "bisyaroh_bulan"},
					{Name: "bisyaroh_tahun"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"bisyaroh_jumlah_jam",
					"bisyaroh_jumlah_hadir",
					"bisyaroh_gaji_pokok",
					"bisyaroh_tunj_struktural",
					"bisyaroh_tunj_transport",
					"bisyaroh_tunj_masa_kerja",
					"bisyaroh_tunj_kegiatan",
					"bisyaroh_tunj_rapat",
					"bisyaroh_jumlah",
					"bisyaroh_potongan_detail",
					"bisyaroh_jumlah_potongan",
					"bisyaroh_total_penerimaan",
					"bisyaroh_detail_mengajar",
					"bisyaroh_detail_kegiatan",
					"bisyaroh_detail_rapat",
				}),
			}).Create(slip).Error; err != nil {
				return err
			}

			res.TotalGuru++
			res.TotalJumlah += slip.BisyarohJumlah
			res.TotalPenerimaan += slip.BisyarohTotalPenerimaan
		}

		// slip guru nonaktif/terhapus dibersihkan dari periode ini.
		// NOT IN dengan slice kosong tidak match apa pun di SQL, jadi
		// tanpa guru aktif seluruh slip periode dihapus eksplisit.
		cleanup := tx.Where("bisyaroh_bulan = ? AND bisyaroh_tahun = ?", bulan, tahun)
		if len(aktifIDs) > 0 {
			cleanup = cleanup.Where("bisyaroh_guru_id NOT IN ?", aktifIDs)
		}
		del := cleanup.Delete(&model.BisyarohModel{})
		if del.Error != nil {
			return del.Error
		}
		res.Removed = int(del.RowsAffected)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] generate bisyaroh %d/%d: %d guru, total %d, penerimaan %d, removed %d",
		bulan, tahun, res.TotalGuru, res.TotalJumlah, res.TotalPenerimaan, res.Removed)
	return res, nil
}

func (c *Calculator) hitungGuru(tx *gorm.DB, g *sekolah.GuruModel, bulan, tahun int,
	settings map[string]int64, potongan []model.BisyarohSettingModel) (*model.BisyarohModel, error) {

	slip := &model.BisyarohModel{
		BisyarohGuruID: g.GuruID,
		BisyarohBulan:  bulan,
		BisyarohTahun:  tahun,
	}
	hadirDays := map[string]bool{} // tanggal unik guru hadir, lintas 3 sumber

	// --- gaji pokok: bobot jam mingguan × tarif per jam ---
	var jadwal []sekolah.JadwalModel
	if err := tx.Where("jadwal_guru_id = ? AND jadwal_status = ?", g.GuruID, "Aktif").
		Find(&jadwal).Error; err != nil {
		return nil, err
	}
	slip.BisyarohJumlahJam = sekolah.TotalJamMingguan(jadwal)
	slip.BisyarohGajiPokok = int64(slip.BisyarohJumlahJam) * settings[model.KeyBisyarohPerJam]

	// --- detail mengajar bulan ini + hari hadir ---
	detailMengajar, err := c.detailMengajar(tx, g.GuruID, bulan, tahun, hadirDays)
	if err != nil {
		return nil, err
	}
	slip.BisyarohDetailMengajar = detailMengajar

	// --- kegiatan: tunjangan per kegiatan hadir, tarif menurut peran ---
	detailKegiatan, tunjKegiatan, err := c.detailKegiatan(tx, g.GuruID, bulan, tahun, settings, hadirDays)
	if err != nil {
		return nil, err
	}
	slip.BisyarohDetailKegiatan = detailKegiatan
	slip.BisyarohTunjKegiatan = tunjKegiatan

	// --- rapat: tunjangan per rapat hadir ---
	detailRapat, tunjRapat, err := c.detailRapat(tx, g.GuruID, bulan, tahun, settings, hadirDays)
	if err != nil {
		return nil, err
	}
	slip.BisyarohDetailRapat = detailRapat
	slip.BisyarohTunjRapat = tunjRapat

	// --- transport: hari hadir UNIK lintas sumber; dobel sumber di hari
	// yang sama tetap dihitung satu hari ---
	slip.BisyarohJumlahHadir = len(hadirDays)
	slip.BisyarohTunjTransport = int64(len(hadirDays)) * settings[model.KeyTransportPerHadir]

	// --- masa kerja: tahun penuh sejak TMT, maksimal 5 ---
	slip.BisyarohTunjMasaKerja = int64(masaKerjaTahun(g.GuruTMT, bulan, tahun)) *
		settings[model.KeyMasaKerjaPerTahun]

	// --- struktural: jabatan + wali kelas, dedup per key setting ---
	tunjStruktural, err := c.tunjStruktural(tx, g, settings)
	if err != nil {
		return nil, err
	}
	slip.BisyarohTunjStruktural = tunjStruktural

	// --- potongan: semua setting kategori potongan berlaku rata ---
	potonganDetail := make(map[string]int64, len(potongan))
	for i := range potongan {
		v := potongan[i].IntValue()
		if v <= 0 {
			continue
		}
		potonganDetail[potongan[i].BisyarohSettingKey] = v
	}
	rekonsiliasiSlip(slip, potonganDetail)

	return slip, nil
}

// rekonsiliasiSlip isi jumlah, jumlah_potongan, dan total_penerimaan dari
// komponen yang sudah terisi. Invariannya: jumlah = gaji_pokok + kelima
// tunjangan, total_penerimaan = jumlah - jumlah_potongan, semuanya int64
// eksak. Dipisah dari hitungGuru supaya bisa diuji tanpa DB.
func rekonsiliasiSlip(slip *model.BisyarohModel, potonganDetail map[string]int64) {
	slip.BisyarohJumlah = slip.BisyarohGajiPokok +
		slip.BisyarohTunjStruktural +
		slip.BisyarohTunjTransport +
		slip.BisyarohTunjMasaKerja +
		slip.BisyarohTunjKegiatan +
		slip.BisyarohTunjRapat

	var totalPotongan int64
	for _, v := range potonganDetail {
		totalPotongan += v
	}
	slip.BisyarohPotonganDetail = datatypes.NewJSONType(potonganDetail)
	slip.BisyarohJumlahPotongan = totalPotongan
	slip.BisyarohTotalPenerimaan = slip.BisyarohJumlah - slip.BisyarohJumlahPotongan
}

func (c *Calculator) detailMengajar(tx *gorm.DB, guruID uuid.UUID, bulan, tahun int,
	hadirDays map[string]bool) (datatypes.JSONSlice[model.DetailMengajarEntry], error) {

	start, end := dbtime.MonthRange(tahun, bulan)
	var records []absensi.AbsensiMengajarModel
	if err := tx.Where(`absensi_mengajar_guru_id = ?
		AND absensi_mengajar_tanggal >= ? AND absensi_mengajar_tanggal < ?`,
		guruID, start, end).
		Order("absensi_mengajar_tanggal").
		Find(&records).Error; err != nil {
		return nil, err
	}

	out := make([]model.DetailMengajarEntry, 0, len(records))
	for i := range records {
		r := &records[i]
		e := model.DetailMengajarEntry{
			Tanggal:    r.AbsensiMengajarTanggal.Format("2006-01-02"),
			GuruStatus: string(r.AbsensiMengajarGuruStatus),
		}
		if r.AbsensiMengajarSnapshotHari != nil {
			e.Hari = *r.AbsensiMengajarSnapshotHari
		}
		if r.AbsensiMengajarSnapshotJam != nil {
			e.Jam = *r.AbsensiMengajarSnapshotJam
		}
		if r.AbsensiMengajarSnapshotMapel != nil {
			e.Mapel = *r.AbsensiMengajarSnapshotMapel
		}
		if r.AbsensiMengajarSnapshotKelas != nil {
			e.Kelas = *r.AbsensiMengajarSnapshotKelas
		}
		out = append(out, e)

		if r.AbsensiMengajarGuruStatus == absensi.KehadiranHadir {
			hadirDays[e.Tanggal] = true
		}
	}
	return out, nil
}

func (c *Calculator) detailKegiatan(tx *gorm.DB, guruID uuid.UUID, bulan, tahun int,
	settings map[string]int64, hadirDays map[string]bool) (datatypes.JSONSlice[model.DetailKegiatanEntry], int64, error) {

	start, end := dbtime.MonthRange(tahun, bulan)
	var kegiatan []sekolah.KegiatanModel
	if err := tx.Where("kegiatan_waktu_mulai >= ? AND kegiatan_waktu_mulai < ?", start, end).
		Order("kegiatan_waktu_mulai").
		Find(&kegiatan).Error; err != nil {
		return nil, 0, err
	}

	out := make([]model.DetailKegiatanEntry, 0)
	var total int64
	for i := range kegiatan {
		k := &kegiatan[i]
		isPJ := k.IsPJ(guruID)
		if !isPJ && !k.IsPendamping(guruID) {
			continue
		}

		var rec absensi.AbsensiKegiatanModel
		hasRecord := true
		err := tx.Where("absensi_kegiatan_kegiatan_id = ?", k.KegiatanID).Take(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hasRecord = false
		} else if err != nil {
			return nil, 0, err
		}

		hadir := false
		if hasRecord {
			if isPJ {
				hadir = rec.AbsensiKegiatanPJStatus == absensi.KehadiranHadir
			} else if entry := rec.StatusPendamping(guruID); entry != nil {
				hadir = entry.Status == absensi.KehadiranHadir
			}
		}

		peran := "Pendamping"
		rate := settings[model.KeyTunjPendamping]
		if isPJ {
			peran = "Koordinator"
			rate = settings[model.KeyTunjKoordinator]
		}

		e := model.DetailKegiatanEntry{
			KegiatanID: k.KegiatanID,
			Nama:       k.KegiatanNama,
			Tanggal:    k.KegiatanWaktuMulai.In(dbtime.Location()).Format("2006-01-02"),
			Peran:      peran,
			TotalSesi:  1,
		}
		if hadir {
			e.Hadir = 1
			e.Tunjangan = rate
			total += rate
			hadirDays[e.Tanggal] = true
		}
		out = append(out, e)
	}
	return out, total, nil
}

func (c *Calculator) detailRapat(tx *gorm.DB, guruID uuid.UUID, bulan, tahun int,
	settings map[string]int64, hadirDays map[string]bool) (datatypes.JSONSlice[model.DetailRapatEntry], int64, error) {

	start, end := dbtime.MonthRange(tahun, bulan)
	var rapat []sekolah.RapatModel
	if err := tx.Where("rapat_tanggal >= ? AND rapat_tanggal < ?", start, end).
		Order("rapat_tanggal").
		Find(&rapat).Error; err != nil {
		return nil, 0, err
	}

	rate := settings[model.KeyTunjRapat]
	out := make([]model.DetailRapatEntry, 0)
	var total int64
	for i := range rapat {
		r := &rapat[i]
		isPimpinan := r.IsPimpinan(guruID)
		isSekretaris := r.IsSekretaris(guruID)
		if !isPimpinan && !isSekretaris && !r.IsPeserta(guruID) {
			continue
		}

		var rec absensi.AbsensiRapatModel
		hasRecord := true
		err := tx.Where("absensi_rapat_rapat_id = ?", r.RapatID).Take(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hasRecord = false
		} else if err != nil {
			return nil, 0, err
		}

		hadir := false
		if hasRecord {
			switch {
			case isPimpinan:
				hadir = rec.AbsensiRapatPimpinanStatus == absensi.KehadiranHadir
			case isSekretaris:
				hadir = rec.AbsensiRapatSekretarisStatus == absensi.KehadiranHadir
			default:
				if entry := rec.StatusPeserta(guruID); entry != nil {
					hadir = entry.Status == absensi.KehadiranHadir
				}
			}
		}

		e := model.DetailRapatEntry{
			RapatID: r.RapatID,
			Agenda:  r.RapatAgenda,
			Tanggal: dbtime.StartOfDay(r.RapatTanggal).Format("2006-01-02"),
			Hadir:   hadir,
		}
		if r.RapatTempat != nil {
			e.Tempat = *r.RapatTempat
		}
		if hadir {
			e.Tunjangan = rate
			total += rate
			hadirDays[e.Tanggal] = true
		}
		out = append(out, e)
	}
	return out, total, nil
}

// tunjStruktural jumlahkan tunjangan jabatan dari kolom jabatan guru
// (dipisah koma) plus status wali kelas dari master kelas. Dedup per key:
// alias berbeda untuk jabatan sama tidak menggandakan tunjangan.
func (c *Calculator) tunjStruktural(tx *gorm.DB, g *sekolah.GuruModel, settings map[string]int64) (int64, error) {
	keys := map[string]bool{}
	if g.GuruJabatan != nil {
		keys = jabatanSettingKeys(*g.GuruJabatan)
	}

	var waliCount int64
	if err := tx.Model(&sekolah.KelasModel{}).
		Where("kelas_wali_guru_id = ?", g.GuruID).
		Count(&waliCount).Error; err != nil {
		return 0, err
	}
	if waliCount > 0 {
		keys["tunj_wali_kelas"] = true
	}

	var total int64
	for key := range keys {
		total += settings[key]
	}
	return total, nil
}

// jabatanSettingKeys parse kolom jabatan (dipisah koma) ke set key setting.
// Set menjamin dedup: dua alias untuk jabatan sama cuma menghasilkan satu key.
func jabatanSettingKeys(jabatan string) map[string]bool {
	keys := map[string]bool{}
	for _, part := range strings.Split(jabatan, ",") {
		norm := strings.ToLower(strings.Join(strings.Fields(part), " "))
		if key, ok := jabatanAlias[norm]; ok {
			keys[key] = true
		}
	}
	return keys
}

// masaKerjaTahun = tahun penuh sejak TMT sampai akhir periode, cap 5.
func masaKerjaTahun(tmt *time.Time, bulan, tahun int) int {
	if tmt == nil {
		return 0
	}
	_, end := dbtime.MonthRange(tahun, bulan)
	years := 0
	for t := tmt.AddDate(1, 0, 0); !t.After(end); t = t.AddDate(1, 0, 0) {
		years++
	}
	if years < 0 {
		years = 0
	}
	if years > 5 {
		years = 5
	}
	return years
}
