package dto

// Request body absensi. Validasi pakai validator/v10; konversi ke tipe
// service dilakukan controller setelah lolos validasi.

type SiswaAbsenRequest struct {
	SiswaID    string `json:"siswa_id" validate:"required,uuid"`
	Status     string `json:"status" validate:"required,oneof=H S I A"`
	Keterangan string `json:"keterangan" validate:"omitempty,max=255"`
}

type SubmitMengajarRequest struct {
	Tanggal string `json:"tanggal" validate:"required,datetime=2006-01-02"`

	GuruStatus     string `json:"guru_status" validate:"required,oneof=H S I A"`
	GuruKeterangan string `json:"guru_keterangan" validate:"omitempty,max=255"`

	// wajib diisi kalau guru izin/sakit dan ada guru pengganti
	GuruTugasID string `json:"guru_tugas_id" validate:"omitempty,uuid"`
	TugasSiswa  string `json:"tugas_siswa" validate:"omitempty,max=1000"`

	RingkasanMateri string `json:"ringkasan_materi" validate:"omitempty,max=2000"`
	BeritaAcara     string `json:"berita_acara" validate:"omitempty,max=2000"`

	Siswa []SiswaAbsenRequest `json:"siswa" validate:"omitempty,dive"`
}

type PendampingAbsenRequest struct {
	GuruID     string `json:"guru_id" validate:"required,uuid"`
	Status     string `json:"status" validate:"required,oneof=H S I A"`
	Keterangan string `json:"keterangan" validate:"omitempty,max=255"`
}

type SubmitKegiatanRequest struct {
	PJStatus     string `json:"pj_status" validate:"required,oneof=H S I A"`
	PJKeterangan string `json:"pj_keterangan" validate:"omitempty,max=255"`

	Pendamping []PendampingAbsenRequest `json:"pendamping" validate:"omitempty,dive"`
	Siswa      []SiswaAbsenRequest      `json:"siswa" validate:"omitempty,dive"`

	BeritaAcara string   `json:"berita_acara" validate:"omitempty,max=2000"`
	Foto        []string `json:"foto" validate:"omitempty,max=10"`
}

// AbsenMandiriRequest dipakai pendamping kegiatan dan peserta rapat.
type AbsenMandiriRequest struct {
	Status     string `json:"status" validate:"required,oneof=H S I A"`
	Keterangan string `json:"keterangan" validate:"omitempty,max=255"`
}

type PesertaAbsenRequest struct {
	GuruID     string `json:"guru_id" validate:"required,uuid"`
	Status     string `json:"status" validate:"required,oneof=H S I A"`
	Keterangan string `json:"keterangan" validate:"omitempty,max=255"`
}

type SubmitRapatRequest struct {
	PimpinanStatus       string `json:"pimpinan_status" validate:"required,oneof=H S I A"`
	PimpinanKeterangan   string `json:"pimpinan_keterangan" validate:"omitempty,max=255"`
	SekretarisStatus     string `json:"sekretaris_status" validate:"required,oneof=H S I A"`
	SekretarisKeterangan string `json:"sekretaris_keterangan" validate:"omitempty,max=255"`

	Peserta []PesertaAbsenRequest `json:"peserta" validate:"omitempty,dive"`

	Notulensi string   `json:"notulensi" validate:"omitempty,max=5000"`
	Foto      []string `json:"foto" validate:"omitempty,max=10"`
}

// ImportRowRequest = satu baris import JSON (hasil parse frontend).
type ImportRowRequest struct {
	Tanggal    string `json:"tanggal" validate:"required"`
	Nama       string `json:"nama" validate:"required"`
	Kelas      string `json:"kelas" validate:"required"`
	Status     string `json:"status" validate:"required"`
	Keterangan string `json:"keterangan" validate:"omitempty,max=255"`
}

type ImportAbsensiRequest struct {
	Rows []ImportRowRequest `json:"rows" validate:"required,min=1,max=2000,dive"`
}

type UnlockAbsensiRequest struct {
	Unlocked *bool `json:"unlocked" validate:"required"`
}
