package model

// Kehadiran = status kehadiran per orang per sesi: H/S/I/A
// (hadir / sakit / izin / alpha).
type Kehadiran string

const (
	KehadiranHadir Kehadiran = "H"
	KehadiranSakit Kehadiran = "S"
	KehadiranIzin  Kehadiran = "I"
	KehadiranAlpha Kehadiran = "A"
)

// Valid cek apakah string status dikenal.
func (k Kehadiran) Valid() bool {
	switch k {
	case KehadiranHadir, KehadiranSakit, KehadiranIzin, KehadiranAlpha:
		return true
	}
	return false
}

// Priority = urutan keparahan ASIH untuk resolusi konflik import:
// A=3 > S=2 > I=1 > H=0. Status yang lebih "parah" menang; import tidak
// pernah menurunkan status yang sudah tercatat ke yang lebih ringan.
//
// Catatan: aturan "tidak boleh turun" dipertahankan persis dari kebijakan
// lama (laporan pertama berlaku kecuali dikoreksi oleh laporan yang lebih
// berat). Jangan diubah tanpa keputusan produk.
func (k Kehadiran) Priority() int {
	switch k {
	case KehadiranAlpha:
		return 3
	case KehadiranSakit:
		return 2
	case KehadiranIzin:
		return 1
	default:
		return 0
	}
}

// SesiStatus = status lifecycle sebuah sesi (jadwal/kegiatan/rapat) pada satu
// titik waktu. Satu enum untuk ketiga sumber absensi; label lama per layar
// (belum_mulai dst.) hanya terjemahan di tepi API.
type SesiStatus string

const (
	SesiBelumMulai  SesiStatus = "not_started"
	SesiBerlangsung SesiStatus = "ongoing"
	SesiTerlewat    SesiStatus = "missed"
	SesiTercatat    SesiStatus = "recorded"
)

// Legacy mengembalikan label lama yang dipakai frontend guru.
func (s SesiStatus) Legacy() string {
	switch s {
	case SesiBelumMulai:
		return "belum_mulai"
	case SesiBerlangsung:
		return "sedang_berlangsung"
	case SesiTerlewat:
		return "terlewat"
	case SesiTercatat:
		return "sudah_absen"
	}
	return string(s)
}

// BolehAbsen: sesi terlewat tetap bisa diabsen (bukan dead end) —
// aturannya sama dengan sesi yang sedang berlangsung.
func (s SesiStatus) BolehAbsen() bool {
	return s == SesiBerlangsung || s == SesiTerlewat
}
