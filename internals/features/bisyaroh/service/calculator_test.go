package service

import (
	"testing"
	"time"

	"alhikam_backend/internals/features/bisyaroh/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/stretchr/testify/assert"
)

func TestRekonsiliasiSlip(t *testing.T) {
	t.Parallel()

	t.Run("jumlah dan total penerimaan eksak", func(t *testing.T) {
		slip := &model.BisyarohModel{
			BisyarohGajiPokok:      720000,
			BisyarohTunjStruktural: 150000,
			BisyarohTunjTransport:  90000,
			BisyarohTunjMasaKerja:  25000,
			BisyarohTunjKegiatan:   85000,
			BisyarohTunjRapat:      50000,
		}
		rekonsiliasiSlip(slip, map[string]int64{"potongan_arisan": 20000})

		assert.Equal(t, int64(1120000), slip.BisyarohJumlah)
		assert.Equal(t, int64(20000), slip.BisyarohJumlahPotongan)
		assert.Equal(t, int64(1100000), slip.BisyarohTotalPenerimaan)
		assert.Equal(t, slip.BisyarohJumlah-slip.BisyarohJumlahPotongan, slip.BisyarohTotalPenerimaan)
	})

	t.Run("potongan melebihi salah satu komponen", func(t *testing.T) {
		slip := &model.BisyarohModel{
			BisyarohGajiPokok: 300000,
			BisyarohTunjRapat: 25000,
		}
		rekonsiliasiSlip(slip, map[string]int64{
			"potongan_arisan":   20000,
			"potongan_koperasi": 40000, // lebih besar dari tunj_rapat
		})

		assert.Equal(t, int64(325000), slip.BisyarohJumlah)
		assert.Equal(t, int64(60000), slip.BisyarohJumlahPotongan)
		assert.Equal(t, int64(265000), slip.BisyarohTotalPenerimaan)
	})

	t.Run("tanpa potongan total penerimaan sama dengan jumlah", func(t *testing.T) {
		slip := &model.BisyarohModel{BisyarohGajiPokok: 500000}
		rekonsiliasiSlip(slip, map[string]int64{})

		assert.Equal(t, int64(0), slip.BisyarohJumlahPotongan)
		assert.Equal(t, slip.BisyarohJumlah, slip.BisyarohTotalPenerimaan)
	})
}

func TestJabatanSettingKeys(t *testing.T) {
	t.Parallel()

	t.Run("satu jabatan", func(t *testing.T) {
		keys := jabatanSettingKeys("Kepala Madrasah")
		assert.Equal(t, map[string]bool{"tunj_kepala_madrasah": true}, keys)
	})

	t.Run("alias berbeda jabatan sama tidak dobel", func(t *testing.T) {
		keys := jabatanSettingKeys("Kamad, Kepala Madrasah")
		assert.Len(t, keys, 1)
		assert.True(t, keys["tunj_kepala_madrasah"])
	})

	t.Run("beberapa jabatan sekaligus", func(t *testing.T) {
		keys := jabatanSettingKeys("Waka Kurikulum, Proktor ANBK")
		assert.Len(t, keys, 2)
		assert.True(t, keys["tunj_waka_kurikulum"])
		assert.True(t, keys["tunj_proktor_anbk"])
	})

	t.Run("tata administrasi i dan ii tidak saling tertukar", func(t *testing.T) {
		assert.True(t, jabatanSettingKeys("Tata Administrasi I")["tunj_tata_administrasi_i"])
		assert.True(t, jabatanSettingKeys("Tata Administrasi II")["tunj_tata_administrasi_ii"])
		assert.False(t, jabatanSettingKeys("Tata Administrasi II")["tunj_tata_administrasi_i"])
	})

	t.Run("penulisan bebas spasi dan kapital", func(t *testing.T) {
		keys := jabatanSettingKeys("  waka   KESISWAAN ")
		assert.True(t, keys["tunj_waka_kesiswaan"])
	})

	t.Run("jabatan tidak dikenal diabaikan", func(t *testing.T) {
		assert.Empty(t, jabatanSettingKeys("Guru Mapel"))
		assert.Empty(t, jabatanSettingKeys(""))
	})
}

func TestMasaKerjaTahun(t *testing.T) {
	t.Parallel()

	tmtOf := func(value string) *time.Time {
		tmt, err := time.ParseInLocation("2006-01-02", value, dbtime.Location())
		if err != nil {
			t.Fatalf("tmt %q: %v", value, err)
		}
		return &tmt
	}

	t.Run("tanpa tmt nol", func(t *testing.T) {
		assert.Equal(t, 0, masaKerjaTahun(nil, 8, 2026))
	})

	t.Run("belum setahun nol", func(t *testing.T) {
		assert.Equal(t, 0, masaKerjaTahun(tmtOf("2026-01-15"), 8, 2026))
	})

	t.Run("dua tahun penuh", func(t *testing.T) {
		assert.Equal(t, 2, masaKerjaTahun(tmtOf("2024-03-01"), 8, 2026))
	})

	t.Run("ulang tahun kerja di dalam bulan periode ikut dihitung", func(t *testing.T) {
		// TMT 15 Agustus 2025; periode Agustus 2026 berakhir 1 September —
		// tahun pertama sudah genap
		assert.Equal(t, 1, masaKerjaTahun(tmtOf("2025-08-15"), 8, 2026))
	})

	t.Run("cap lima tahun", func(t *testing.T) {
		assert.Equal(t, 5, masaKerjaTahun(tmtOf("2010-07-01"), 8, 2026))
	})

	t.Run("tmt masa depan nol", func(t *testing.T) {
		assert.Equal(t, 0, masaKerjaTahun(tmtOf("2027-01-01"), 8, 2026))
	})
}

func TestLabelPeriode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Agustus 2026", LabelPeriode(8, 2026))
	assert.Equal(t, "Januari 2025", LabelPeriode(1, 2025))
	assert.Equal(t, "Desember 2026", LabelPeriode(12, 2026))
	assert.Equal(t, "13/2026", LabelPeriode(13, 2026))
}
