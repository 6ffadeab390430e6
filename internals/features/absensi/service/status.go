package service

import (
	"time"

	"alhikam_backend/internals/features/absensi/model"
	"alhikam_backend/internals/helpers/dbtime"
)

// parseJam gabungkan tanggal + "HH:MM" di timezone sekolah.
func parseJam(tanggal time.Time, jam string) (time.Time, error) {
	t, err := time.Parse("15:04", jam)
	if err != nil {
		return time.Time{}, wrap(ErrData, "format jam %q bukan HH:MM", jam)
	}
	loc := dbtime.Location()
	return time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(),
		t.Hour(), t.Minute(), 0, 0, loc), nil
}

// ResolveSesi menentukan status lifecycle sebuah sesi pada titik waktu now.
// hasRecord menang atas apa pun: sesi yang sudah tercatat ya tercatat.
// Batas jam rusak ("25:99", kosong) dilaporkan sebagai ErrData, bukan
// ditelan diam-diam.
func ResolveSesi(tanggal time.Time, jamMulai, jamSelesai string, hasRecord bool, now time.Time) (model.SesiStatus, error) {
	if hasRecord {
		return model.SesiTercatat, nil
	}

	mulai, err := parseJam(tanggal, jamMulai)
	if err != nil {
		return "", err
	}
	selesai, err := parseJam(tanggal, jamSelesai)
	if err != nil {
		return "", err
	}
	if selesai.Before(mulai) {
		return "", wrap(ErrData, "jam selesai %s sebelum jam mulai %s", jamSelesai, jamMulai)
	}

	switch {
	case now.After(selesai):
		return model.SesiTerlewat, nil
	case !now.Before(mulai):
		return model.SesiBerlangsung, nil
	}
	return model.SesiBelumMulai, nil
}

// ResolveSesiRange = varian untuk sesi dengan rentang timestamp penuh
// (kegiatan). Berakhir nil artinya kegiatan satu momen: dianggap selesai
// begitu waktu mulai lewat hari-nya.
func ResolveSesiRange(mulai time.Time, berakhir *time.Time, hasRecord bool, now time.Time) model.SesiStatus {
	if hasRecord {
		return model.SesiTercatat
	}
	akhir := dbtime.StartOfDay(mulai).Add(24 * time.Hour)
	if berakhir != nil {
		akhir = *berakhir
	}
	switch {
	case now.After(akhir):
		return model.SesiTerlewat
	case !now.Before(mulai):
		return model.SesiBerlangsung
	}
	return model.SesiBelumMulai
}
