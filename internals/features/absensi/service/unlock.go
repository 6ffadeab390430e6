package service

import (
	"time"

	settings "alhikam_backend/internals/features/settings/model"
	"alhikam_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

// IsEditable: record hari ini selalu boleh diedit; record hari lain hanya
// saat unlock global aktif. Perbandingan hari pakai timezone sekolah.
func IsEditable(recordDate, now time.Time, unlocked bool) bool {
	if dbtime.StartOfDay(recordDate).Equal(dbtime.StartOfDay(now)) {
		return true
	}
	return unlocked
}

// checkEditable baca flag unlock fresh dari DB lalu terapkan IsEditable.
// Flag dibaca per percobaan submit — admin bisa toggle di tengah sesi.
func checkEditable(db *gorm.DB, recordDate, now time.Time) error {
	unlocked, err := settings.IsAttendanceUnlocked(db)
	if err != nil {
		return err
	}
	if !IsEditable(recordDate, now, unlocked) {
		return wrap(ErrLocked, "absensi tanggal %s terkunci, hubungi admin untuk membuka kunci",
			recordDate.Format("2006-01-02"))
	}
	return nil
}
