// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"sync"
	"time"

	"alhikam_backend/internals/configs"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location mengembalikan timezone sekolah:
// 1) SCHOOL_TIMEZONE dari env (via configs)
// 2) Fallback: Asia/Jakarta
// 3) Fallback terakhir: time.UTC
func Location() *time.Location {
	locOnce.Do(func() {
		tz := configs.SchoolTimezone
		if tz == "" {
			tz = "Asia/Jakarta"
		}
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
			return
		}
		if l, err := time.LoadLocation("Asia/Jakarta"); err == nil {
			loc = l
			return
		}
		loc = time.UTC
	})
	return loc
}

// Now = waktu sekarang dalam timezone sekolah.
func Now() time.Time {
	return time.Now().In(Location())
}

// Today = awal hari ini (00:00) dalam timezone sekolah.
func Today() time.Time {
	n := Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, Location())
}

// StartOfDay memotong t ke 00:00 pada timezone sekolah.
func StartOfDay(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}

// MonthRange mengembalikan [awal bulan, awal bulan berikutnya) pada timezone sekolah.
func MonthRange(tahun, bulan int) (time.Time, time.Time) {
	start := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, Location())
	return start, start.AddDate(0, 1, 0)
}
