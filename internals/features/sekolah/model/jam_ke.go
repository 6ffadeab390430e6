package model

import (
	"strconv"
	"strings"
)

// HitungJamKe parse string jam_ke menjadi jumlah jam pelajaran.
// "7-8" → 2, "3" → 1. Format aneh dihitung 1 (bobot minimum satu jam),
// string kosong dihitung 0.
func HitungJamKe(jamKe string) int {
	jamKe = strings.TrimSpace(jamKe)
	if jamKe == "" {
		return 0
	}
	if strings.Contains(jamKe, "-") {
		parts := strings.SplitN(jamKe, "-", 2)
		start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil && end >= start {
			return end - start + 1
		}
		return 1
	}
	return 1
}

// TotalJamMingguan menjumlahkan bobot jam seluruh jadwal seorang guru.
func TotalJamMingguan(jadwal []JadwalModel) int {
	total := 0
	for i := range jadwal {
		total += jadwal[i].JumlahJam()
	}
	return total
}
