package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitungJamKe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		jamKe string
		want  int
	}{
		{"rentang dua jam", "7-8", 2},
		{"rentang tiga jam", "1-3", 3},
		{"satu jam", "3", 1},
		{"spasi di sekitar", " 7 - 8 ", 2},
		{"kosong", "", 0},
		{"spasi doang", "   ", 0},
		{"rentang terbalik dihitung satu", "8-7", 1},
		{"bukan angka dihitung satu", "pagi", 1},
		{"rentang rusak dihitung satu", "7-x", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HitungJamKe(tc.jamKe))
		})
	}
}

func TestTotalJamMingguan(t *testing.T) {
	t.Parallel()

	jadwal := []JadwalModel{
		{JadwalJamKe: "1-2"},
		{JadwalJamKe: "7-8"},
		{JadwalJamKe: "3"},
		{JadwalJamKe: ""},
	}
	assert.Equal(t, 5, TotalJamMingguan(jadwal))
	assert.Equal(t, 0, TotalJamMingguan(nil))
}
