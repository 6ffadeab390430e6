package service

import (
	"errors"
	"fmt"

	absensisvc "alhikam_backend/internals/features/absensi/service"
	"alhikam_backend/internals/features/bisyaroh/model"
	sekolah "alhikam_backend/internals/features/sekolah/model"
	"alhikam_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var namaBulan = [13]string{"", "Januari", "Februari", "Maret", "April", "Mei",
	"Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// LabelPeriode format label periode, misal "Agustus 2026".
func LabelPeriode(bulan, tahun int) string {
	if bulan < 1 || bulan > 12 {
		return fmt.Sprintf("%d/%d", bulan, tahun)
	}
	return fmt.Sprintf("%s %d", namaBulan[bulan], tahun)
}

// SaveSnapshot arsipkan slip periode saat ini ke riwayat. Snapshot yang
// sudah ada untuk periode sama dan belum dikunci ditimpa; yang terkunci
// dibiarkan (arsip final tidak boleh berubah karena generate ulang).
func (c *Calculator) SaveSnapshot(bulan, tahun int, createdBy *uuid.UUID) (*model.BisyarohHistoryModel, error) {
	var slips []model.BisyarohModel
	if err := c.DB.Where("bisyaroh_bulan = ? AND bisyaroh_tahun = ?", bulan, tahun).
		Find(&slips).Error; err != nil {
		return nil, err
	}
	if len(slips) == 0 {
		return nil, fmt.Errorf("%w: belum ada slip untuk periode %s",
			absensisvc.ErrNotFound, LabelPeriode(bulan, tahun))
	}

	guruNama := map[uuid.UUID]sekolah.GuruModel{}
	var guruList []sekolah.GuruModel
	if err := c.DB.Find(&guruList).Error; err != nil {
		return nil, err
	}
	for i := range guruList {
		guruNama[guruList[i].GuruID] = guruList[i]
	}

	entries := make([]model.HistorySnapshotEntry, 0, len(slips))
	var totalJumlah, totalPenerimaan int64
	for i := range slips {
		s := &slips[i]
		e := model.HistorySnapshotEntry{
			GuruID:          s.BisyarohGuruID,
			JumlahJam:       s.BisyarohJumlahJam,
			JumlahHadir:     s.BisyarohJumlahHadir,
			GajiPokok:       s.BisyarohGajiPokok,
			TunjStruktural:  s.BisyarohTunjStruktural,
			TunjTransport:   s.BisyarohTunjTransport,
			TunjMasaKerja:   s.BisyarohTunjMasaKerja,
			TunjKegiatan:    s.BisyarohTunjKegiatan,
			TunjRapat:       s.BisyarohTunjRapat,
			Jumlah:          s.BisyarohJumlah,
			PotonganDetail:  s.BisyarohPotonganDetail.Data(),
			JumlahPotongan:  s.BisyarohJumlahPotongan,
			TotalPenerimaan: s.BisyarohTotalPenerimaan,
		}
		if g, ok := guruNama[s.BisyarohGuruID]; ok {
			e.Nama = g.GuruNama
			if g.GuruJabatan != nil {
				e.Jabatan = *g.GuruJabatan
			}
		}
		entries = append(entries, e)
		totalJumlah += e.Jumlah
		totalPenerimaan += e.TotalPenerimaan
	}

	var hist model.BisyarohHistoryModel
	err := c.DB.Where("bisyaroh_history_bulan = ? AND bisyaroh_history_tahun = ?", bulan, tahun).
		Take(&hist).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hist = model.BisyarohHistoryModel{
			BisyarohHistoryBulan:     bulan,
			BisyarohHistoryTahun:     tahun,
			BisyarohHistoryCreatedBy: createdBy,
		}
	case err != nil:
		return nil, err
	default:
		if hist.BisyarohHistoryStatus == "locked" {
			return nil, fmt.Errorf("%w: riwayat %s sudah dikunci",
				absensisvc.ErrLocked, LabelPeriode(bulan, tahun))
		}
	}

	hist.BisyarohHistoryLabel = LabelPeriode(bulan, tahun)
	hist.BisyarohHistoryData = entries
	hist.BisyarohHistoryTotalGuru = len(entries)
	hist.BisyarohHistoryTotalJumlah = totalJumlah
	hist.BisyarohHistoryTotalPenerimaan = totalPenerimaan

	if err := c.DB.Save(&hist).Error; err != nil {
		return nil, err
	}
	return &hist, nil
}

// LockSnapshot kunci riwayat supaya generate ulang tidak menimpanya.
func (c *Calculator) LockSnapshot(historyID uuid.UUID, lockedBy *uuid.UUID) (*model.BisyarohHistoryModel, error) {
	return c.setLock(historyID, lockedBy, true)
}

// UnlockSnapshot buka kunci riwayat (koreksi periode lama).
func (c *Calculator) UnlockSnapshot(historyID uuid.UUID, by *uuid.UUID) (*model.BisyarohHistoryModel, error) {
	return c.setLock(historyID, by, false)
}

func (c *Calculator) setLock(historyID uuid.UUID, by *uuid.UUID, lock bool) (*model.BisyarohHistoryModel, error) {
	var hist model.BisyarohHistoryModel
	err := c.DB.Where("bisyaroh_history_id = ?", historyID).Take(&hist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: riwayat bisyaroh tidak ditemukan", absensisvc.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if lock {
		now := dbtime.Now()
		hist.BisyarohHistoryStatus = "locked"
		hist.BisyarohHistoryLockedBy = by
		hist.BisyarohHistoryLockedAt = &now
	} else {
		hist.BisyarohHistoryStatus = "draft"
		hist.BisyarohHistoryLockedBy = nil
		hist.BisyarohHistoryLockedAt = nil
	}
	if err := c.DB.Save(&hist).Error; err != nil {
		return nil, err
	}
	return &hist, nil
}
