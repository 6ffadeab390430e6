package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// KegiatanModel = kegiatan sekolah (event) dengan satu PJ (penanggung jawab)
// dan beberapa guru pendamping. Peserta siswa di-scope per kelas.
type KegiatanModel struct {
	KegiatanID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:kegiatan_id" json:"kegiatan_id"`

	KegiatanNama  string  `gorm:"not null;column:kegiatan_nama" json:"kegiatan_nama"`
	KegiatanJenis *string `gorm:"column:kegiatan_jenis" json:"kegiatan_jenis,omitempty"`

	KegiatanWaktuMulai    time.Time  `gorm:"type:timestamptz;not null;index;column:kegiatan_waktu_mulai" json:"kegiatan_waktu_mulai"`
	KegiatanWaktuBerakhir *time.Time `gorm:"type:timestamptz;column:kegiatan_waktu_berakhir" json:"kegiatan_waktu_berakhir,omitempty"`
	KegiatanTempat        *string    `gorm:"column:kegiatan_tempat" json:"kegiatan_tempat,omitempty"`

	KegiatanPenanggungJawabID uuid.UUID      `gorm:"type:uuid;not null;index;column:kegiatan_penanggung_jawab_id" json:"kegiatan_penanggung_jawab_id"`
	KegiatanGuruPendamping    pq.StringArray `gorm:"type:text[];column:kegiatan_guru_pendamping" json:"kegiatan_guru_pendamping"`
	KegiatanKelasPeserta      pq.StringArray `gorm:"type:text[];column:kegiatan_kelas_peserta" json:"kegiatan_kelas_peserta"`

	KegiatanCreatedAt time.Time      `gorm:"column:kegiatan_created_at;autoCreateTime" json:"kegiatan_created_at"`
	KegiatanUpdatedAt *time.Time     `gorm:"column:kegiatan_updated_at;autoUpdateTime" json:"kegiatan_updated_at,omitempty"`
	KegiatanDeletedAt gorm.DeletedAt `gorm:"column:kegiatan_deleted_at;index" json:"kegiatan_deleted_at,omitempty"`
}

func (KegiatanModel) TableName() string { return "kegiatan" }

// IsPJ cek apakah guru adalah penanggung jawab kegiatan.
func (k *KegiatanModel) IsPJ(guruID uuid.UUID) bool {
	return k.KegiatanPenanggungJawabID == guruID
}

// IsPendamping cek apakah guru terdaftar sebagai pendamping.
func (k *KegiatanModel) IsPendamping(guruID uuid.UUID) bool {
	id := guruID.String()
	for _, g := range k.KegiatanGuruPendamping {
		if g == id {
			return true
		}
	}
	return false
}
