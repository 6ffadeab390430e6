package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppSettingModel = key/value konfigurasi aplikasi, termasuk flag
// unlock_all_attendance yang membuka kunci edit absensi lama.
type AppSettingModel struct {
	AppSettingID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:app_setting_id" json:"app_setting_id"`
	AppSettingKey   string    `gorm:"not null;uniqueIndex;column:app_setting_key" json:"app_setting_key"`
	AppSettingValue string    `gorm:"not null;default:'';column:app_setting_value" json:"app_setting_value"`
	AppSettingType  string    `gorm:"type:varchar(10);not null;default:'string';column:app_setting_type" json:"app_setting_type"` // string|integer|boolean

	AppSettingCreatedAt time.Time  `gorm:"column:app_setting_created_at;autoCreateTime" json:"app_setting_created_at"`
	AppSettingUpdatedAt *time.Time `gorm:"column:app_setting_updated_at;autoUpdateTime" json:"app_setting_updated_at,omitempty"`
}

func (AppSettingModel) TableName() string { return "app_settings" }

const KeyUnlockAllAttendance = "unlock_all_attendance"

// GetValue ambil nilai setting by key, fallback ke default kalau tidak ada.
func GetValue(db *gorm.DB, key, def string) (string, error) {
	var s AppSettingModel
	err := db.Where("app_setting_key = ?", key).Take(&s).Error
	if err == gorm.ErrRecordNotFound {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return s.AppSettingValue, nil
}

// GetBool parse nilai boolean setting ("true"/"1"/"yes" = true).
func GetBool(db *gorm.DB, key string, def bool) (bool, error) {
	raw, err := GetValue(db, key, strconv.FormatBool(def))
	if err != nil {
		return def, err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	}
	return def, nil
}

// IsAttendanceUnlocked cek flag unlock global. SELALU dibaca fresh dari DB
// setiap percobaan submit — admin bisa toggle kapan saja, jangan di-cache.
func IsAttendanceUnlocked(db *gorm.DB) (bool, error) {
	return GetBool(db, KeyUnlockAllAttendance, false)
}

// SetValue upsert nilai setting.
func SetValue(db *gorm.DB, key, value, typ string) error {
	var s AppSettingModel
	err := db.Where("app_setting_key = ?", key).Take(&s).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(&AppSettingModel{
			AppSettingKey:   key,
			AppSettingValue: value,
			AppSettingType:  typ,
		}).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&s).Updates(map[string]interface{}{
		"app_setting_value": value,
		"app_setting_type":  typ,
	}).Error
}
