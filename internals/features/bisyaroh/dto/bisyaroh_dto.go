package dto

type PeriodeRequest struct {
	Bulan int `json:"bulan" validate:"required,min=1,max=12"`
	Tahun int `json:"tahun" validate:"required,min=2020,max=2100"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required,numeric"`
}

type SaveHistoryRequest struct {
	Bulan int     `json:"bulan" validate:"required,min=1,max=12"`
	Tahun int     `json:"tahun" validate:"required,min=2020,max=2100"`
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}
