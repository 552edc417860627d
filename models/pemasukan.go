package models

import "time"

// Keterangan pemasukan: sumbangan dari dalam club atau orang luar club
const (
	KeteranganDalamClub     = "DalamClub"
	KeteranganOrangLuarClub = "OrangLuarClub"
)

type Pemasukan struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Tanggal    time.Time `json:"tanggal" gorm:"not null;index"`
	Penyumbang string    `json:"penyumbang" gorm:"size:255;not null"`
	Keterangan string    `json:"keterangan" gorm:"size:50;not null"`
	Nominal    float64   `json:"nominal" gorm:"not null"`
}
