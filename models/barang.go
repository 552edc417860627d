package models

import "time"

type Barang struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Produk    string    `json:"produk" gorm:"size:255;not null"`
	Ukuran    string    `json:"ukuran" gorm:"size:100;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Nominal   float64   `json:"nominal" gorm:"not null"` // harga satuan
	FixPrize  float64   `json:"fix_prize" gorm:"not null"`
	SubItems  []SubItem `json:"sub_items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type SubItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	BarangID    uint   `json:"barang_id" gorm:"index;not null"`
	NamaSubItem string `json:"nama_sub_item" gorm:"size:255;not null"`
}
