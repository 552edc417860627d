package service

import (
	"context"

	"github.com/Danz-MAZ/Club-Jepang/models"

	"gorm.io/gorm"
)

// ===== DTO dashboard =====

type DashboardSummary struct {
	TotalBarang      int64              `json:"total_barang"`
	TotalHargaBarang float64            `json:"total_harga_barang"`
	TotalPemasukan   float64            `json:"total_pemasukan"`
	Saldo            float64            `json:"saldo"` // pemasukan - harga barang
	RecentBarang     []models.Barang    `json:"recent_barang"`
	RecentPemasukan  []models.Pemasukan `json:"recent_pemasukan"`
}

const recentLimit = 5

// Summary menghitung ringkasan dashboard langsung dari DB, tanpa cache.
func Summary(ctx context.Context, db *gorm.DB) (*DashboardSummary, error) {
	out := &DashboardSummary{
		RecentBarang:    []models.Barang{},
		RecentPemasukan: []models.Pemasukan{},
	}

	q := db.WithContext(ctx)

	if err := q.Model(&models.Barang{}).Count(&out.TotalBarang).Error; err != nil {
		return nil, err
	}

	err := q.Model(&models.Barang{}).
		Select(`COALESCE(SUM(fix_prize), 0)`).
		Scan(&out.TotalHargaBarang).Error
	if err != nil {
		return nil, err
	}

	err = q.Model(&models.Pemasukan{}).
		Select(`COALESCE(SUM(nominal), 0)`).
		Scan(&out.TotalPemasukan).Error
	if err != nil {
		return nil, err
	}

	out.Saldo = out.TotalPemasukan - out.TotalHargaBarang

	err = q.Preload("SubItems").
		Order("created_at DESC, id DESC").
		Limit(recentLimit).
		Find(&out.RecentBarang).Error
	if err != nil {
		return nil, err
	}
	for i := range out.RecentBarang {
		if out.RecentBarang[i].SubItems == nil {
			out.RecentBarang[i].SubItems = []models.SubItem{}
		}
	}

	err = q.Order("tanggal DESC, id DESC").
		Limit(recentLimit).
		Find(&out.RecentPemasukan).Error
	if err != nil {
		return nil, err
	}

	return out, nil
}
