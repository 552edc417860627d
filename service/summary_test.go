package service_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Danz-MAZ/Club-Jepang/models"
	"github.com/Danz-MAZ/Club-Jepang/service"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Barang{}, &models.SubItem{}, &models.Pemasukan{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestSummaryEmpty(t *testing.T) {
	db := openTestDB(t)

	got, err := service.Summary(context.Background(), db)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if got.TotalBarang != 0 || got.TotalHargaBarang != 0 || got.TotalPemasukan != 0 {
		t.Fatalf("expected zero totals on empty store: %+v", got)
	}
	if got.Saldo != 0 {
		t.Fatalf("expected saldo 0, got %v", got.Saldo)
	}
	if len(got.RecentBarang) != 0 || len(got.RecentPemasukan) != 0 {
		t.Fatalf("expected empty recent lists: %+v", got)
	}
}

func TestSummaryTotals(t *testing.T) {
	db := openTestDB(t)

	barangs := []models.Barang{
		{Produk: "Yukata", Ukuran: "pcs", Quantity: 3, Nominal: 1000, FixPrize: 3000},
		{Produk: "Kipas", Ukuran: "box", Quantity: 2, Nominal: 1000, FixPrize: 2000},
	}
	if err := db.Create(&barangs).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	pemasukans := []models.Pemasukan{
		{Tanggal: date(2024, 1, 1), Penyumbang: "Andi", Keterangan: models.KeteranganDalamClub, Nominal: 1000},
		{Tanggal: date(2024, 2, 1), Penyumbang: "Budi", Keterangan: models.KeteranganOrangLuarClub, Nominal: 2000},
		{Tanggal: date(2024, 3, 1), Penyumbang: "Citra", Keterangan: models.KeteranganDalamClub, Nominal: 4000},
	}
	if err := db.Create(&pemasukans).Error; err != nil {
		t.Fatalf("seed pemasukan: %v", err)
	}

	got, err := service.Summary(context.Background(), db)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if got.TotalBarang != 2 {
		t.Fatalf("expected 2 barang, got %d", got.TotalBarang)
	}
	if got.TotalHargaBarang != 5000 {
		t.Fatalf("expected total harga barang 5000, got %v", got.TotalHargaBarang)
	}
	if got.TotalPemasukan != 7000 {
		t.Fatalf("expected total pemasukan 7000, got %v", got.TotalPemasukan)
	}
	if got.Saldo != 2000 {
		t.Fatalf("expected saldo 2000, got %v", got.Saldo)
	}

	// pemasukan terbaru dulu
	if got.RecentPemasukan[0].Penyumbang != "Citra" {
		t.Fatalf("expected Citra first, got %q", got.RecentPemasukan[0].Penyumbang)
	}
}

func TestSummaryRecentLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 1; i <= 7; i++ {
		barang := models.Barang{
			Produk: fmt.Sprintf("Barang %d", i), Ukuran: "pcs",
			Quantity: 1, Nominal: 100, FixPrize: 100,
		}
		if err := db.Create(&barang).Error; err != nil {
			t.Fatalf("seed barang %d: %v", i, err)
		}
		pemasukan := models.Pemasukan{
			Tanggal: date(2024, time.Month(1), i), Penyumbang: fmt.Sprintf("Penyumbang %d", i),
			Keterangan: models.KeteranganDalamClub, Nominal: 100,
		}
		if err := db.Create(&pemasukan).Error; err != nil {
			t.Fatalf("seed pemasukan %d: %v", i, err)
		}
	}

	got, err := service.Summary(context.Background(), db)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if len(got.RecentBarang) != 5 {
		t.Fatalf("expected 5 recent barang, got %d", len(got.RecentBarang))
	}
	if len(got.RecentPemasukan) != 5 {
		t.Fatalf("expected 5 recent pemasukan, got %d", len(got.RecentPemasukan))
	}
	if got.TotalBarang != 7 {
		t.Fatalf("expected total barang 7, got %d", got.TotalBarang)
	}
	if got.RecentBarang[0].Produk != "Barang 7" {
		t.Fatalf("expected newest barang first, got %q", got.RecentBarang[0].Produk)
	}
	if got.RecentPemasukan[0].Penyumbang != "Penyumbang 7" {
		t.Fatalf("expected newest pemasukan first, got %q", got.RecentPemasukan[0].Penyumbang)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
