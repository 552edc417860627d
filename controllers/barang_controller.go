package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Danz-MAZ/Club-Jepang/config"
	"github.com/Danz-MAZ/Club-Jepang/models"
	"github.com/Danz-MAZ/Club-Jepang/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type barangInput struct {
	Produk   string  `json:"produk" binding:"required"`
	Ukuran   string  `json:"ukuran" binding:"required"`
	Quantity int     `json:"quantity" binding:"gte=0"`
	Nominal  float64 `json:"nominal" binding:"gte=0"`
	FixPrize float64 `json:"fix_prize" binding:"gte=0"`
}

// FixPrize dikirim frontend sebagai quantity x nominal; cek konsistensinya
// di sini supaya data di DB tidak pernah melenceng. Toleransi kecil karena
// client bisa menghitung perkaliannya dengan pembulatan floating point.
func (in barangInput) konsisten() bool {
	return math.Abs(in.FixPrize-float64(in.Quantity)*in.Nominal) < 0.01
}

func GetAllBarang(c *gin.Context) {
	var barangs []models.Barang
	err := config.DB.Preload("SubItems").
		Order("created_at DESC, id DESC").
		Find(&barangs).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data barang", err)
		return
	}

	for i := range barangs {
		if barangs[i].SubItems == nil {
			barangs[i].SubItems = []models.SubItem{}
		}
	}

	utils.Success(c, "Data barang", barangs)
}

func CreateBarang(c *gin.Context) {
	var input barangInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}
	if !input.konsisten() {
		utils.Error(c, http.StatusBadRequest, "Fix prize tidak sesuai quantity x nominal", nil)
		return
	}

	barang := models.Barang{
		Produk:   input.Produk,
		Ukuran:   input.Ukuran,
		Quantity: input.Quantity,
		Nominal:  input.Nominal,
		FixPrize: input.FixPrize,
	}

	if err := config.DB.Create(&barang).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal tambah barang", err)
		return
	}

	// barang baru belum punya sub item
	barang.SubItems = []models.SubItem{}

	utils.Success(c, "Barang berhasil ditambahkan", barang)
}

func UpdateBarang(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", err)
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Barang tidak ditemukan")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data barang", err)
		return
	}

	var input barangInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}
	if !input.konsisten() {
		utils.Error(c, http.StatusBadRequest, "Fix prize tidak sesuai quantity x nominal", nil)
		return
	}

	updateData := map[string]interface{}{
		"produk":    input.Produk,
		"ukuran":    input.Ukuran,
		"quantity":  input.Quantity,
		"nominal":   input.Nominal,
		"fix_prize": input.FixPrize,
	}

	if err := config.DB.Model(&barang).Updates(updateData).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal update barang", err)
		return
	}

	if err := config.DB.Preload("SubItems").First(&barang, barang.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data barang", err)
		return
	}
	if barang.SubItems == nil {
		barang.SubItems = []models.SubItem{}
	}

	utils.Success(c, "Barang berhasil diupdate", barang)
}

func DeleteBarang(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", err)
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Barang tidak ditemukan")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data barang", err)
		return
	}

	// hapus sub item ikut barangnya
	if err := config.DB.Select(clause.Associations).Delete(&barang).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal hapus barang", err)
		return
	}

	utils.Success(c, "Barang berhasil dihapus", gin.H{"success": true})
}
