package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Danz-MAZ/Club-Jepang/config"
	"github.com/Danz-MAZ/Club-Jepang/models"
	"github.com/Danz-MAZ/Club-Jepang/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type pemasukanInput struct {
	Tanggal    string  `json:"tanggal" binding:"required"`
	Penyumbang string  `json:"penyumbang" binding:"required"`
	Keterangan string  `json:"keterangan" binding:"required,oneof=DalamClub OrangLuarClub"`
	Nominal    float64 `json:"nominal" binding:"gte=0"`
}

// Frontend kirim tanggal "2006-01-02", tapi terima juga RFC3339
func parseTanggal(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func GetAllPemasukan(c *gin.Context) {
	var pemasukans []models.Pemasukan
	err := config.DB.Order("tanggal DESC, id DESC").Find(&pemasukans).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data pemasukan", err)
		return
	}

	utils.Success(c, "Data pemasukan", pemasukans)
}

func GetPemasukanByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", err)
		return
	}

	var pemasukan models.Pemasukan
	if err := config.DB.First(&pemasukan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pemasukan tidak ditemukan")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data pemasukan", err)
		return
	}

	utils.Success(c, "Data pemasukan", pemasukan)
}

func CreatePemasukan(c *gin.Context) {
	var input pemasukanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	tanggal, err := parseTanggal(input.Tanggal)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Format tanggal tidak valid", err)
		return
	}

	pemasukan := models.Pemasukan{
		Tanggal:    tanggal,
		Penyumbang: input.Penyumbang,
		Keterangan: input.Keterangan,
		Nominal:    input.Nominal,
	}

	if err := config.DB.Create(&pemasukan).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal tambah pemasukan", err)
		return
	}

	utils.Success(c, "Pemasukan berhasil ditambahkan", pemasukan)
}

func UpdatePemasukan(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", err)
		return
	}

	var pemasukan models.Pemasukan
	if err := config.DB.First(&pemasukan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pemasukan tidak ditemukan")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data pemasukan", err)
		return
	}

	var input pemasukanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	tanggal, err := parseTanggal(input.Tanggal)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Format tanggal tidak valid", err)
		return
	}

	updateData := map[string]interface{}{
		"tanggal":    tanggal,
		"penyumbang": input.Penyumbang,
		"keterangan": input.Keterangan,
		"nominal":    input.Nominal,
	}

	if err := config.DB.Model(&pemasukan).Updates(updateData).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal update pemasukan", err)
		return
	}

	if err := config.DB.First(&pemasukan, pemasukan.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data pemasukan", err)
		return
	}

	utils.Success(c, "Pemasukan berhasil diupdate", pemasukan)
}

func DeletePemasukan(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", err)
		return
	}

	var pemasukan models.Pemasukan
	if err := config.DB.First(&pemasukan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Pemasukan tidak ditemukan")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil data pemasukan", err)
		return
	}

	if err := config.DB.Delete(&pemasukan).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal hapus pemasukan", err)
		return
	}

	utils.Success(c, "Pemasukan berhasil dihapus", gin.H{"success": true})
}
