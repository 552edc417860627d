package controllers

import (
	"net/http"

	"github.com/Danz-MAZ/Club-Jepang/config"
	"github.com/Danz-MAZ/Club-Jepang/service"
	"github.com/Danz-MAZ/Club-Jepang/utils"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	summary, err := service.Summary(c.Request.Context(), config.DB)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal ambil ringkasan dashboard", err)
		return
	}

	utils.Success(c, "Ringkasan dashboard", summary)
}
