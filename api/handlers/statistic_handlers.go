package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"review-insight/services"
)

// StatisticsHandler godoc
// @Summary      Store statistics
// @Description  Product and review totals and the most reviewed product
// @Tags         statistik
// @Produce      json
// @Success      200  {object}  dto.StatisticsDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /statistik [get]
func StatisticsHandler(svc *services.StatisticService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Overview(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal mengambil statistik")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
