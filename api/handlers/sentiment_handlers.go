package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"review-insight/dto"
	"review-insight/models"
	"review-insight/services"
)

// ListSentimentsHandler godoc
// @Summary      List sentiment records
// @Description  All sentiment records, newest review id first
// @Tags         sentimen
// @Produce      json
// @Success      200  {array}   models.SentimentRecord
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sentimen [get]
func ListSentimentsHandler(svc *services.SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal mengambil data sentimen")
			return
		}
		if items == nil {
			items = []models.SentimentRecord{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// SentimentStatsHandler godoc
// @Summary      Sentiment statistics
// @Description  Review and product totals with the label distribution
// @Tags         sentimen
// @Produce      json
// @Success      200  {object}  dto.SentimentStatsDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sentimen/stats [get]
func SentimentStatsHandler(svc *services.SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal mengambil statistik sentimen")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// TopKeywordsHandler godoc
// @Summary      Top keywords
// @Description  Most frequent lexicon words in positive and negative reviews. Never fails; placeholder data is served when nothing is counted.
// @Tags         sentimen
// @Produce      json
// @Success      200  {array}  analyzer.KeywordStat
// @Router       /sentimen/top-keywords [get]
func TopKeywordsHandler(svc *services.SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.TopKeywords(c.Request.Context()))
	}
}

// RecentSentimentsHandler godoc
// @Summary      Recent reviews
// @Description  A random sample of sentiment records formatted for the dashboard feed
// @Tags         sentimen
// @Produce      json
// @Success      200  {array}   dto.RecentReviewDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sentimen/recent [get]
func RecentSentimentsHandler(svc *services.SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Recent(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal mengambil ulasan terbaru")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// SentimentProductCountHandler godoc
// @Summary      Analysed product count
// @Description  Number of distinct products that have sentiment records
// @Tags         sentimen
// @Produce      json
// @Success      200  {object}  dto.CountDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sentimen/produk-count [get]
func SentimentProductCountHandler(svc *services.SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.ProductCount(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal menghitung produk")
			return
		}
		c.JSON(http.StatusOK, dto.CountDTO{Count: n})
	}
}

// SentimentAnalysisHandler godoc
// @Summary      Complaint analysis
// @Description  Label distribution, top complaint aspects of recent negative reviews and a recommendation
// @Tags         sentimen
// @Produce      json
// @Success      200  {object}  dto.SentimentAnalysisDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sentimen/analysis [get]
func SentimentAnalysisHandler(svc *services.SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Analysis(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal menganalisis sentimen")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ClassifyAllHandler godoc
// @Summary      Classify all reviews
// @Description  Re-derives the sentiment record of every stored review
// @Tags         sentimen
// @Produce      json
// @Success      200  {object}  dto.ClassifyReportDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /sentimen/classify [post]
func ClassifyAllHandler(svc *services.ClassificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.ClassifyAll(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal mengklasifikasi ulasan")
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// ClassifyReviewHandler godoc
// @Summary      Classify one review
// @Tags         sentimen
// @Param        id   path  string  true  "Review id"
// @Produce      json
// @Success      200  {object}  models.SentimentRecord
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      422  {object}  dto.ErrorResponseDTO
// @Router       /sentimen/classify/{id} [post]
func ClassifyReviewHandler(svc *services.ClassificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := models.ParseFlexID(c.Param("id"))
		if id.IsZero() {
			respondError(c, services.ErrInvalidID, "")
			return
		}
		rec, err := svc.ClassifyByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Gagal mengklasifikasi ulasan")
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
