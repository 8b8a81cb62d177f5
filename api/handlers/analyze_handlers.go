package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"review-insight/dto"
	"review-insight/services"
)

// AnalyzeDashboardHandler godoc
// @Summary      Dashboard narrative
// @Description  Narrative analysis of the sentiment statistics and keywords. Missing input is computed from the store. Always 200; `analysis.fallback` is true when the model could not be used.
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalyzeRequest  false  "Optional statistics and keywords"
// @Success      200   {object}  dto.AnalyzeResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /analyze [post]
func AnalyzeDashboardHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyzeRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				badRequest(c, "Format data analisis tidak valid")
				return
			}
		}
		analysis := svc.Dashboard(c.Request.Context(), req)
		c.JSON(http.StatusOK, dto.AnalyzeResponse{Success: true, Analysis: analysis})
	}
}

// AnalyzeKeywordsHandler godoc
// @Summary      Keyword insights
// @Description  Narrative insights for a keyword list. Always 200 once the list is non-empty; `insights.fallback` is true when the model could not be used.
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        body  body      dto.KeywordsRequest  true  "Keywords"
// @Success      200   {object}  dto.KeywordsResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /analyze/keywords [post]
func AnalyzeKeywordsHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.KeywordsRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Keywords) == 0 {
			badRequest(c, "Kata kunci diperlukan")
			return
		}
		insights, err := svc.Keywords(c.Request.Context(), req.Keywords)
		if err != nil {
			respondError(c, err, "Gagal menganalisis kata kunci")
			return
		}
		c.JSON(http.StatusOK, dto.KeywordsResponse{Success: true, Insights: insights})
	}
}
