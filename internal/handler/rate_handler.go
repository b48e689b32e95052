package handler

import (
	"net/http"

	"taxengine/internal/middleware"
	"taxengine/internal/service"
	"taxengine/pkg/pagination"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateService    service.RateService
	requireSession gin.HandlerFunc
	maxUploadBytes int64
}

func NewRateHandler(rateService service.RateService, requireSession gin.HandlerFunc, maxUploadBytes int64) *RateHandler {
	return &RateHandler{
		rateService:    rateService,
		requireSession: requireSession,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *RateHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/rates")
	rates.Use(h.requireSession)
	{
		rates.GET("", h.ListRates)
		rates.POST("/calculate", h.CalculateTax)
		rates.POST("/overrides", h.UploadOverrides)
		rates.DELETE("/overrides", h.ClearOverrides)
	}
}

// CalculateTax resolves a zip code and computes tax on an amount
// @Summary      Calculate sales tax
// @Description  Looks the zip code up in this session's custom rates, then the built-in table. Unknown zip codes return status not_found, not an error.
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateTaxRequest  true  "Zip code and amount"
// @Success      200      {object}  response.Response{data=service.CalculateTaxResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/rates/calculate [post]
func (h *RateHandler) CalculateTax(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.rateService.CalculateTax(c.Request.Context(), middleware.RateSession(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// UploadOverrides replaces this session's custom zip codes
// @Summary      Upload custom zip codes
// @Description  CSV columns zip_code, city, state, rate (decimal, e.g. 0.0825). The whole file is rejected on any error; a successful upload replaces the previous one.
// @Tags         rates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Override rate CSV"
// @Success      200   {object}  response.Response{data=service.OverrideLoadResponse}
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /api/rates/overrides [post]
func (h *RateHandler) UploadOverrides(c *gin.Context) {
	f, ok := openUpload(c, h.maxUploadBytes)
	if !ok {
		return
	}
	defer closeQuietly(f)

	res, err := h.rateService.LoadOverrides(c.Request.Context(), middleware.RateSession(c), f)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ClearOverrides drops this session's custom zip codes
// @Summary      Clear custom zip codes
// @Tags         rates
// @Produce      json
// @Success      200  {object}  response.Response{data=service.SessionResponse}
// @Router       /api/rates/overrides [delete]
func (h *RateHandler) ClearOverrides(c *gin.Context) {
	sess := middleware.RateSession(c)
	h.rateService.ClearOverrides(c.Request.Context(), sess)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.rateService.Describe(c.Request.Context(), sess)))
}

// ListRates returns the effective rate table, custom codes included
// @Summary      List zip rates
// @Tags         rates
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/rates [get]
func (h *RateHandler) ListRates(c *gin.Context) {
	items, meta := h.rateService.ListRates(c.Request.Context(), middleware.RateSession(c), pagination.Parse(c))

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"rates":      items,
		"pagination": meta,
	}))
}
