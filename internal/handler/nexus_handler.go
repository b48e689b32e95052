package handler

import (
	"net/http"
	"strings"

	"taxengine/internal/catalog"
	"taxengine/internal/service"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type NexusHandler struct {
	nexusService   service.NexusService
	maxUploadBytes int64
}

func NewNexusHandler(nexusService service.NexusService, maxUploadBytes int64) *NexusHandler {
	return &NexusHandler{nexusService: nexusService, maxUploadBytes: maxUploadBytes}
}

func (h *NexusHandler) RegisterRoutes(router *gin.RouterGroup) {
	nexus := router.Group("/api/nexus")
	{
		nexus.GET("/rules", h.ListRules)
		nexus.GET("/rules/:state_code", h.GetThreshold)
		nexus.POST("/evaluate", h.Evaluate)
		nexus.GET("/sample", h.DownloadSample)
	}
}

// GetThreshold returns the nexus rule applied to a state code
// @Summary      Get nexus threshold
// @Description  Returns the state's rule, or the DEFAULT rule when the state has none. Matching is case-sensitive.
// @Tags         nexus
// @Produce      json
// @Param        state_code  path      string  true  "Two-letter state code"
// @Success      200         {object}  response.Response{data=service.ThresholdResponse}
// @Router       /api/nexus/rules/{state_code} [get]
func (h *NexusHandler) GetThreshold(c *gin.Context) {
	res := h.nexusService.GetThreshold(c.Request.Context(), c.Param("state_code"))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ListRules returns the whole rule table
// @Summary      List nexus rules
// @Tags         nexus
// @Produce      json
// @Success      200  {object}  response.Response{data=service.NexusRuleTableResponse}
// @Router       /api/nexus/rules [get]
func (h *NexusHandler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.nexusService.ListRules(c.Request.Context())))
}

// Evaluate flags the states where uploaded sales breach nexus thresholds
// @Summary      Evaluate nexus exposure
// @Description  Accepts a sales CSV (multipart field "file", columns state_code and amount) or a JSON body with records.
// @Tags         nexus
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        file     formData  file                            false  "Sales CSV"
// @Param        payload  body      service.EvaluateRecordsRequest  false  "Sales records"
// @Success      200      {object}  response.Response{data=service.NexusEvaluationResponse}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/nexus/evaluate [post]
func (h *NexusHandler) Evaluate(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		f, ok := openUpload(c, h.maxUploadBytes)
		if !ok {
			return
		}
		defer closeQuietly(f)

		res, err := h.nexusService.EvaluateCSV(c.Request.Context(), f)
		if err != nil {
			respondUploadError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
		return
	}

	var req service.EvaluateRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.nexusService.EvaluateRecords(c.Request.Context(), req.Records)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// DownloadSample serves the onboarding sales dataset
// @Summary      Download sample sales CSV
// @Tags         nexus
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/nexus/sample [get]
func (h *NexusHandler) DownloadSample(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+catalog.SampleSalesFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", h.nexusService.SampleCSV())
}
