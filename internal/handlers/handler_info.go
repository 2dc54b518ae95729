package handlers

import (
	"net/http"

	portssvc "github.com/fxcalc/currency-calculator-api/internal/core/ports/services"
	"github.com/fxcalc/currency-calculator-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// infoHandler handles HTTP requests for application metadata.
type infoHandler struct {
	infoService portssvc.InfoSvcFacade
}

// newInfoHandler creates a new infoHandler.
func newInfoHandler(is portssvc.InfoSvcFacade) *infoHandler {
	return &infoHandler{
		infoService: is,
	}
}

// registerInfoRoutes registers the application info route.
func registerInfoRoutes(rg *gin.RouterGroup, infoService portssvc.InfoSvcFacade) {
	h := newInfoHandler(infoService)

	rg.GET("/info", h.getInfo)
}

// getInfo godoc
// @Summary Report the application version
// @Description Returns the version string the process was started with.
// @Tags info
// @Produce  json
// @Success 200 {object} dto.VersionResponse
// @Router /info [get]
func (h *infoHandler) getInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VersionResponse{Version: h.infoService.Version()})
}
