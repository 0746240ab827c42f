package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version da API exposta em GET /
const Version = "1.0.0"

// InfoResponse descreve o serviço
type InfoResponse struct {
	Message string `json:"message" example:"DealFlow API"`
	Version string `json:"version" example:"1.0.0"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}

// HealthResponse é o corpo do health check
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// Info godoc
// @Summary      Informações do serviço
// @Tags         system
// @Produce      json
// @Success      200  {object}  InfoResponse
// @Router       / [get]
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Message: "DealFlow API",
		Version: Version,
		Docs:    "/swagger/index.html",
	})
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
