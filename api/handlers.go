package api

import (
	"net/http"

	"github.com/cooltech/storefront/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// home serves the storefront landing page
func (s *Server) home(c *gin.Context) {
	s.logger.Info("Homepage visited")
	metrics.RequestsTotal.WithLabelValues("home", "200").Inc()
	c.String(http.StatusOK, "Welcome to Cool Tech Store!")
}

// errorPage always reports a failure with a fixed 500 response
func (s *Server) errorPage(c *gin.Context) {
	s.logger.Error("An error occurred!")
	metrics.RequestsTotal.WithLabelValues("error", "500").Inc()
	c.String(http.StatusInternalServerError, "Something went wrong!")
}

// healthCheck handles the health check endpoint
func (s *Server) healthCheck(c *gin.Context) {
	metrics.RequestsTotal.WithLabelValues("health", "200").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
