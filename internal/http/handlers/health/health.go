package health

import (
	"net/http"

	"github.com/nftmedia/upload-api/internal/utils/response"
)

const (
	ServiceName = "nft-upload-api"
	Version     = "0.2.0"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Health reports liveness
// @Summary Health check
// @Description Reports that the service is up; independent of filesystem state
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is up"
// @Router /api/health [get]
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: ServiceName,
			Version: Version,
		})
	}
}
