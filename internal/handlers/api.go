package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsDoc []byte

type APIHandler struct {
	endpoints json.RawMessage
}

func NewAPIHandler() *APIHandler {
	return &APIHandler{endpoints: json.RawMessage(endpointsDoc)}
}

// Index serves the static endpoint documentation at GET /api.
func (h *APIHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": h.endpoints})
}
