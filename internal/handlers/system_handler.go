package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/threadfolio/threadfolio-api/internal/config"
	"github.com/threadfolio/threadfolio-api/internal/db"
	"github.com/threadfolio/threadfolio-api/internal/httpresp"
)

type SystemHandler struct {
	cfg *config.Config
}

func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

func (h *SystemHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}

// DBProbe opens a one-off connection outside the pool, so it reports on the
// database itself rather than on cached pool state.
func (h *SystemHandler) DBProbe(c *gin.Context) {
	if err := db.Probe(c.Request.Context(), h.cfg.DBUrl); err != nil {
		c.JSON(503, gin.H{"status": "unreachable", "error": err.Error()})
		return
	}
	httpresp.OK(c, gin.H{"status": "reachable"})
}
