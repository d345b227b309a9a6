package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Reload 使缓存失效并重新读取源表
// POST /api/reload
func (h *Handler) Reload(c *gin.Context) {
	snap, err := h.data.Reload()
	if err != nil {
		h.respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loadId":  snap.LoadID,
		"records": len(snap.Records),
		"dropped": snap.Dropped,
	})
}
