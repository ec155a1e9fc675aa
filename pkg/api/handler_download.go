package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Download handles GET /api/chat/downloads/:file. The filename must be a
// bare CSV name owned by the caller: exports embed the admin id in their
// prefix, which is what the check authorizes against.
func (s *Server) Download(c *gin.Context) {
	name := c.Param("file")

	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		respondError(c, http.StatusBadRequest, "invalid file name")
		return
	}
	if !strings.HasSuffix(name, ".csv") {
		respondError(c, http.StatusBadRequest, "invalid file name")
		return
	}

	prefix := fmt.Sprintf("admin_%d_", currentAdminID(c))
	if !strings.HasPrefix(name, prefix) {
		respondError(c, http.StatusForbidden, "file belongs to another admin")
		return
	}

	path := filepath.Join(s.settings.ChatExportDir, name)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		respondError(c, http.StatusNotFound, "file not found")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.FileAttachment(path, name)
}
