package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/turismo-backend-go/internal/export"
	"github.com/jengzang/turismo-backend-go/internal/turismo"
	"github.com/jengzang/turismo-backend-go/pkg/response"
)

// renderError maps view errors to responses: bad selections are the
// caller's fault, anything else is ours.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, turismo.ErrUnknownSelection):
		response.BadRequest(c, err.Error(), err)
	default:
		response.InternalError(c, "Failed to render view", err)
	}
}

// sendTable writes a table as a file download.
func sendTable(c *gin.Context, base string, table export.Table, format string) {
	f, err := export.ParseFormat(format)
	if err != nil {
		response.BadRequest(c, err.Error(), err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, table, f); err != nil {
		response.InternalError(c, "Failed to export data", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, f.Filename(base)))
	c.Data(http.StatusOK, f.ContentType(), buf.Bytes())
}
