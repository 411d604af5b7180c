package handler

import (
	"net/http"

	"hrcore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FileHandler serves stored documents.
type FileHandler struct {
	uc usecase.FileUsecase
}

// NewFileHandler is the constructor for FileHandler, injected by Fx.
func NewFileHandler(uc usecase.FileUsecase) *FileHandler {
	return &FileHandler{uc: uc}
}

// Download streams a stored document as an attachment under its original name.
func (h *FileHandler) Download(c echo.Context) error {
	out, err := h.uc.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+out.Name+`"`)

	return c.Blob(http.StatusOK, "application/octet-stream", out.Content)
}
