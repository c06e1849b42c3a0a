package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type FileHandler struct {
	fileService ports.FileService
}

func NewFileHandler(fileService ports.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

type uploadResponse struct {
	ID string `json:"id"`
}

// Upload stores a multipart file and returns its generated id.
//
// @Summary      Upload a file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer src.Close()

	id, err := h.fileService.Upload(c.Request().Context(), p.Username, ports.FileUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadResponse{ID: id})
}

// Download streams a stored file back as an attachment.
//
// @Summary      Download a file
// @Tags         files
// @Produce      application/octet-stream
// @Param        id   path  string  true  "File id"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Router       /files/{id} [get]
func (h *FileHandler) Download(c echo.Context) error {
	dl, err := h.fileService.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer dl.Content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", dl.FileName))
	return c.Stream(http.StatusOK, dl.ContentType, dl.Content)
}

// Delete removes a stored file and its metadata.
//
// @Summary      Delete a file
// @Tags         files
// @Security     BearerAuth
// @Param        id  path  string  true  "File id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	if err := h.fileService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
