package controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/api/platform/service"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/pkg/echox"
)

// maxPhotoSize caps uploads at 8 MiB
const maxPhotoSize = 8 << 20

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type PhotoController struct {
	photoService service.PhotoService
	logger       lib.Logger
}

// NewPhotoController creates new photo controller
func NewPhotoController(photoService service.PhotoService, logger lib.Logger) PhotoController {
	return PhotoController{
		photoService: photoService,
		logger:       logger,
	}
}

// @tags Photo
// @summary Photo Upload
// @accept multipart/form-data
// @produce application/json
// @param file formData file true "photo"
// @success 200 {object} echox.Response{data=media.PhotoInfo} "ok"
// @failure 400 {object} echox.Response "bad request"
// @failure 413 {object} echox.Response "file too large"
// @router /api/v1/photos [post]
func (a PhotoController) Upload(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echox.Fail(ctx, errors.MediaFileRequired)
	}

	if fileHeader.Size > maxPhotoSize {
		return echox.Fail(ctx, errors.MediaFileTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExtensions[ext] {
		return echox.Fail(ctx, errors.MediaExtensionNotAllowed)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	info, err := a.photoService.Upload(fileHeader.Filename, src, fileHeader.Size, contentType)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, info)
}

// @tags Photo
// @summary Photo Delete
// @produce application/json
// @param path query string true "stored photo path"
// @success 200 {object} echox.Response "ok"
// @failure 400 {object} echox.Response "bad request"
// @router /api/v1/photos [delete]
func (a PhotoController) Delete(ctx echo.Context) error {
	path := ctx.QueryParam("path")
	if path == "" {
		return echox.Fail(ctx, errors.MediaFileRequired)
	}

	if err := a.photoService.Delete(path); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, nil)
}
