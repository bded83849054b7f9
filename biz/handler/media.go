package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/northmart/media_bridge/biz/dal/model"
	"github.com/northmart/media_bridge/biz/service"
	"github.com/northmart/media_bridge/pkg/common"
)

// MediaHandler exposes the media asset endpoints.
type MediaHandler struct {
	service *service.Service
}

func NewMediaHandler(svc *service.Service) *MediaHandler {
	return &MediaHandler{service: svc}
}

// UploadMedia handles multipart uploads and persists assets through the
// service layer.
func (h *MediaHandler) UploadMedia(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		WriteBadRequest(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		WriteBadRequest(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteInternalError(c, err)
		return
	}

	input := &service.MediaUploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Remark:      string(c.FormValue("remark")),
		Data:        data,
	}

	asset, err := h.service.UploadMedia(EnrichContext(ctx, c), input)
	if err != nil {
		WriteInternalError(c, err)
		return
	}

	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{
			"asset": asset,
		},
	})
}

// ListMedia returns metadata for every stored asset.
func (h *MediaHandler) ListMedia(ctx context.Context, c *app.RequestContext) {
	assets, err := h.service.ListMedia(EnrichContext(ctx, c))
	if err != nil {
		WriteInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: map[string]any{
			"assets": assets,
		},
	})
}

// GetMediaFile streams stored asset content back to the client.
func (h *MediaHandler) GetMediaFile(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")
	media, reader, err := h.service.GetMediaFile(EnrichContext(ctx, c), fileID)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			WriteNotFound(c, err)
			return
		}
		WriteInternalError(c, err)
		return
	}
	writeMediaContent(c, media, reader)
}

// GetMediaObject serves content addressed by the storage-relative object key
// embedded in URLs the local and s3 backends resolve.
func (h *MediaHandler) GetMediaObject(ctx context.Context, c *app.RequestContext) {
	objectKey := strings.TrimPrefix(c.Param("objectKey"), "/")
	media, reader, err := h.service.GetMediaByStorageKey(EnrichContext(ctx, c), objectKey)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			WriteNotFound(c, err)
			return
		}
		WriteInternalError(c, err)
		return
	}
	writeMediaContent(c, media, reader)
}

func writeMediaContent(c *app.RequestContext, media *model.Media, reader io.ReadCloser) {
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		WriteInternalError(c, err)
		return
	}

	contentType := media.ContentType
	if contentType == "" {
		contentType = consts.MIMEApplicationOctetStream
	}
	if media.FileName != "" {
		c.Response.Header.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", media.FileName))
	}
	c.Data(consts.StatusOK, contentType, content)
}

// HeadMedia reports whether the asset's object is still present in storage.
func (h *MediaHandler) HeadMedia(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")
	resp, err := h.service.MediaExists(EnrichContext(ctx, c), fileID)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			WriteNotFound(c, err)
			return
		}
		WriteInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{
		Code: consts.StatusOK,
		Data: resp,
	})
}

// DeleteMedia removes the stored object and its metadata record.
func (h *MediaHandler) DeleteMedia(ctx context.Context, c *app.RequestContext) {
	fileID := c.Param("fileID")
	if err := h.service.DeleteMedia(EnrichContext(ctx, c), fileID); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			WriteNotFound(c, err)
			return
		}
		WriteInternalError(c, err)
		return
	}
	c.JSON(consts.StatusOK, common.CommonResponse{Code: consts.StatusOK})
}
