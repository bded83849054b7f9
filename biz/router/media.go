package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/northmart/media_bridge/biz/handler"
	"github.com/northmart/media_bridge/biz/middleware"
)

// RegisterMediaRoutes configures HTTP routes for the media APIs. Mutating
// endpoints pass through the distributed write lock when it is enabled.
func RegisterMediaRoutes(r *server.Hertz, h *handler.MediaHandler) {
	if h == nil {
		return
	}

	v1 := r.Group("/api/v1")

	media := v1.Group("/media")
	media.POST("/upload", append(middleware.WriteLockMw(), h.UploadMedia)...)
	media.GET("", h.ListMedia)
	media.GET("/exists/:fileID", h.HeadMedia)
	media.GET("/file/:fileID", h.GetMediaFile)
	media.GET("/object/*objectKey", h.GetMediaObject)
	media.DELETE("/:fileID", append(middleware.WriteLockMw(), h.DeleteMedia)...)

	r.GET("/ping", handler.Ping)
}
