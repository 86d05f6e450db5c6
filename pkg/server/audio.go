package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"aidememoire/pkg/log"
	"aidememoire/pkg/pairs"
)

func (srv *Server) getAudio(ctx echo.Context) error {
	bucket := ctx.Param("bucket")
	audioID := ctx.Param("audioId")

	data, err := srv.repo.GetAudio(ctx.Request().Context(), bucket, audioID)
	if err != nil {
		if errors.Is(err, pairs.ErrAudioNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "audio not found",
			})
		}
		log.Error().Err(err).Str("bucket", bucket).Str("audio_id", audioID).Msg("Failed to fetch audio")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch audio",
		})
	}

	return ctx.Blob(http.StatusOK, "audio/mpeg", data)
}
