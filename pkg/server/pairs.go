package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"aidememoire/pkg/log"
	"aidememoire/pkg/models"
	"aidememoire/pkg/pairs"
)

func (srv *Server) addPair(ctx echo.Context) error {
	var req models.AddPairRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if err := validateBucketName(req.BucketName); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid bucket name",
		})
	}
	if err := validateText("prompt", req.Prompt); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := validateText("response", req.Response); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := srv.repo.AddPair(ctx.Request().Context(), req.BucketName, req.Prompt, req.Response); err != nil {
		log.Error().Err(err).Str("bucket", req.BucketName).Msg("Failed to add pair")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to add pair",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "pair added",
	})
}

func (srv *Server) bulkUpload(ctx echo.Context) error {
	bucket := ctx.Param("bucket")
	if err := validateBucketName(bucket); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid bucket name",
		})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "file parameter is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open uploaded file",
		})
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close uploaded file")
		}
	}()

	content, err := io.ReadAll(src)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read uploaded file",
		})
	}

	if err := srv.repo.BulkAppend(ctx.Request().Context(), bucket, string(content)); err != nil {
		if errors.Is(err, pairs.ErrMalformedRecord) {
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}
		log.Error().Err(err).Str("bucket", bucket).Msg("Failed to bulk upload")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to bulk upload",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "records appended",
	})
}

func (srv *Server) getAllPairs(ctx echo.Context) error {
	bucket := ctx.Param("bucket")

	list, err := srv.repo.GetAllPairs(ctx.Request().Context(), bucket)
	if err != nil {
		log.Error().Err(err).Str("bucket", bucket).Msg("Failed to list pairs")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list pairs",
		})
	}

	return ctx.JSON(http.StatusOK, models.PairListResponse{
		Bucket: bucket,
		Pairs:  list,
	})
}

func (srv *Server) getRandomPair(ctx echo.Context) error {
	return srv.randomPair(ctx, ctx.Param("bucket"))
}

// getRandomPairFromDefault serves a random pair from the default bucket.
func (srv *Server) getRandomPairFromDefault(ctx echo.Context) error {
	bucket, err := srv.repo.GetDefaultBucket(ctx.Request().Context())
	if err != nil {
		if errors.Is(err, pairs.ErrNoDefaultBucket) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "default bucket not set",
			})
		}
		log.Error().Err(err).Msg("Failed to read default bucket")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read default bucket",
		})
	}
	return srv.randomPair(ctx, bucket)
}

func (srv *Server) randomPair(ctx echo.Context, bucket string) error {
	pair, err := srv.repo.GetRandomPair(ctx.Request().Context(), bucket)
	if err != nil {
		if errors.Is(err, pairs.ErrBucketNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "bucket not found or empty",
			})
		}
		log.Error().Err(err).Str("bucket", bucket).Msg("Failed to get random pair")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get random pair",
		})
	}

	return ctx.JSON(http.StatusOK, pair)
}

func (srv *Server) updatePair(ctx echo.Context) error {
	bucket := ctx.Param("bucket")

	var req models.UpdatePairRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	for field, value := range map[string]string{
		"oldPrompt":   req.OldPrompt,
		"newPrompt":   req.NewPrompt,
		"newResponse": req.NewResponse,
	} {
		if err := validateText(field, value); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	if err := srv.repo.UpdatePair(ctx.Request().Context(), bucket, req.OldPrompt, req.NewPrompt, req.NewResponse); err != nil {
		log.Error().Err(err).Str("bucket", bucket).Msg("Failed to update pair")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to update pair",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "pair updated",
	})
}

func (srv *Server) deletePair(ctx echo.Context) error {
	bucket := ctx.Param("bucket")

	var req models.DeletePairRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if err := validateText("prompt", req.Prompt); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := srv.repo.DeletePair(ctx.Request().Context(), bucket, req.Prompt); err != nil {
		log.Error().Err(err).Str("bucket", bucket).Msg("Failed to delete pair")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete pair",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "pair deleted",
	})
}
