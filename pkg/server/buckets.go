package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"aidememoire/pkg/log"
	"aidememoire/pkg/models"
	"aidememoire/pkg/pairs"
)

func (srv *Server) listBuckets(ctx echo.Context) error {
	names, err := srv.repo.ListBuckets(ctx.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list buckets")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list buckets",
		})
	}

	return ctx.JSON(http.StatusOK, models.BucketListResponse{Buckets: names})
}

func (srv *Server) createBucket(ctx echo.Context) error {
	var req models.CreateBucketRequest
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

	if err := srv.repo.CreateBucket(ctx.Request().Context(), req.BucketName); err != nil {
		log.Error().Err(err).Str("bucket", req.BucketName).Msg("Failed to create bucket")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create bucket",
		})
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"message": "bucket created",
	})
}

func (srv *Server) deleteBucket(ctx echo.Context) error {
	bucket := ctx.Param("bucket")
	if err := validateBucketName(bucket); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid bucket name",
		})
	}

	if err := srv.repo.DeleteBucket(ctx.Request().Context(), bucket); err != nil {
		log.Error().Err(err).Str("bucket", bucket).Msg("Failed to delete bucket")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete bucket",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "bucket deleted",
	})
}

func (srv *Server) renameBucket(ctx echo.Context) error {
	oldName := ctx.Param("bucket")

	var req models.RenameBucketRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if validateBucketName(oldName) != nil || validateBucketName(req.NewName) != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid bucket name",
		})
	}

	if err := srv.repo.RenameBucket(ctx.Request().Context(), oldName, req.NewName); err != nil {
		log.Error().Err(err).Str("old", oldName).Str("new", req.NewName).Msg("Failed to rename bucket")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to rename bucket",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "bucket renamed",
	})
}

func (srv *Server) getDefaultBucket(ctx echo.Context) error {
	name, err := srv.repo.GetDefaultBucket(ctx.Request().Context())
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

	return ctx.JSON(http.StatusOK, models.DefaultBucketResponse{BucketName: name})
}

func (srv *Server) setDefaultBucket(ctx echo.Context) error {
	var req models.SetDefaultBucketRequest
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

	if err := srv.repo.SetDefaultBucket(ctx.Request().Context(), req.BucketName); err != nil {
		log.Error().Err(err).Str("bucket", req.BucketName).Msg("Failed to set default bucket")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to set default bucket",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "default bucket set",
	})
}
