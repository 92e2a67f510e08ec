package services

import (
	"context"
	"errors"

	"travel_backend/internal/logger"
	"travel_backend/internal/repositories"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// contextOf returns the request context carried by db, if any.
func contextOf(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

// mapRepoError turns repository sentinels into AppErrors. Anything else is internal.
func mapRepoError(err error) error {
	var appErr *apperrors.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repositories.ErrReviewNotFound):
		return apperrors.ErrReviewNotFound
	case errors.Is(err, repositories.ErrPackageNotFound):
		return apperrors.ErrPackageNotFound
	case errors.Is(err, repositories.ErrDestinationNotFound):
		return apperrors.ErrDestinationNotFound
	case errors.Is(err, repositories.ErrPostNotFound):
		return apperrors.ErrPostNotFound
	case errors.Is(err, repositories.ErrEnquiryNotFound):
		return apperrors.ErrEnquiryNotFound
	case errors.Is(err, repositories.ErrSlugTaken):
		return apperrors.ErrSlugTaken.WithError(err)
	default:
		return apperrors.InternalError(err)
	}
}

// commit finishes tx, logging the failure with the operation name.
func commit(tx *gorm.DB, op string) error {
	if err := tx.Commit().Error; err != nil {
		logger.CtxWithError(contextOf(tx), "failed to commit transaction", err, "op", op)
		return apperrors.InternalError(err)
	}
	return nil
}

func begin(db *gorm.DB) (*gorm.DB, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	return tx, nil
}

func fieldError(field, message string) *apperrors.AppError {
	return apperrors.ValidationError(map[string]string{field: message})
}
