package usecase

import (
	"context"
	"time"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/product"
	"go.uber.org/zap"
)

// timeLayout renders timestamps as ISO-8601 UTC with milliseconds.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

const descriptionPreviewLen = 100

type productUseCase struct {
	repo         product.Repository
	queryTimeout time.Duration
	logger       logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, queryTimeout time.Duration, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:         repo,
		queryTimeout: queryTimeout,
		logger:       log,
	}
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	ok, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		uc.logger.Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}
	if !ok {
		return apperr.NotFound(apperr.EntityProduct)
	}

	uc.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

func (uc *productUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.queryTimeout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
