package usecase

import (
	"context"

	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/domain"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
	"github.com/tu-usuario/storehouse-api/pkg/logger"
	"github.com/tu-usuario/storehouse-api/pkg/metrics"
)

// MarkupUseCase recálculo masivo de markup: valida percent y filtro antes de
// tocar el almacenamiento y aplica el factor en un único UPDATE atómico.
type MarkupUseCase struct {
	repo repository.PositionRepository
	log  *logger.Logger
}

// NewMarkupUseCase construye el caso de uso.
func NewMarkupUseCase(repo repository.PositionRepository, log *logger.Logger) *MarkupUseCase {
	return &MarkupUseCase{repo: repo, log: log}
}

// ApplyPercent multiplica el markup de las posiciones que cumplen el filtro
// por 1 + percent/100. Rechaza sin escribir nada cuando el factor no es
// positivo, cuando percent sale del rango [-95, 500] o cuando el filtro viene
// vacío. Deliberadamente no recalcula sale_price.
func (uc *MarkupUseCase) ApplyPercent(ctx context.Context, in dto.MarkupUpdateRequest) (*dto.MarkupUpdateResponse, error) {
	factor, err := position.FactorFromPercent(in.Percent)
	if err != nil {
		metrics.MarkupRequests.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if !position.PercentInBounds(in.Percent) {
		metrics.MarkupRequests.WithLabelValues("rejected").Inc()
		return nil, domain.ErrPercentOutOfRange
	}
	filter := in.Filter.ToFilter()
	if err := filter.Validate(); err != nil {
		metrics.MarkupRequests.WithLabelValues("rejected").Inc()
		return nil, err
	}

	updated, err := uc.repo.ApplyMarkupFactorByFilter(ctx, factor, filter)
	if err != nil {
		metrics.MarkupRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	uc.log.Info().
		Str("percent", in.Percent.String()).
		Str("factor", factor.String()).
		Int64("updated", updated).
		Msg("markup recalculado por filtro")
	metrics.MarkupRequests.WithLabelValues("ok").Inc()
	metrics.MarkupRowsUpdated.Add(float64(updated))

	return &dto.MarkupUpdateResponse{Updated: updated, Percent: in.Percent}, nil
}
