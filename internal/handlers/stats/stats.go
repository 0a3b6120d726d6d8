package stats

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/internal/dto"
	"github.com/GlebRadaev/coderr/pkg/utils"
)

type Service interface {
	GetSiteStats(ctx context.Context) (*domain.SiteStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// BaseInfo godoc
//
//	@Summary		Platform statistics
//	@Description	Review count, average rating, business profile count and offer count
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	dto.BaseInfoResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/base-info/ [get]
func (h *StatsHandler) BaseInfo(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetSiteStats(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BaseInfoResponseDTO{
		ReviewCount:          stats.ReviewCount,
		AverageRating:        stats.AverageRating,
		BusinessProfileCount: stats.BusinessProfileCount,
		OfferCount:           stats.OfferCount,
	})
}
