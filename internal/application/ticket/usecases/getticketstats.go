package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/logger"
)

// GetTicketStatsUseCase produces the dashboard counters. "Today" is bounded
// by the start of the current day in the configured business timezone.
type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	todayStart := biztime.StartOfDayUTC(biztime.NowUTC())

	stats, err := uc.ticketRepo.GetStats(ctx, todayStart)
	if err != nil {
		uc.logger.Errorw("failed to get ticket stats", "error", err)
		return nil, err
	}

	return dto.ToStatsDTO(stats), nil
}
