package admin

import "autoviz-server/internal/dto"

func (uc *StatUseCase) ServerStats() (*dto.ServerStatsResponse, error) {
	return uc.stats.ServerStats()
}
