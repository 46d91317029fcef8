package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peladahub/league-stats/internal/domain/stats"
	"github.com/peladahub/league-stats/internal/usecase"
)

const roundDateLayout = "2006-01-02"

func (h *Handler) GetParticipantStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetParticipantStats")
	defer span.End()

	participantID := r.PathValue("participantID")
	filter, err := h.parseStatsFilter(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.statsService.GetOverview(ctx, participantID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "get participant stats failed",
			"participant_id", participantID,
			"year", filter.Year,
			"month", int(filter.Month),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(ctx, overview))
}

func (h *Handler) parseStatsFilter(ctx context.Context, r *http.Request) (stats.Filter, error) {
	ctx, span := startSpan(ctx, "httpapi.parseStatsFilter")
	defer span.End()

	var query statsQuery

	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return stats.Filter{}, fmt.Errorf("%w: year must be an integer", usecase.ErrInvalidInput)
		}
		query.Year = year
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("month")); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return stats.Filter{}, fmt.Errorf("%w: month must be an integer", usecase.ErrInvalidInput)
		}
		query.Month = month
	}

	if err := h.validateRequest(ctx, query); err != nil {
		return stats.Filter{}, err
	}

	return stats.Filter{Year: query.Year, Month: time.Month(query.Month)}, nil
}

type statsQuery struct {
	Year  int `validate:"omitempty,gte=1900,lte=9999"`
	Month int `validate:"omitempty,gte=1,lte=12"`
}

type totalsDTO struct {
	Presences   int `json:"presences"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	Wins        int `json:"wins"`
	Draws       int `json:"draws"`
	Losses      int `json:"losses"`
	YellowCards int `json:"yellowCards"`
	BlueCards   int `json:"blueCards"`
	Penalties   int `json:"penalties"`
	TotalPoints int `json:"totalPoints"`
	Matches     int `json:"matches"`
}

type roundLineDTO struct {
	RoundID     string `json:"roundId"`
	RoundNumber int    `json:"roundNumber"`
	RoundDate   string `json:"roundDate"`
	totalsDTO
}

type monthTotalsDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	totalsDTO
}

type ratiosDTO struct {
	GoalsPerMatch   float64 `json:"goalsPerMatch"`
	AssistsPerMatch float64 `json:"assistsPerMatch"`
	InvolvementPct  float64 `json:"involvementPct"`
	WinRatePct      float64 `json:"winRatePct"`
}

type bestWorstPeriodsDTO struct {
	BestRound  roundLineDTO   `json:"bestRound"`
	WorstRound roundLineDTO   `json:"worstRound"`
	BestMonth  monthTotalsDTO `json:"bestMonth"`
	WorstMonth monthTotalsDTO `json:"worstMonth"`
}

type overviewDTO struct {
	Mode           string               `json:"mode"`
	Totals         totalsDTO            `json:"totals"`
	PerRound       []roundLineDTO       `json:"perRound"`
	AvailableYears []string             `json:"availableYears"`
	Ratios         ratiosDTO            `json:"ratios"`
	BestWorst      *bestWorstPeriodsDTO `json:"bestWorstPeriods"`
	IsLoading      bool                 `json:"isLoading"`
}

func overviewToDTO(ctx context.Context, v stats.Overview) overviewDTO {
	ctx, span := startSpan(ctx, "httpapi.overviewToDTO")
	defer span.End()

	perRound := make([]roundLineDTO, 0, len(v.PerRound))
	for _, line := range v.PerRound {
		perRound = append(perRound, roundLineToDTO(line))
	}

	years := make([]string, 0, len(v.AvailableYears))
	for _, year := range v.AvailableYears {
		years = append(years, strconv.Itoa(year))
	}

	return overviewDTO{
		Mode:           string(v.Mode),
		Totals:         totalsToDTO(v.Totals),
		PerRound:       perRound,
		AvailableYears: years,
		Ratios: ratiosDTO{
			GoalsPerMatch:   v.Ratios.GoalsPerMatch,
			AssistsPerMatch: v.Ratios.AssistsPerMatch,
			InvolvementPct:  v.Ratios.InvolvementPct,
			WinRatePct:      v.Ratios.WinRatePct,
		},
		BestWorst: extremesToDTO(v.BestWorst),
		IsLoading: v.IsLoading,
	}
}

func totalsToDTO(t stats.Totals) totalsDTO {
	return totalsDTO{
		Presences:   t.Presences,
		Goals:       t.Goals,
		Assists:     t.Assists,
		Wins:        t.Wins,
		Draws:       t.Draws,
		Losses:      t.Losses,
		YellowCards: t.YellowCards,
		BlueCards:   t.BlueCards,
		Penalties:   t.Penalties,
		TotalPoints: t.TotalPoints,
		Matches:     t.Matches,
	}
}

func roundLineToDTO(line stats.RoundLine) roundLineDTO {
	return roundLineDTO{
		RoundID:     line.RoundID,
		RoundNumber: line.RoundNumber,
		RoundDate:   line.RoundDate.Format(roundDateLayout),
		totalsDTO:   totalsToDTO(line.Totals),
	}
}

func extremesToDTO(v *stats.Extremes) *bestWorstPeriodsDTO {
	if v == nil {
		return nil
	}
	return &bestWorstPeriodsDTO{
		BestRound:  roundLineToDTO(v.BestRound),
		WorstRound: roundLineToDTO(v.WorstRound),
		BestMonth: monthTotalsDTO{
			Year:      v.BestMonth.Year,
			Month:     int(v.BestMonth.Month),
			totalsDTO: totalsToDTO(v.BestMonth.Totals),
		},
		WorstMonth: monthTotalsDTO{
			Year:      v.WorstMonth.Year,
			Month:     int(v.WorstMonth.Month),
			totalsDTO: totalsToDTO(v.WorstMonth.Totals),
		},
	}
}
