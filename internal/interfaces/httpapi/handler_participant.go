package httpapi

import (
	"context"
	"net/http"

	"github.com/peladahub/league-stats/internal/domain/participant"
)

func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListParticipants")
	defer span.End()

	participants, err := h.participantService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list participants failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]participantDTO, 0, len(participants))
	for _, p := range participants {
		items = append(items, participantToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetParticipant")
	defer span.End()

	participantID := r.PathValue("participantID")
	item, err := h.participantService.GetByID(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "get participant failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, participantToDTO(ctx, item))
}

type participantDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	ImageURL string `json:"imageUrl"`
}

func participantToDTO(ctx context.Context, v participant.Participant) participantDTO {
	ctx, span := startSpan(ctx, "httpapi.participantToDTO")
	defer span.End()

	return participantDTO{
		ID:       v.ID,
		Name:     v.Name,
		Nickname: v.Nickname,
		ImageURL: v.ImageURL,
	}
}
