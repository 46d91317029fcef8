package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/peladahub/league-stats/internal/usecase"
)

func (h *Handler) RunWarmStatsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmStatsJob")
	defer span.End()

	if h.warmupService == nil {
		writeError(ctx, w, fmt.Errorf("%w: warmup service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req, err := decodeWarmStatsRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmupService.WarmOverviews(ctx, req.MaxWorkers)
	if err != nil {
		h.logger.WarnContext(ctx, "run warm stats job failed", "max_workers", req.MaxWorkers, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func decodeWarmStatsRequest(r *http.Request) (warmStatsRequest, error) {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req warmStatsRequest
	if err := decoder.Decode(&req); err != nil {
		// An empty body means "use defaults"; the scheduler sends none.
		if errors.Is(err, io.EOF) {
			return warmStatsRequest{}, nil
		}
		return warmStatsRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}

type warmStatsRequest struct {
	MaxWorkers int `json:"max_workers" validate:"omitempty,gte=1,lte=32"`
}
