package adapthttp

import (
	"errors"
	"net/http"

	"weighttrend/internal/app"
	"weighttrend/internal/domain"
)

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	m, err := monthParam(r.PathValue("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.months.LoadMonth(r.Context(), m)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	date, err := domain.ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Weight  *float64 `json:"weight"`
		Comment *string  `json:"comment"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := s.months.SaveDay(ctx, date, body.Weight, body.Comment); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, app.ErrInvalidWeight) || errors.Is(err, domain.ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	view, err := s.months.LoadMonth(ctx, domain.MonthOf(date))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func monthParam(v string) (domain.Month, error) {
	if v == "current" {
		return domain.CurrentMonth(), nil
	}
	return domain.ParseMonth(v)
}
