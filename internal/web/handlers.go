package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/nutrientcalc/internal/core"
	"github.com/JonMunkholm/nutrientcalc/internal/logging"
	"github.com/JonMunkholm/nutrientcalc/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// selectPromptNotice is shown until a food is chosen.
var selectPromptNotice = core.UserMessage{
	Message: "Please select a food item to see the nutrient values.",
}

// amountResponse is one nutrient line of a JSON result.
type amountResponse struct {
	Nutrient core.Nutrient `json:"nutrient"`
	Value    float64       `json:"value"`
	Unit     string        `json:"unit"`
	Display  string        `json:"display"`
}

// computeResponse is the JSON form of core.Result.
type computeResponse struct {
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Quantity   float64          `json:"quantity"`
	Heading    string           `json:"heading"`
	Amounts    []amountResponse `json:"amounts"`
	Unresolved []core.Nutrient  `json:"unresolved"`
}

func newComputeResponse(res core.Result) computeResponse {
	out := computeResponse{
		Code:       res.Code,
		Name:       res.Name,
		Quantity:   res.Quantity,
		Heading:    core.Heading(res),
		Amounts:    make([]amountResponse, len(res.Amounts)),
		Unresolved: res.Unresolved,
	}
	if out.Unresolved == nil {
		out.Unresolved = []core.Nutrient{}
	}
	for i, a := range res.Amounts {
		out.Amounts[i] = amountResponse{
			Nutrient: a.Nutrient,
			Value:    a.Value,
			Unit:     a.Unit,
			Display:  core.FormatAmount(a),
		}
	}
	return out
}

// parseQuantity reads the quantity query parameter, defaulting to 100g.
func parseQuantity(r *http.Request) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("quantity"))
	if raw == "" {
		return core.DefaultQuantity, nil
	}
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", core.ErrInvalidQuantity, raw)
	}
	if err := core.ValidateQuantity(q); err != nil {
		return 0, err
	}
	return q, nil
}

// handleIndex renders the calculator page. Lookup and input problems are
// shown as warnings on the page rather than as error responses.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Options:  s.table.Options(),
		Selected: core.ParseOptionLabel(r.URL.Query().Get("food")),
		Quantity: strings.TrimSpace(r.URL.Query().Get("quantity")),
	}

	if data.Selected == "" {
		data.Notice = &selectPromptNotice
	} else if res, err := s.compute(r, data.Selected); err != nil {
		msg := core.MapError(err)
		data.Notice = &msg
	} else {
		data.Result = &res
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Page(data).Render(r.Context(), w); err != nil {
		slog.Error("render page", "error", err)
	}
}

// compute parses the quantity and runs the calculator for code.
func (s *Server) compute(r *http.Request, code string) (core.Result, error) {
	quantity, err := parseQuantity(r)
	if err != nil {
		return core.Result{}, err
	}

	res, err := core.Compute(s.table, code, quantity)
	if err != nil {
		return core.Result{}, err
	}

	logging.FromContext(r.Context()).Debug("nutrients computed",
		"code", res.Code,
		"quantity", quantity,
		"unresolved", len(res.Unresolved),
	)
	return res, nil
}

// handleListFoods returns the selector entries as JSON.
func (s *Server) handleListFoods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.table.Options())
}

// handleCompute returns the scaled nutrients of one food as JSON.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	res, err := s.compute(r, chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newComputeResponse(res))
}

// handleHealth reports which table is being served.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"load_id": s.table.LoadID.String(),
		"source":  s.table.Source,
		"records": s.table.Len(),
	})
}
