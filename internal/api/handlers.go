package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-nutrition/internal/logging"
	"github.com/mwhite7112/woodpantry-nutrition/internal/pack"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

// maxPackBytes bounds the body of a pack lint request.
const maxPackBytes = 8 << 20

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Post("/foods/merge", handleMergeFoods(svc))
	r.Get("/foods/{id}", handleGetFood(svc))
	r.Get("/foods/{id}/servings", handleListServings(svc))
	r.Get("/foods/{id}/aliases", handleListAliases(svc))
	r.Post("/foods/{id}/units", handleCreateUnit(svc))

	r.Post("/match", handleMatch(svc))
	r.Put("/ingredients/{id}/food", handleMapIngredient(svc))

	r.Post("/recipes/{id}/automap", handleAutoMap(svc))
	r.Post("/recipes/{id}/nutrition", handleComputeNutrition(svc))
	r.Get("/recipes/{id}/nutrition", handleGetNutrition(svc))

	r.Post("/packs/lint", handleLintPack(svc))
	r.Post("/aliases/backfill", handleBackfill(svc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- foods ---

func handleGetFood(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		food, err := svc.Queries().GetFood(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "food not found", http.StatusNotFound)
				return
			}
			jsonError(w, "failed to get food", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, food)
	}
}

func handleListServings(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		food, err := svc.Queries().GetFood(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				jsonError(w, "food not found", http.StatusNotFound)
				return
			}
			jsonError(w, "failed to get food", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, service.DeriveServingOptions(service.ServingInputFor(food)))
	}
}

func handleListAliases(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aliases, err := svc.Queries().ListFoodAliases(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "failed to list aliases", http.StatusInternalServerError, err)
			return
		}
		if aliases == nil {
			aliases = []string{}
		}
		jsonOK(w, aliases)
	}
}

type createUnitRequest struct {
	Label string  `json:"label"`
	Grams float64 `json:"grams"`
}

func handleCreateUnit(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUnitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := svc.CreateUnit(r.Context(), chi.URLParam(r, "id"), req.Label, req.Grams); err != nil {
			serviceError(w, "failed to create unit", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type mergeRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

func handleMergeFoods(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		winner, err := svc.MergeFoods(r.Context(), req.WinnerID, req.LoserID)
		if err != nil {
			serviceError(w, "merge failed", err)
			return
		}
		jsonOK(w, winner)
	}
}

// --- matching ---

type matchRequest struct {
	Text string `json:"text"`
}

func handleMatch(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Text == "" {
			jsonError(w, "text is required", http.StatusBadRequest)
			return
		}
		result, err := svc.Match(r.Context(), req.Text)
		if err != nil {
			jsonError(w, "match failed", http.StatusInternalServerError, err)
			return
		}
		if result == nil {
			jsonError(w, "no match", http.StatusNotFound)
			return
		}
		jsonOK(w, result)
	}
}

type mapIngredientRequest struct {
	FoodID     string   `json:"food_id"`
	Confidence *float64 `json:"confidence"`
}

func handleMapIngredient(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req mapIngredientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		// a manual mapping is a confirmed one unless stated otherwise
		confidence := 1.0
		if req.Confidence != nil {
			confidence = *req.Confidence
		}
		m, err := svc.MapIngredient(r.Context(), id, req.FoodID, confidence)
		if err != nil {
			serviceError(w, "failed to map ingredient", err)
			return
		}
		jsonOK(w, m)
	}
}

func handleAutoMap(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		report, err := svc.AutoMapRecipe(r.Context(), id)
		if err != nil {
			serviceError(w, "auto-map failed", err)
			return
		}
		jsonOK(w, report)
	}
}

// --- nutrition ---

type computeNutritionRequest struct {
	Goal string `json:"goal"`
}

func handleComputeNutrition(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req computeNutritionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		result, err := svc.ComputeRecipeNutrition(r.Context(), id, req.Goal)
		if err != nil {
			serviceError(w, "nutrition computation failed", err)
			return
		}
		jsonOK(w, result)
	}
}

func handleGetNutrition(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		summary, err := svc.GetNutrition(r.Context(), id)
		if err != nil {
			serviceError(w, "failed to get nutrition", err)
			return
		}
		jsonOK(w, summary)
	}
}

// --- catalog maintenance ---

type lintResponse struct {
	Items  int             `json:"items"`
	Clean  bool            `json:"clean"`
	Issues []service.Issue `json:"issues"`
}

type schemaErrorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems"`
}

func handleLintPack(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := pack.Decode(http.MaxBytesReader(w, r.Body, maxPackBytes))
		if err != nil {
			var schemaErr *pack.SchemaError
			if errors.As(err, &schemaErr) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(schemaErrorResponse{ //nolint:errcheck
					Error:    "invalid pack",
					Problems: schemaErr.Problems,
				})
				return
			}
			jsonError(w, "failed to read pack", http.StatusBadRequest)
			return
		}
		issues := svc.Lint(items)
		jsonOK(w, lintResponse{Items: len(items), Clean: len(issues) == 0, Issues: issues})
	}
}

func handleBackfill(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageSize := svc.Config().BackfillPageSize
		if v := r.URL.Query().Get("page_size"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > service.MaxBackfillPageSize {
				jsonError(w, fmt.Sprintf("page_size must be between 1 and %d", service.MaxBackfillPageSize), http.StatusBadRequest)
				return
			}
			pageSize = n
		}
		report, err := svc.BackfillAliases(r.Context(), pageSize)
		if err != nil {
			serviceError(w, "alias backfill failed", err)
			return
		}
		jsonOK(w, report)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}

// serviceError maps service errors onto status codes: missing entities are
// 404, rejected input is 400, anything else is a 500 logged under msg.
func serviceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case service.IsValidationError(err):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, msg, http.StatusInternalServerError, err)
	}
}
