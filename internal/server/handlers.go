package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/plan4you/plan-advisor/internal/catalog"
	"github.com/plan4you/plan-advisor/internal/eligibility"
	"github.com/plan4you/plan-advisor/internal/filtering"
	"github.com/plan4you/plan-advisor/internal/ranking"
	"github.com/plan4you/plan-advisor/internal/recommend"
	"github.com/plan4you/plan-advisor/internal/types"
)

var validate = validator.New()

// RecommendationRequest is the profile-submission body. Numeric and boolean
// required fields are pointers so that absence is distinguishable from zero
// values during validation.
type RecommendationRequest struct {
	Name               string   `json:"name" validate:"required"`
	Age                *int     `json:"age" validate:"required,gte=0"`
	State              string   `json:"state" validate:"required,len=2"`
	Income             *float64 `json:"income" validate:"required,gte=0"`
	Dependents         int      `json:"dependents" validate:"gte=0"`
	DentalPlanRequired string   `json:"dentalPlanRequired" validate:"required,oneof=yes no"`
	ConsentGiven       *bool    `json:"consentGiven" validate:"required"`
}

// Profile converts the validated request into the immutable pipeline profile.
func (r *RecommendationRequest) Profile() types.UserProfile {
	return types.UserProfile{
		Name:           strings.TrimSpace(r.Name),
		Age:            *r.Age,
		Dependents:     r.Dependents,
		Income:         *r.Income,
		State:          r.State,
		DentalRequired: strings.EqualFold(r.DentalPlanRequired, "yes"),
	}
}

// RecommendationResponse is the success envelope.
type RecommendationResponse struct {
	Status      string                      `json:"status"`
	Message     string                      `json:"message"`
	Analysis    *types.RankedRecommendation `json:"analysis,omitempty"`
	Eligibility *types.EligibilityResult    `json:"eligibility,omitempty"`
}

// InfoResponse is the degraded envelope used when no candidate plans exist.
type InfoResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Plans   []types.Plan `json:"plans"`
}

// handleRecommendations runs the full pipeline: validate, query, normalize,
// classify, filter, score, project, orchestrate. Client-input errors are
// rejected before any store or generator call is made.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing or invalid required fields", validationDetails(err))
		return
	}

	profile := req.Profile()
	state := profile.NormalizedState()

	records, err := s.findBenefits(r.Context(), state)
	if err != nil {
		s.logger.Error("benefit catalog query failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "failed to query the benefit catalog", err.Error())
		return
	}

	thresholds, err := s.getThresholds(r.Context(), state)
	if err != nil {
		s.logger.Error("eligibility levels query failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "failed to query eligibility reference data", err.Error())
		return
	}

	elig, err := s.classifier.Classify(profile, thresholds)
	if err != nil {
		if !errors.Is(err, eligibility.ErrStateNotFound) {
			s.errorResponse(w, http.StatusInternalServerError, "eligibility classification failed", err.Error())
			return
		}
		// Missing reference data degrades to no entitlement assumption.
		s.logger.Warn("eligibility thresholds missing for state", zap.String("state", state))
	}

	normalized := catalog.Normalize(records)
	candidates := filtering.Candidates(normalized, profile, elig)
	if len(candidates) == 0 {
		s.jsonResponse(w, http.StatusOK, InfoResponse{
			Status:  "info",
			Message: fmt.Sprintf("no plans in %s match your criteria", state),
			Plans:   []types.Plan{},
		})
		return
	}

	top := ranking.Top(ranking.Score(candidates), ranking.TopPlanLimit)
	plans := ranking.ProjectTop(candidates, top)

	result, err := s.recommender.Recommend(r.Context(), profile, plans)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "recommendation failed", err.Error())
		return
	}

	resp := RecommendationResponse{
		Status:      "success",
		Message:     recommendationMessage(profile, elig, result),
		Analysis:    &result.Recommendation,
		Eligibility: &elig,
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func recommendationMessage(profile types.UserProfile, elig types.EligibilityResult, result *recommend.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, your household size is %d and your income is %.1f%% of the federal poverty level.",
		profile.Name, elig.HouseholdSize, elig.FPLPercent)

	switch {
	case elig.MedicaidEligible:
		sb.WriteString(" You may be eligible for Medicaid in your state.")
	case elig.CHIPEligible:
		sb.WriteString(" You may be eligible for CHIP (Children's Health Insurance Program).")
	}

	switch {
	case result.PolicyBlocked():
		sb.WriteString(" The AI analysis was blocked by the provider's safety policy; a catalog-based fallback ranking is included instead.")
	case result.Fallback:
		sb.WriteString(" The AI analysis was unavailable for this request; a catalog-based fallback ranking is included instead.")
	}

	return sb.String()
}

func (s *Server) findBenefits(ctx context.Context, state string) ([]types.BenefitRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()
	return s.store.FindBenefitsByState(ctx, state)
}

func (s *Server) getThresholds(ctx context.Context, state string) (*eligibility.Thresholds, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()
	return s.store.GetEligibilityLevels(ctx, state)
}

// validationDetails flattens validator errors into a readable field list.
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// handleListBenefits is the raw catalog passthrough.
func (s *Server) handleListBenefits(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		s.errorResponse(w, http.StatusBadRequest, "state query parameter is required", "")
		return
	}

	limit := 200
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.dbTimeout)
	defer cancel()

	records, err := s.store.ListBenefits(ctx, state, limit)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "failed to query the benefit catalog", err.Error())
		return
	}
	if records == nil {
		records = []types.BenefitRecord{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleListEligibility is the eligibility-levels passthrough.
func (s *Server) handleListEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.dbTimeout)
	defer cancel()

	if state := r.URL.Query().Get("state"); state != "" {
		th, err := s.store.GetEligibilityLevels(ctx, state)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "failed to query eligibility reference data", err.Error())
			return
		}
		if th == nil {
			s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("no eligibility data for state %s", state), "")
			return
		}
		s.jsonResponse(w, http.StatusOK, th)
		return
	}

	levels, err := s.store.ListEligibilityLevels(ctx)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "failed to query eligibility reference data", err.Error())
		return
	}
	if levels == nil {
		levels = []eligibility.Thresholds{}
	}
	s.jsonResponse(w, http.StatusOK, levels)
}

// handleHealth reports liveness, including store reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.dbTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "degraded",
			"message": "database unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
