package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sui-advisor/internal/advisor"
	"github.com/sui-advisor/internal/logging"
)

// handleGetPortfolio analyzes the portfolio of a wallet address.
// GET /api/addresses/{address}/portfolio
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if address == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "address is required", nil)
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		var cached advisor.PortfolioAnalysis
		if hit, err := s.cache.Get(ctx, s.cache.PortfolioKey(address), &cached); err == nil && hit {
			respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	analysis, err := s.advisor.AnalyzePortfolio(ctx, address)
	if err != nil {
		respondCategorizedError(w, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.PortfolioKey(address), analysis); err != nil {
			logging.FromContext(ctx).WithError(err).Warn("failed to cache portfolio analysis")
		}
	}

	respondJSON(w, http.StatusOK, analysis)
}

// handleGetPlatforms detects DeFi platform exposure for a wallet address.
// GET /api/addresses/{address}/platforms
func (s *Server) handleGetPlatforms(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if address == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "address is required", nil)
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		var cached advisor.PlatformDetection
		if hit, err := s.cache.Get(ctx, s.cache.PlatformsKey(address), &cached); err == nil && hit {
			respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	detected, err := s.advisor.DetectPlatforms(ctx, address)
	if err != nil {
		respondCategorizedError(w, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.PlatformsKey(address), detected); err != nil {
			logging.FromContext(ctx).WithError(err).Warn("failed to cache platform detection")
		}
	}

	respondJSON(w, http.StatusOK, detected)
}

// handleGetReport renders the combined text report for a wallet address.
// GET /api/addresses/{address}/report
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if address == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "address is required", nil)
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		var cached string
		if hit, err := s.cache.Get(ctx, s.cache.ReportKey(address), &cached); err == nil && hit {
			respondText(w, http.StatusOK, cached)
			return
		}
	}

	report, err := s.advisor.GenerateReport(ctx, address)
	if err != nil {
		respondCategorizedError(w, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.ReportKey(address), report); err != nil {
			logging.FromContext(ctx).WithError(err).Warn("failed to cache report")
		}
	}

	respondText(w, http.StatusOK, report)
}

// handleGetStakingOpportunities returns validator APYs and gas cost
// guidance.
// GET /api/staking/opportunities
func (s *Server) handleGetStakingOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.cache != nil {
		var cached advisor.StakingOpportunities
		if hit, err := s.cache.Get(ctx, s.cache.StakingKey(), &cached); err == nil && hit {
			respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	opportunities, err := s.advisor.GetStakingOpportunities(ctx)
	if err != nil {
		respondCategorizedError(w, err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.StakingKey(), opportunities); err != nil {
			logging.FromContext(ctx).WithError(err).Warn("failed to cache staking opportunities")
		}
	}

	respondJSON(w, http.StatusOK, opportunities)
}
