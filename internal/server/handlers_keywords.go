package server

import (
	"net/http"

	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/types"
)

// handleClassify compares keyword lists without a stored job.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req types.ClassifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if err := validateKeywordLists(req.Keywords, req.ResumeKeywords); err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	report, err := keywords.BuildReport(&types.Job{
		Keywords:       req.Keywords,
		ResumeKeywords: req.ResumeKeywords,
		Score:          req.Score,
	})
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handlePlan returns the conversions an auto-update would apply.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req types.PlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if err := validateKeywordLists(req.Similar, req.ResumeKeywords); err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	pairs := keywords.PlanConversions(req.Similar, req.ResumeKeywords)
	s.jsonResponse(w, http.StatusOK, types.ConversionPlan{Conversions: pairs})
}

// handleRewrite applies a conversion plan to a text.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req types.RewriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RewriteResponse{
		Text: keywords.Rewrite(req.Text, req.Conversions),
	})
}

// validateKeywordLists reports empty skill or value fields with their list and index,
// before the struct validator sees them.
func validateKeywordLists(jobKeywords, resumeKeywords []types.Keyword) error {
	if err := keywords.ValidateKeywords(keywords.ListJobKeywords, jobKeywords); err != nil {
		return err
	}
	return keywords.ValidateKeywords(keywords.ListResumeKeywords, resumeKeywords)
}
