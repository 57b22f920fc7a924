package server

import (
	"log"
	"net/http"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/types"
)

// JobListResponse wraps a page of jobs.
type JobListResponse struct {
	Jobs  []types.Job `json:"jobs"`
	Count int         `json:"count"`
}

// ReportListResponse wraps the scorecards of recent jobs.
type ReportListResponse struct {
	Reports []*types.KeywordReport `json:"reports"`
	Count   int                    `json:"count"`
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit, err := listLimit(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	jobs, err := s.studio.ListJobs(r.Context(), limit)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, JobListResponse{Jobs: jobs, Count: len(jobs)})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit, err := listLimit(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	reports, err := s.studio.Reports(r.Context(), limit)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	if reports == nil {
		reports = []*types.KeywordReport{}
	}
	s.jsonResponse(w, http.StatusOK, ReportListResponse{Reports: reports, Count: len(reports)})
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var doc types.JobDocument
	if err := decodeJSON(w, r, &doc); err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	job, err := s.studio.CreateJob(r.Context(), &doc)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	job, err := s.studio.GetJob(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleJobKeywords returns the keyword scorecard for a job.
func (s *Server) handleJobKeywords(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	report, err := s.studio.Report(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	highlight, err := s.studio.Highlight(r.Context(), id, r.URL.Query().Get("skill"))
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, highlight)
}

// handleResumeTex downloads the current resume text as a LaTeX document.
func (s *Server) handleResumeTex(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	job, err := s.studio.GetJob(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	tex, err := rendering.RenderResumeLaTeX(job)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.tex")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(tex))
}

// handleResumePDF downloads the current resume compiled to PDF.
func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	job, err := s.studio.GetJob(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	pdf, err := rendering.RenderResumePDF(r.Context(), job)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleAutoUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	result, err := s.studio.AutoUpdate(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	logEdit(r, "auto-update", len(result.Conversions))
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	var req types.SaveResumeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	job, err := s.studio.SaveResume(r.Context(), id, req.ResumeText)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	logEdit(r, "save", 0)
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleResetResume(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}

	job, err := s.studio.ResetResume(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, r, err)
		return
	}
	logEdit(r, "reset", 0)
	s.jsonResponse(w, http.StatusOK, job)
}

func logEdit(r *http.Request, action string, conversions int) {
	editor, err := middleware.EditorID(r)
	if err != nil {
		return
	}
	log.Printf("[studio] %s on job %s by editor %s (conversions=%d)", action, r.PathValue("id"), editor, conversions)
}
