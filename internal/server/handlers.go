package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/krishna0743/careerguid-ai/internal/matching"
	"github.com/krishna0743/careerguid-ai/internal/resume"
)

// Count accepts a JSON number or a numeric string. Fractions are truncated
// and values beyond the int32 range are clamped to it.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*c = Count(max(math.MinInt32, min(n, math.MaxInt32)))
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("count must be an integer: %w", err)
	}
	if math.IsNaN(f) {
		return errors.New("count must be an integer")
	}
	*c = Count(int(max(math.MinInt32, min(f, math.MaxInt32))))
	return nil
}

type categoriesResponse struct {
	Categories  []string `json:"categories"`
	KnownSkills []string `json:"known_skills"`
}

type categoryRowsResponse struct {
	Rows []string `json:"rows"`
}

type predictRequest struct {
	Skills string `json:"skills"`
	Count  *Count `json:"count"`
}

type predictResponse struct {
	Prediction []matching.Result `json:"prediction"`
}

type analyzeRequest struct {
	ResumeText string `json:"resume_text"`
}

type analyzeResponse struct {
	ExtractedSkills string          `json:"extracted_skills"`
	CareerDetails   matching.Result `json:"career_details"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleCategoriesAndSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, categoriesResponse{
		Categories:  s.store.Categories(),
		KnownSkills: s.store.KnownSkills(),
	})
}

func (s *Server) handleCategoryRows(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	s.jsonResponse(w, http.StatusOK, categoryRowsResponse{Rows: s.store.RowsForCategory(category)})
}

func (s *Server) handlePredictCareer(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	count := 1
	if req.Count != nil {
		count = int(*req.Count)
	}

	s.jsonResponse(w, http.StatusOK, predictResponse{
		Prediction: matching.Match(s.store, req.Skills, count),
	})
}

func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondAnalysis(w, req.ResumeText)
}

func (s *Server) handleAnalyzeResumeFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("reading upload: %v", err))
		return
	}

	mimeType := resume.DetectMIME(header.Header.Get("Content-Type"), header.Filename)
	text, err := resume.ExtractText(mimeType, data)
	if err != nil {
		var unsupported *resume.UnsupportedTypeError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		s.logger.Warn("extracting resume text",
			zap.String("filename", header.Filename),
			zap.String("mime", mimeType),
			zap.Error(err),
		)
		s.errorResponse(w, http.StatusUnprocessableEntity, "could not read resume document")
		return
	}

	s.respondAnalysis(w, text)
}

func (s *Server) respondAnalysis(w http.ResponseWriter, text string) {
	analysis := matching.AnalyzeResume(s.store, text)
	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		ExtractedSkills: matching.JoinSkills(analysis.Skills),
		CareerDetails:   analysis.Best,
	})
}

func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, chatResponse{Response: s.counselor.Chat(r.Context(), req.Message)})
}

// decodeJSON decodes the request body into dst. An empty body leaves dst at
// its zero value so every field takes its default.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
