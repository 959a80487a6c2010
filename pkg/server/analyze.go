package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/utils"
)

// POST /api/analyze
func (s *Server) handlePostAnalyze(c echo.Context) error {
	var req schema.AnalysisRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request body in /api/analyze", "error", err)
		ve := schema.NewValidationError(schema.InvalidType, "prompt must be a string in a JSON body")
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(ve.Message))
	}

	result, err := s.Analyzer.Analyze(c.Request().Context(), req.Prompt)
	if err != nil {
		if ve, ok := schema.AsValidationError(err); ok {
			log.Warn("prompt rejected", "reason", ve.Reason)
			return c.JSON(http.StatusBadRequest, utils.ErrJSON(ve.Message))
		}
		log.Error("analysis failed", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("analysis failed"))
	}

	return c.JSON(http.StatusOK, schema.AnalyzeResponse{
		Success:  true,
		Analysis: result,
	})
}

// POST /api/enhance
func (s *Server) handlePostEnhance(c echo.Context) error {
	var req schema.AnalysisRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request body in /api/enhance", "error", err)
		ve := schema.NewValidationError(schema.InvalidType, "prompt must be a string in a JSON body")
		return c.JSON(http.StatusBadRequest, utils.ErrJSON(ve.Message))
	}

	enh, err := s.Analyzer.Enhance(c.Request().Context(), req.Prompt)
	if err != nil {
		if ve, ok := schema.AsValidationError(err); ok {
			log.Warn("prompt rejected", "reason", ve.Reason)
			return c.JSON(http.StatusBadRequest, utils.ErrJSON(ve.Message))
		}
		log.Error("enhancement failed", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("enhancement failed"))
	}

	return c.JSON(http.StatusOK, schema.EnhanceResponse{
		Success:        true,
		EnhancedPrompt: enh.EnhancedPrompt,
		Changes:        enh.Changes,
		Analysis:       enh.Analysis,
	})
}
