package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/tiktok"
	"reelsmith/pkg/utils"
)

// GET /api/tiktok/connect
// Hands the frontend an authorization URL and the state token it must echo
// back. No tokens are issued server-side yet.
func (s *Server) handleGetTikTokConnect(c echo.Context) error {
	state := tiktok.NewState()
	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"authorizeUrl": s.TikTok.AuthorizeURL(state),
		"state":        state,
	})
}

// POST /api/tiktok/publish
func (s *Server) handlePostTikTokPublish(c echo.Context) error {
	var req tiktok.PublishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	id, err := s.TikTok.Publish(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, schema.ErrNotImplemented) {
			return c.JSON(http.StatusNotImplemented, utils.ErrJSON("tiktok publishing is not available yet"))
		}
		log.Error("tiktok publish failed", "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON("tiktok publish failed"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"publishId": id,
	})
}
