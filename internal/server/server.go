package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/app"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/chat"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/cooccurrence"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

type Server struct {
	App *app.App
	log *slog.Logger
}

func NewServer(a *app.App) *Server {
	return &Server{
		App: a,
		log: a.Log.With("component", "server"),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)

	api := r.Group("/api")
	api.GET("/filters", s.Filters)
	api.GET("/dashboard", s.Dashboard)
	api.GET("/leaderboard", s.Leaderboard)
	api.GET("/cooccurrence", s.Cooccurrence)
	api.GET("/context", s.Context)

	api.GET("/chat", s.ChatHistory)
	api.POST("/chat", s.Ask)
	api.DELETE("/chat", s.ResetChat)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"articles": s.App.Corpus.Len(),
		"skipped":  s.App.Corpus.Skipped(),
	})
}

func (s *Server) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, s.App.Dashboard.FilterOptions())
}

func (s *Server) Dashboard(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.App.Dashboard.Snapshot(sel))
}

func (s *Server) Leaderboard(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}
	col, ok := column(c)
	if !ok {
		return
	}
	top, ok := intQuery(c, "top", s.App.Config.Context.LeaderboardSize)
	if !ok {
		return
	}

	view := s.App.Dashboard.View(sel)
	c.JSON(http.StatusOK, gin.H{
		"column":   col,
		"articles": len(view),
		"items":    entity.Top(view, col, top),
	})
}

func (s *Server) Cooccurrence(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}
	col, ok := column(c)
	if !ok {
		return
	}
	top, ok := intQuery(c, "top", s.App.Config.Charts.CooccurrenceTop)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, cooccurrence.Compute(s.App.Dashboard.View(sel), col, top))
}

// Context returns the bounded text block the analyst would receive.
func (s *Server) Context(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}
	maxArticles, ok := intQuery(c, "max_articles", s.App.Config.Context.MaxArticles)
	if !ok {
		return
	}

	text := s.App.Summarizer.Summarize(s.App.Dashboard.View(sel), sel, maxArticles)
	c.String(http.StatusOK, text)
}

func (s *Server) ChatHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": s.App.Session.History()})
}

type AskRequest struct {
	Question  string   `json:"question"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Keywords  []string `json:"keywords"`
	Locations []string `json:"locations"`
}

func (s *Server) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	from, to, err := model.DayRange(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must use YYYY-MM-DD"})
		return
	}
	sel := model.Selection{Start: from, End: to, Keywords: req.Keywords, Locations: req.Locations}

	reply, err := s.App.Session.Ask(c.Request.Context(), req.Question, sel)
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		s.log.Error("chat failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process question"})
	default:
		c.JSON(http.StatusOK, reply)
	}
}

func (s *Server) ResetChat(c *gin.Context) {
	s.App.Session.Reset()
	c.Status(http.StatusNoContent)
}
