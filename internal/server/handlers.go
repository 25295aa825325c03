package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/notesapi"
	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/quizgen"
	"github.com/abhisek/notequiz/internal/store"
)

const (
	defaultTitle  = "New note"
	defaultUserID = 1
)

type noteHandler struct {
	notes   store.NoteRepo
	gen     quizgen.Generator
	log     *logger.Logger
	version string
}

func (h *noteHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, notesapi.HealthResponse{Status: "ok", Version: h.version})
}

// createNote saves the note, generates quizzes from it, saves those and
// answers with both. A generation failure leaves the note saved.
func (h *noteHandler) createNote(c *gin.Context) {
	var req notesapi.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "note is too large")
			return
		}
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respondError(c, http.StatusBadRequest, "content must not be blank")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultTitle
	}
	userID := req.UserID
	if userID <= 0 {
		userID = defaultUserID
	}

	reqID := c.GetString(requestIDHeader)
	ctx := llm.WithRequestID(c.Request.Context(), reqID)
	log := h.log.With("request_id", reqID)

	note, err := h.notes.Create(ctx, store.NewNote{UserID: userID, Title: title, Content: req.Content})
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to save note")
		return
	}

	items, err := h.gen.Generate(ctx, req.Content)
	if err != nil {
		log.Error("quiz generation failed", "note_id", note.ID, "error", err)
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "quiz generation failed: "+err.Error())
		return
	}

	saved, err := h.notes.AddQuizzes(ctx, note.ID, items)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to save quizzes")
		return
	}

	log.Info("note created", "note_id", note.ID, "quizzes", len(saved))
	c.JSON(http.StatusOK, notesapi.CreateNoteResponse{
		Note:    toAPINote(note),
		Quizzes: toItems(saved),
	})
}

func (h *noteHandler) getNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid note id")
		return
	}

	note, err := h.notes.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load note")
		return
	}
	if note == nil {
		respondError(c, http.StatusNotFound, "note not found")
		return
	}

	c.JSON(http.StatusOK, notesapi.CreateNoteResponse{
		Note:    toAPINote(note),
		Quizzes: toItems(note.Quizzes),
	})
}

func respondError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, notesapi.ErrorResponse{Detail: detail})
}

func toAPINote(n *store.Note) notesapi.Note {
	return notesapi.Note{ID: n.ID, Title: n.Title, Content: n.Content}
}

func toItems(qs []store.Quiz) []quiz.Item {
	items := make([]quiz.Item, len(qs))
	for i, q := range qs {
		items[i] = q.Item
	}
	return items
}
