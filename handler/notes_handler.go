package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	NotesService *usecase.NotesService
}

func NewNotesHandler(notesService *usecase.NotesService) *NotesHandler {
	return &NotesHandler{NotesService: notesService}
}

// AddNote creates a note owned by the caller
func (h *NotesHandler) AddNote(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Request body is required.")
		return
	}

	note, err := h.NotesService.CreateNote(c.Request.Context(), userID, req)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.BadRequest(c, vErr.Reason)
			return
		}
		utils.InternalError(c, "Server error adding note.", err)
		return
	}

	utils.Created(c, "Note added successfully.", gin.H{"note": note})
}

// EditNote applies a partial patch to one of the caller's notes
func (h *NotesHandler) EditNote(c *gin.Context) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	var req dto.EditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Request body is required.")
		return
	}

	note, err := h.NotesService.UpdateNote(c.Request.Context(), noteID, userID, req)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.BadRequest(c, vErr.Reason)
		case errors.Is(err, usecase.ErrNoteNotFound):
			utils.NotFound(c, "Note not found.")
		default:
			utils.InternalError(c, "Server error updating note.", err)
		}
		return
	}

	utils.Success(c, "Note updated successfully.", gin.H{"note": note})
}

// GetAllNotes lists the caller's notes, pinned notes first
func (h *NotesHandler) GetAllNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := h.NotesService.GetUserNotes(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Server error fetching notes.", err)
		return
	}

	utils.Success(c, "All notes retrieved successfully.", gin.H{"notes": notes})
}

// DeleteNote removes one of the caller's notes
func (h *NotesHandler) DeleteNote(c *gin.Context) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	if err := h.NotesService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found.")
			return
		}
		utils.InternalError(c, "Server error deleting note.", err)
		return
	}

	utils.Success(c, "Note deleted successfully.", nil)
}

// UpdatePinned sets the pinned flag on one of the caller's notes.
// An absent or falsy isPinned unpins the note.
func (h *NotesHandler) UpdatePinned(c *gin.Context) {
	noteID := c.Param("noteId")
	userID := c.GetString("user_id")

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.IsPinned = false
	}

	note, err := h.NotesService.SetPinned(c.Request.Context(), noteID, userID, req.IsPinned)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found.")
			return
		}
		utils.InternalError(c, "Server error updating pin status.", err)
		return
	}

	utils.Success(c, "Note pin status updated successfully.", gin.H{"note": note})
}

// SearchNotes matches a query against the caller's note titles and contents
func (h *NotesHandler) SearchNotes(c *gin.Context) {
	userID := c.GetString("user_id")
	query := c.Query("query")

	notes, err := h.NotesService.SearchNotes(c.Request.Context(), userID, query)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.BadRequest(c, vErr.Reason)
			return
		}
		utils.InternalError(c, "Server error searching notes.", err)
		return
	}

	utils.Success(c, "Search results retrieved successfully.", gin.H{"notes": notes})
}
