package usecase

import (
	"context"
	"errors"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrNoteNotFound = errors.New("note not found")

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

// CreateNote creates a note owned by userID. Tags default to an empty
// set when not supplied.
func (svc *NotesService) CreateNote(ctx context.Context, userID string, req dto.AddNoteRequest) (*model.Note, error) {
	if req.Title == "" {
		return nil, validationError("Title is required.")
	}
	if req.Content == "" {
		return nil, validationError("Content is required.")
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &model.Note{
		NoteID:    uuid.New().String(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		IsPinned:  false,
		CreatedOn: time.Now(),
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies a partial patch to a note owned by userID. Only
// supplied fields are overwritten. A patch carrying only the pinned
// flag is accepted.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, req dto.EditNoteRequest) (*model.Note, error) {
	if req.Title == "" && req.Content == "" && req.Tags == nil && req.IsPinned == nil {
		return nil, validationError("No changes provided.")
	}

	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	set := bson.M{}
	if req.Title != "" {
		note.Title = req.Title
		set["title"] = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
		set["content"] = req.Content
	}
	if req.Tags != nil {
		note.Tags = req.Tags
		set["tags"] = req.Tags
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
		set["is_pinned"] = *req.IsPinned
	}

	matched, err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, set)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNoteNotFound
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// GetUserNotes returns all of the caller's notes, pinned first
func (svc *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

// DeleteNote removes a note owned by userID
func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	deleted, err := svc.NotesRepo.DeleteNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// SetPinned sets the pinned flag on a note owned by userID
func (svc *NotesService) SetPinned(ctx context.Context, noteID, userID string, isPinned bool) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	note.IsPinned = isPinned
	matched, err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, bson.M{"is_pinned": isPinned})
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNoteNotFound
	}

	utils.TrackNoteOperation("pin")
	return note, nil
}

// SearchNotes matches the query against the caller's note titles and
// contents. No match yields an empty result, not an error.
func (svc *NotesService) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	if query == "" {
		return nil, validationError("Query is required.")
	}

	notes, err := svc.NotesRepo.SearchNotes(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("search")
	return notes, nil
}
