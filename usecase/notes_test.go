package usecase

import (
	"context"
	"errors"
	"testing"

	"main/dto"
)

func TestCreateNoteValidation(t *testing.T) {
	svc := &NotesService{}

	tests := []struct {
		name    string
		req     dto.AddNoteRequest
		wantMsg string
	}{
		{"missing title", dto.AddNoteRequest{Content: "C"}, "Title is required."},
		{"missing content", dto.AddNoteRequest{Title: "T"}, "Content is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNote(context.Background(), "user-1", tt.req)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Reason != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, vErr.Reason)
			}
		})
	}
}

func TestUpdateNoteRejectsEmptyPatch(t *testing.T) {
	svc := &NotesService{}

	_, err := svc.UpdateNote(context.Background(), "note-1", "user-1", dto.EditNoteRequest{})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Reason != "No changes provided." {
		t.Errorf("expected no-changes message, got %q", vErr.Reason)
	}
}

func TestSearchNotesRequiresQuery(t *testing.T) {
	svc := &NotesService{}

	_, err := svc.SearchNotes(context.Background(), "user-1", "")

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Reason != "Query is required." {
		t.Errorf("expected query-required message, got %q", vErr.Reason)
	}
}
