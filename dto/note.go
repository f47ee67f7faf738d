package dto

type AddNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// EditNoteRequest is a partial patch. Empty strings and nil slices mean
// "leave unchanged"; IsPinned is a pointer so absent and false can be
// told apart.
type EditNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

// PinRequest sets the pinned flag; an absent value is treated as false
type PinRequest struct {
	IsPinned bool `json:"isPinned"`
}
