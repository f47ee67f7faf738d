package model

import "time"

type Note struct {
	NoteID    string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Tags      []string  `bson:"tags" json:"tags"`
	IsPinned  bool      `bson:"is_pinned" json:"isPinned"`
	CreatedOn time.Time `bson:"created_on" json:"createdOn"`
}
