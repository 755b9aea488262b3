package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post stored in MongoDB. Author is a reference to
// the users collection, resolved at creation time only.
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Author    primitive.ObjectID `json:"author" bson:"author"`
	Image     string             `json:"image" bson:"image"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the multipart form fields for creating a post.
// The optional image travels as the "image" file field.
type CreatePostRequest struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
	UserID  string `form:"userId" json:"userId"`
}

// UpdatePostRequest defines the multipart form fields for updating a post.
// All fields are optional; omitted fields keep their stored value.
type UpdatePostRequest struct {
	Title   string `form:"title" json:"title,omitempty"`
	Content string `form:"content" json:"content,omitempty"`
}
