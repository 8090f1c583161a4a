// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// Post is a blog entry owned by a single author.
type Post struct {
	PostID    int64      `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Content   string     `json:"content"`
	ImagePath string     `json:"imagePath,omitempty"`
	AuthorID  int64      `json:"-"`
	Author    PostAuthor `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostAuthor is the part of the author account shown next to a post.
type PostAuthor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// PostUpdate is a partial update of a post. Nil fields are kept.
type PostUpdate struct {
	PostID    int64   `json:"-"`
	Title     *string `json:"title,omitempty"`
	Category  *string `json:"category,omitempty"`
	Content   *string `json:"content,omitempty"`
	ImagePath *string `json:"imagePath,omitempty"`
}

// IsEmpty reports whether the update touches no column.
func (p PostUpdate) IsEmpty() bool {
	return p.Title == nil && p.Category == nil && p.Content == nil && p.ImagePath == nil
}

// PostFilter narrows GET /posts. Zero values disable a filter.
type PostFilter struct {
	Category string
	AuthorID int64
	Limit    uint64
}

// Upload is a file received from a multipart form and headed for object storage.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
