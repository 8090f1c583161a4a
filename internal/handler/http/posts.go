// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

const (
	postImageField    = "image"
	postTitleField    = "title"
	postCategoryField = "category"
	postContentField  = "content"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := postFilterFromQuery(r)
	if err != nil {
		writeError(w, r, "Handler.listPosts", err)
		return
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		writeError(w, r, "Handler.listPosts", err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func postFilterFromQuery(r *http.Request) (models.PostFilter, error) {
	query := r.URL.Query()
	filter := models.PostFilter{Category: query.Get("category")}

	if author := query.Get("author"); author != "" {
		authorID, err := strconv.ParseInt(author, 10, 64)
		if err != nil || authorID <= 0 {
			return models.PostFilter{}, fmt.Errorf("%w: author %q", service.ErrInvalidDataProvided, author)
		}
		filter.AuthorID = authorID
	}

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("%w: limit %q", service.ErrInvalidDataProvided, limit)
		}
		filter.Limit = n
	}

	return filter, nil
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromPath(r)
	if err != nil {
		writeError(w, r, "Handler.getPost", err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeError(w, r, "Handler.getPost", err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseMultipart(w, r)
	if err != nil {
		writeError(w, r, "Handler.createPost", err)
		return
	}
	defer form.close()

	image, err := form.file(postImageField)
	if err != nil {
		writeError(w, r, "Handler.createPost", err)
		return
	}

	ctx := r.Context()
	post := models.Post{}
	post.Title, _ = form.value(postTitleField)
	post.Category, _ = form.value(postCategoryField)
	post.Content, _ = form.value(postContentField)
	post.AuthorID, _ = utils.GetUserIDFromContext(ctx)

	created, err := h.services.PostService.CreatePost(ctx, post, image)
	if err != nil {
		writeError(w, r, "Handler.createPost", err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromPath(r)
	if err != nil {
		writeError(w, r, "Handler.updatePost", err)
		return
	}

	form, err := h.parseMultipart(w, r)
	if err != nil {
		writeError(w, r, "Handler.updatePost", err)
		return
	}
	defer form.close()

	image, err := form.file(postImageField)
	if err != nil {
		writeError(w, r, "Handler.updatePost", err)
		return
	}

	update := models.PostUpdate{PostID: postID}
	if title, ok := form.value(postTitleField); ok {
		update.Title = &title
	}
	if category, ok := form.value(postCategoryField); ok {
		update.Category = &category
	}
	if content, ok := form.value(postContentField); ok {
		update.Content = &content
	}

	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	updated, err := h.services.PostService.UpdatePost(ctx, userID, update, image)
	if err != nil {
		writeError(w, r, "Handler.updatePost", err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func postIDFromPath(r *http.Request) (int64, error) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || postID <= 0 {
		return 0, ErrInvalidPostID
	}
	return postID, nil
}
