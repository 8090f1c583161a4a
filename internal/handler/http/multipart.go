package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
)

// multipartMemory is the part of a form kept in memory; the rest spills to
// temporary files.
const multipartMemory = 1 << 20

// formSlack leaves room for the text fields next to a maximum-size file.
const formSlack = 64 << 10

type multipartForm struct {
	form  *multipart.Form
	files []multipart.File
}

// parseMultipart reads a multipart body capped at the configured upload limit.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) (*multipartForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.UploadLimit()+formSlack)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, service.ErrUploadTooBig
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return &multipartForm{form: r.MultipartForm}, nil
}

// value returns the field and whether it was sent at all.
func (f *multipartForm) value(field string) (string, bool) {
	values, ok := f.form.Value[field]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// file opens the named file part. It returns nil, nil when none was sent.
func (f *multipartForm) file(field string) (*models.Upload, error) {
	headers := f.form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}

	header := headers[0]
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	f.files = append(f.files, file)

	return &models.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, nil
}

func (f *multipartForm) close() {
	for _, file := range f.files {
		_ = file.Close()
	}
	_ = f.form.RemoveAll()
}
