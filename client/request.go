package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Request describes one outbound API call. Requests are plain values: the
// pipeline never mutates them, and the retry-once state for the 401 recovery
// path is tracked per dispatch rather than on the request itself, so a
// Request can safely be reused or shared across goroutines.
type Request struct {
	// Method is the HTTP method (http.MethodGet etc.).
	Method string

	// Path is the API path relative to the base URL, e.g. "/hr/employees".
	Path string

	// Query holds optional query parameters.
	Query url.Values

	// Body, when non-nil, is JSON-encoded into the request body.
	Body any

	// RawBody, when non-nil, is sent verbatim with ContentType. Used for
	// multipart uploads. Takes precedence over Body.
	RawBody     []byte
	ContentType string

	// Header holds optional extra headers. Authorization is owned by the
	// pipeline and overwritten if set here.
	Header http.Header
}

// MultipartFile is one file part of a multipart upload.
type MultipartFile struct {
	// Field is the form field name, e.g. "file".
	Field string
	// Name is the file name reported to the backend.
	Name string
	// Content is the file data. It is read fully when the request is built
	// so the body can be replayed on the 401 retry path.
	Content io.Reader
}

// NewMultipartRequest builds a POST request with a multipart/form-data body
// from plain form fields plus one file. The body is buffered up front: the
// refresh coordinator may need to resend it, and a consumed stream cannot be
// replayed.
func NewMultipartRequest(path string, fields map[string]string, file MultipartFile) (Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return Request{}, fmt.Errorf("client: writing form field %q: %w", field, err)
		}
	}

	part, err := writer.CreateFormFile(file.Field, file.Name)
	if err != nil {
		return Request{}, fmt.Errorf("client: creating file part %q: %w", file.Field, err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return Request{}, fmt.Errorf("client: reading file %q: %w", file.Name, err)
	}
	if err := writer.Close(); err != nil {
		return Request{}, fmt.Errorf("client: finalizing multipart body: %w", err)
	}

	return Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     buf.Bytes(),
		ContentType: writer.FormDataContentType(),
	}, nil
}

// url builds the absolute request URL.
func (r Request) url(baseURL string) string {
	requestURL := baseURL + r.Path
	if len(r.Query) > 0 {
		requestURL += "?" + r.Query.Encode()
	}
	return requestURL
}
