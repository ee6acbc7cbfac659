package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// PathParamsFunc returns the route parameters of a request.
type PathParamsFunc func(r *http.Request) map[string]string

// ChiPathParams reads the URL parameters of the matched chi route.
func ChiPathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	out := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		out[key] = rctx.URLParams.Values[i]
	}
	return out
}

// Params merges the request data into one map for validation. Sources are
// applied in order, later ones overriding earlier keys: query string, path
// parameters, body. Supported bodies are JSON, urlencoded and multipart
// forms; requests without a body contribute query and path only.
//
// JSON numbers are kept as json.Number. Form keys with a single value become
// strings, repeated keys become []any. Uploaded files become
// *multipart.FileHeader, or []any of them when several share a name.
func Params(r *http.Request, opts ...Option) (map[string]any, error) {
	o := newOptions(opts)
	return o.params(r)
}

func (o *options) params(r *http.Request) (map[string]any, error) {
	out := make(map[string]any)

	query, err := parseQuery(r)
	if err != nil {
		return nil, err
	}
	maps.Copy(out, query)

	for k, v := range o.pathParams(r) {
		out[k] = v
	}

	body, err := o.parseBody(r)
	if err != nil {
		return nil, err
	}
	maps.Copy(out, body)

	return out, nil
}

func parseQuery(r *http.Request) (map[string]any, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
	}
	return formValues(values), nil
}

func (o *options) parseBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return nil, nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json, application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return o.parseJSON(r)
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return formValues(r.PostForm), nil
	case mediaType == "multipart/form-data":
		if params["boundary"] == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
		}
		return o.parseMultipart(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func (o *options) parseJSON(r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, o.cfg.MaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > o.cfg.MaxJSONSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, o.cfg.MaxJSONSize)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be a JSON object, got %T", ErrFailedToParseJSON, data)
	}
	return obj, nil
}

func (o *options) parseMultipart(r *http.Request) (map[string]any, error) {
	if err := r.ParseMultipartForm(o.cfg.MaxMemory); err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}
	if r.MultipartForm == nil {
		return nil, nil
	}

	out := formValues(r.MultipartForm.Value)
	for name, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			fh.Filename = sanitizeFilename(fh.Filename)
		}
		switch len(headers) {
		case 0:
		case 1:
			out[name] = headers[0]
		default:
			list := make([]any, len(headers))
			for i, fh := range headers {
				list[i] = fh
			}
			out[name] = list
		}
	}
	return out, nil
}

func formValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			out[k] = vals[0]
		default:
			list := make([]any, len(vals))
			for i, s := range vals {
				list[i] = s
			}
			out[k] = list
		}
	}
	return out
}

// sanitizeFilename strips directory components and NUL bytes.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
