package server

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const maxRequestBody = 1 << 20

var (
	errNotJSON       = errors.New("request content type is not JSON")
	errInvalidJSON   = errors.New("request body is not valid JSON")
	errMissingFields = errors.New("request body is missing required fields")
)

// isJSONRequest reports whether the request declares a JSON body, either
// application/json or a structured +json type.
func isJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || (strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

type commentInput struct {
	Header  string
	Content string
}

// decodeCommentInput requires a JSON object carrying both header and
// content. Only presence is checked; non-string values are rendered with
// their JSON text.
func decodeCommentInput(r *http.Request) (commentInput, error) {
	if !isJSONRequest(r) {
		return commentInput{}, errNotJSON
	}
	if r.Body == nil {
		return commentInput{}, errInvalidJSON
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil || !gjson.ValidBytes(body) {
		return commentInput{}, errInvalidJSON
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return commentInput{}, errMissingFields
	}
	header := doc.Get("header")
	content := doc.Get("content")
	if !header.Exists() || !content.Exists() {
		return commentInput{}, errMissingFields
	}
	return commentInput{Header: header.String(), Content: content.String()}, nil
}

func invalidRequestMessage(err error) string {
	switch {
	case errors.Is(err, errNotJSON):
		return "Request must be JSON"
	case errors.Is(err, errInvalidJSON):
		return "Request body must be valid JSON"
	default:
		return "Missing required fields"
	}
}
