package llm

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContentItemType represents the kind of a content item.
type ContentItemType string

const (
	ContentItemTypeText  ContentItemType = "text"
	ContentItemTypeImage ContentItemType = "image"
)

// ContentItem is a provider-neutral unit of prompt payload, constructed once
// and never modified. Exactly one of the variant fields is populated,
// according to Type.
type ContentItem struct {
	Type ContentItemType

	// Text is the text body for ContentItemTypeText items.
	Text string

	// Data is the base64-encoded image payload for ContentItemTypeImage items.
	Data string
	// MediaType is the image subtype ("png", "jpeg", ...) without the
	// "image/" prefix.
	MediaType string
}

// NewText creates a text content item.
func NewText(text string) ContentItem {
	return ContentItem{Type: ContentItemTypeText, Text: text}
}

// NewImage creates an image content item from base64-encoded data and an
// image subtype such as "png" or "jpeg".
func NewImage(data, mediaType string) ContentItem {
	return ContentItem{Type: ContentItemTypeImage, Data: data, MediaType: mediaType}
}

// ImageFromFile reads an image from disk and returns it as a base64-encoded
// image content item. The media type is inferred from the file extension.
func ImageFromFile(path string) (ContentItem, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-specified image path is intentional
	if err != nil {
		return ContentItem{}, NewValidationError(fmt.Sprintf("failed to read image file %s", path), err)
	}

	mediaType := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch mediaType {
	case "jpg":
		mediaType = "jpeg"
	case "jpeg", "png", "gif", "webp":
	case "":
		return ContentItem{}, NewValidationError(fmt.Sprintf("cannot infer image type for %s: no file extension", path), nil)
	default:
		return ContentItem{}, NewValidationError(fmt.Sprintf("unsupported image type %q for %s", mediaType, path), nil)
	}

	return NewImage(base64.StdEncoding.EncodeToString(data), mediaType), nil
}
