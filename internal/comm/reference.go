package comm

import (
	"path/filepath"
	"strings"
)

// ReferenceType classifies an attachment by filename extension.
type ReferenceType string

const (
	ReferenceImage ReferenceType = "image"
	ReferenceVideo ReferenceType = "video"
	ReferenceFile  ReferenceType = "file"
)

var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true, "bmp": true,
}

var videoExtensions = map[string]bool{
	"mp4": true, "avi": true, "mov": true, "wmv": true, "webm": true,
}

// Reference describes one attachment inside an entity's (or temp
// workspace's) references folder. Data carries an inline preview payload
// for images and is empty for everything else, including images whose
// bytes could not be read back.
type Reference struct {
	Name      string        `json:"name"`
	Type      ReferenceType `json:"type"`
	Size      int64         `json:"size"`
	Data      string        `json:"data,omitempty"`
	Path      string        `json:"path"`
	Extension string        `json:"extension,omitempty"`
	Width     int           `json:"width,omitempty"`
	Height    int           `json:"height,omitempty"`
}

// ClassifyReference derives the reference type and normalized extension
// from a filename. Unknown extensions classify as ReferenceFile.
func ClassifyReference(name string) (ReferenceType, string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch {
	case imageExtensions[ext]:
		return ReferenceImage, ext
	case videoExtensions[ext]:
		return ReferenceVideo, ext
	default:
		return ReferenceFile, ext
	}
}
