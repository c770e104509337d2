package utils

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

// Common utilities used across the portfolio API

// GetFileExtension extracts and normalizes the file extension
func GetFileExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// ParseTags splits a comma-separated tag string into a list, stripping
// whitespace around each tag and dropping empty entries. Returns nil for
// an empty input so absent tags serialize as null, matching the stored
// document.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinFileURL joins the configured files base URL with a stored filename,
// escaping the name so it stays a valid URL path segment.
func JoinFileURL(base, name string) string {
	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(name)
}

// ParseSizeString converts human-readable size strings like "25MB" to bytes
func ParseSizeString(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)

	units := []struct {
		suffix string
		factor float64
	}{
		{"GB", 1024 * 1024 * 1024},
		{"MB", 1024 * 1024},
		{"KB", 1024},
	}

	for _, unit := range units {
		if strings.HasSuffix(sizeStr, unit.suffix) {
			value := strings.TrimSuffix(sizeStr, unit.suffix)
			if size, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				return int64(size * unit.factor), nil
			}
			return 0, fmt.Errorf("invalid size format: %s", sizeStr)
		}
	}

	// Raw byte counts, with or without a trailing "B"
	value := strings.TrimSuffix(sizeStr, "B")
	if size, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
		return size, nil
	}

	return 0, fmt.Errorf("invalid size format: %s", sizeStr)
}
