package services

import (
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/config"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/storage"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/utils"
)

// Image form fields arrive as image_<n>_<field> text values plus an
// image_<n> file attachment, where <n> groups the fields of one image.
const imageFieldPrefix = "image_"

// ImageIntent is one assembled image record from a multipart form. Status
// discriminates update intents: "old" references an existing image by
// FileName, "new" carries an uploaded file.
type ImageIntent struct {
	Alt       string
	Thumbnail bool
	Status    string
	FileName  string
	File      *multipart.FileHeader
}

// GroupImageFields assembles the image_* form values and attachments into
// per-key intents. Field keys with fewer than three underscore-separated
// parts are skipped.
func GroupImageFields(values map[string][]string, files map[string][]*multipart.FileHeader) map[string]*ImageIntent {
	intents := make(map[string]*ImageIntent)

	get := func(key string) *ImageIntent {
		intent, ok := intents[key]
		if !ok {
			intent = &ImageIntent{}
			intents[key] = intent
		}
		return intent
	}

	for key, vals := range values {
		if !strings.HasPrefix(key, imageFieldPrefix) {
			continue
		}
		parts := strings.SplitN(key, "_", 3)
		if len(parts) < 3 {
			continue
		}

		value := ""
		if len(vals) > 0 {
			value = vals[0]
		}

		intent := get(imageFieldPrefix + parts[1])
		switch parts[2] {
		case "alt":
			intent.Alt = value
		case "thumbnail":
			intent.Thumbnail = strings.EqualFold(value, "true")
		case "status":
			intent.Status = value
		case "filename":
			intent.FileName = value
		}
	}

	for key, headers := range files {
		if !strings.HasPrefix(key, imageFieldPrefix) || len(headers) == 0 {
			continue
		}
		get(key).File = headers[0]
	}

	return intents
}

// sortedIntentKeys orders intent keys by their numeric index so images are
// processed in the order the client numbered them.
func sortedIntentKeys(intents map[string]*ImageIntent) []string {
	keys := make([]string, 0, len(intents))
	for key := range intents {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(strings.TrimPrefix(keys[i], imageFieldPrefix))
		b, errB := strconv.Atoi(strings.TrimPrefix(keys[j], imageFieldPrefix))
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

// BuildFileName derives the stored name for an upload from the owning
// portfolio id, a seconds-since-epoch timestamp captured once per request,
// and the original filename.
func BuildFileName(ownerID int, timestamp int64, original string) string {
	return fmt.Sprintf("%d_%d_%s", ownerID, timestamp, original)
}

// MediaIngestor validates uploads and writes their bytes to the file store.
type MediaIngestor struct {
	files  *storage.Files
	upload config.UploadConfig
}

// NewMediaIngestor creates a media ingestor.
func NewMediaIngestor(files *storage.Files, upload config.UploadConfig) *MediaIngestor {
	return &MediaIngestor{files: files, upload: upload}
}

// ValidateUpload checks an upload against the configured size and
// extension policy.
func (m *MediaIngestor) ValidateUpload(file *multipart.FileHeader) error {
	if m.upload.MaxFileSizeBytes > 0 && file.Size > m.upload.MaxFileSizeBytes {
		return validationError("file %s exceeds the maximum allowed size of %d bytes", file.Filename, m.upload.MaxFileSizeBytes)
	}

	if len(m.upload.AllowedExtensions) == 0 {
		return nil
	}
	ext := utils.GetFileExtension(file.Filename)
	for _, allowed := range m.upload.AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return validationError("file type .%s is not allowed", ext)
}

// SaveUpload validates the upload and writes it to the file store under a
// deterministic name, returning the name actually stored.
func (m *MediaIngestor) SaveUpload(ownerID int, timestamp int64, file *multipart.FileHeader) (string, error) {
	if err := m.ValidateUpload(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	return m.files.Save(BuildFileName(ownerID, timestamp, file.Filename), src)
}
