package services

import (
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/config"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/models"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/requests"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/storage"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/utils"
)

const dateLayout = "2006-01-02"

// previewLimit caps the number of entries in preview listings.
const previewLimit = 3

// PortfolioService implements portfolio mutation and read logic over the
// metadata store and file store. The mutex serializes every
// load-modify-save sequence; the store itself does no coordination.
type PortfolioService struct {
	mu       sync.RWMutex
	store    *storage.Store
	files    *storage.Files
	media    *MediaIngestor
	filesURL string
}

// NewPortfolioService creates a portfolio service.
func NewPortfolioService(cfg *config.MainConfig, store *storage.Store, files *storage.Files) *PortfolioService {
	return &PortfolioService{
		store:    store,
		files:    files,
		media:    NewMediaIngestor(files, cfg.Upload),
		filesURL: cfg.FilesURL(),
	}
}

// Create validates and appends a new portfolio, ingesting any attached
// images. The new id is one above the highest existing id; ids are never
// reused after deletion.
func (s *PortfolioService) Create(in requests.CreatePortfolioRequest, form *multipart.Form) (*models.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolios, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, validationError("title is required")
	}
	if in.Slug == "" {
		return nil, validationError("slug is required")
	}
	if in.Date == "" {
		return nil, validationError("date is required")
	}

	for _, p := range portfolios {
		if p.Title == in.Title {
			return nil, ErrTitleTaken
		}
		if p.Slug == in.Slug {
			return nil, ErrSlugTaken
		}
	}

	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return nil, validationError("date must be in YYYY-MM-DD format")
	}

	newID := 0
	for _, p := range portfolios {
		if p.ID > newID {
			newID = p.ID
		}
	}
	newID++

	images, err := s.ingestNewImages(newID, form)
	if err != nil {
		return nil, err
	}

	portfolio := models.Portfolio{
		ID:          newID,
		Title:       in.Title,
		Slug:        in.Slug,
		Date:        in.Date,
		Description: in.Description,
		Location:    in.Location,
		Client:      in.Client,
		Category:    in.Category,
		Tags:        utils.ParseTags(in.Tags),
		Images:      images,
		Videos:      []models.Video{},
	}

	portfolios = append(portfolios, portfolio)
	if err := s.store.Save(portfolios); err != nil {
		return nil, err
	}

	return &portfolio, nil
}

// ingestNewImages writes every image intent that carries an attached file.
// Intents without a file are silently dropped; the timestamp is captured
// once so all uploads in one request share it.
func (s *PortfolioService) ingestNewImages(ownerID int, form *multipart.Form) ([]models.Image, error) {
	images := []models.Image{}
	if form == nil {
		return images, nil
	}

	intents := GroupImageFields(form.Value, form.File)
	timestamp := time.Now().Unix()

	for _, key := range sortedIntentKeys(intents) {
		intent := intents[key]
		if intent.File == nil {
			continue
		}

		name, err := s.media.SaveUpload(ownerID, timestamp, intent.File)
		if err != nil {
			return nil, err
		}

		alt := intent.Alt
		if alt == "" {
			alt = intent.File.Filename
		}
		images = append(images, models.Image{
			FileName:  name,
			Alt:       alt,
			Thumbnail: intent.Thumbnail,
		})
	}

	return images, nil
}

// Update applies partial field updates and reconciles the image list. An
// existing image absent from the submitted intent set is removed from both
// the file store and the record.
func (s *PortfolioService) Update(id int, in requests.UpdatePortfolioRequest, form *multipart.Form) (*models.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolios, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range portfolios {
		if portfolios[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}
	portfolio := &portfolios[idx]

	if in.Slug != "" {
		for i := range portfolios {
			if i != idx && portfolios[i].Slug == in.Slug {
				return nil, ErrSlugTaken
			}
		}
		portfolio.Slug = in.Slug
	}

	// Empty submitted values mean "leave unchanged"; a field cannot be
	// cleared through the API.
	if in.Title != "" {
		portfolio.Title = in.Title
	}
	if in.Date != "" {
		if _, err := time.Parse(dateLayout, in.Date); err != nil {
			return nil, validationError("date must be in YYYY-MM-DD format")
		}
		portfolio.Date = in.Date
	}
	if in.Description != "" {
		portfolio.Description = in.Description
	}
	if in.Location != "" {
		portfolio.Location = in.Location
	}
	if in.Client != "" {
		portfolio.Client = in.Client
	}
	if in.Category != "" {
		portfolio.Category = in.Category
	}
	if in.Tags != "" {
		portfolio.Tags = utils.ParseTags(in.Tags)
	}

	if err := s.reconcileImages(portfolio, form); err != nil {
		return nil, err
	}

	if err := s.store.Save(portfolios); err != nil {
		return nil, err
	}

	updated := *portfolio
	return &updated, nil
}

// reconcileImages applies the submitted image intents to the portfolio.
// Old-status intents update and retain existing images, new-status intents
// upload and append; everything else currently on the record is deleted.
func (s *PortfolioService) reconcileImages(portfolio *models.Portfolio, form *multipart.Form) error {
	var intents map[string]*ImageIntent
	if form != nil {
		intents = GroupImageFields(form.Value, form.File)
	}

	retained := make(map[string]bool)
	timestamp := time.Now().Unix()

	for _, key := range sortedIntentKeys(intents) {
		intent := intents[key]
		switch intent.Status {
		case "old":
			for i := range portfolio.Images {
				image := &portfolio.Images[i]
				if image.FileName != intent.FileName {
					continue
				}
				if intent.Alt != "" {
					image.Alt = intent.Alt
				} else {
					image.Alt = image.FileName
				}
				image.Thumbnail = intent.Thumbnail
				retained[image.FileName] = true
				break
			}
		case "new":
			if intent.File == nil {
				return ErrMissingUpload
			}
			name, err := s.media.SaveUpload(portfolio.ID, timestamp, intent.File)
			if err != nil {
				return err
			}
			alt := intent.Alt
			if alt == "" {
				alt = intent.File.Filename
			}
			portfolio.Images = append(portfolio.Images, models.Image{
				FileName:  name,
				Alt:       alt,
				Thumbnail: intent.Thumbnail,
			})
			retained[name] = true
		}
	}

	kept := make([]models.Image, 0, len(portfolio.Images))
	for _, image := range portfolio.Images {
		if retained[image.FileName] {
			kept = append(kept, image)
			continue
		}
		// Best-effort cleanup; a missing file is not an error.
		_ = s.files.Remove(image.FileName)
	}
	portfolio.Images = kept

	return nil
}

// Delete removes a portfolio and every file it references. File removal is
// best effort and happens before the record is dropped.
func (s *PortfolioService) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolios, err := s.store.Load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range portfolios {
		if portfolios[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	for _, image := range portfolios[idx].Images {
		_ = s.files.Remove(image.FileName)
	}
	for _, video := range portfolios[idx].Videos {
		_ = s.files.Remove(video.FileName)
	}

	portfolios = append(portfolios[:idx], portfolios[idx+1:]...)
	return s.store.Save(portfolios)
}

// List returns the collection sorted newest first, with media URLs
// materialized. Preview truncates to the newest three entries.
func (s *PortfolioService) List(preview bool) ([]models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	portfolios, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	sortByDateDesc(portfolios)
	if preview && len(portfolios) > previewLimit {
		portfolios = portfolios[:previewLimit]
	}

	for i := range portfolios {
		s.materializeURLs(&portfolios[i])
	}
	if portfolios == nil {
		portfolios = []models.Portfolio{}
	}
	return portfolios, nil
}

// ListPreview returns the newest three entries reduced to the public field
// set, keeping only images flagged as featured.
func (s *PortfolioService) ListPreview() ([]models.PortfolioPreview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	portfolios, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	sortByDateDesc(portfolios)
	if len(portfolios) > previewLimit {
		portfolios = portfolios[:previewLimit]
	}

	previews := make([]models.PortfolioPreview, 0, len(portfolios))
	for _, p := range portfolios {
		images := []models.Image{}
		for _, image := range p.Images {
			if !image.Featured {
				continue
			}
			image.URL = utils.JoinFileURL(s.filesURL, image.FileName)
			images = append(images, image)
		}
		previews = append(previews, models.PortfolioPreview{
			ID:     p.ID,
			Date:   p.Date,
			Title:  p.Title,
			Slug:   p.Slug,
			Images: images,
		})
	}

	return previews, nil
}

// GetBySlug returns the full detail of a single portfolio.
func (s *PortfolioService) GetBySlug(slug string) (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	portfolios, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	for i := range portfolios {
		if portfolios[i].Slug == slug {
			s.materializeURLs(&portfolios[i])
			return &portfolios[i], nil
		}
	}

	return nil, ErrNotFound
}

// materializeURLs joins the configured files URL onto every referenced
// filename. The result is a projection, never persisted.
func (s *PortfolioService) materializeURLs(portfolio *models.Portfolio) {
	for i := range portfolio.Images {
		portfolio.Images[i].URL = utils.JoinFileURL(s.filesURL, portfolio.Images[i].FileName)
	}
	for i := range portfolio.Videos {
		portfolio.Videos[i].URL = utils.JoinFileURL(s.filesURL, portfolio.Videos[i].FileName)
	}
}

// sortByDateDesc sorts newest first. The sort is stable so entries sharing
// a date keep their insertion order.
func sortByDateDesc(portfolios []models.Portfolio) {
	sort.SliceStable(portfolios, func(i, j int) bool {
		return portfolios[i].Date > portfolios[j].Date
	})
}
