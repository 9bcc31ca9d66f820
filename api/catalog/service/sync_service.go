package service

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/pawhub/pawhub/api/catalog/repository"
	platform "github.com/pawhub/pawhub/api/platform/service"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/petsource"
	"github.com/pawhub/pawhub/pkg/queue"
	"github.com/pawhub/pawhub/pkg/websocket"
)

// SyncResult summarizes one sync pass
type SyncResult struct {
	SheltersUpserted int   `json:"sheltersUpserted"`
	AnimalsCreated   int   `json:"animalsCreated"`
	AnimalsUpdated   int   `json:"animalsUpdated"`
	AnimalsVanished  int64 `json:"animalsVanished"`
	PhotosQueued     int   `json:"photosQueued"`
}

// SyncService pulls the upstream catalog into the local database
type SyncService struct {
	logger            lib.Logger
	config            lib.Config
	cache             lib.Cache
	client            *petsource.Client
	queue             *queue.Queue
	hub               *websocket.Hub
	photoService      platform.PhotoService
	animalRepository  repository.AnimalRepository
	shelterRepository repository.ShelterRepository
}

// NewSyncService creates a new sync service and, when a schedule is
// configured, registers the recurring sync task
func NewSyncService(
	logger lib.Logger,
	config lib.Config,
	cache lib.Cache,
	crontab lib.Crontab,
	q *queue.Queue,
	hub *websocket.Hub,
	photoService platform.PhotoService,
	animalRepository repository.AnimalRepository,
	shelterRepository repository.ShelterRepository,
) SyncService {
	svc := SyncService{
		logger:            logger,
		config:            config,
		cache:             cache,
		queue:             q,
		hub:               hub,
		photoService:      photoService,
		animalRepository:  animalRepository,
		shelterRepository: shelterRepository,
	}

	upstream := config.Upstream
	if upstream != nil && upstream.Enable {
		svc.client = petsource.New(petsource.Config{
			BaseURL:      upstream.BaseURL,
			ClientID:     upstream.ClientID,
			ClientSecret: upstream.ClientSecret,
			PageSize:     upstream.PageSize,
		})

		if upstream.Schedule != "" {
			err := crontab.AddTask("catalog-sync", upstream.Schedule, func(ctx context.Context) {
				if _, err := svc.Run(ctx); err != nil {
					logger.Zap.Errorf("scheduled catalog sync failed: %v", err)
				}
			})
			if err != nil {
				logger.Zap.Errorf("failed to schedule catalog sync: %v", err)
			}
		}
	}

	return svc
}

// Enabled reports whether upstream sync is configured
func (a SyncService) Enabled() bool {
	return a.client != nil
}

// Run executes one full sync pass: shelters first, then every page of
// listings, then the vanished sweep
func (a SyncService) Run(ctx context.Context) (*SyncResult, error) {
	if a.client == nil {
		return nil, errors.UpstreamDisabled
	}

	result := new(SyncResult)

	if err := a.syncShelters(ctx, result); err != nil {
		return nil, err
	}

	seen, err := a.syncAnimals(ctx, result)
	if err != nil {
		return nil, err
	}

	vanishedIDs, err := a.animalRepository.MarkVanished(seen, constants.AnimalStatusAdopted)
	if err != nil {
		return nil, err
	}
	result.AnimalsVanished = int64(len(vanishedIDs))
	for _, id := range vanishedIDs {
		a.invalidateDetail(id)
	}

	a.logger.Zap.Infof(
		"catalog sync finished: %d shelters, %d created, %d updated, %d vanished, %d photos queued",
		result.SheltersUpserted, result.AnimalsCreated, result.AnimalsUpdated,
		result.AnimalsVanished, result.PhotosQueued,
	)

	return result, nil
}

func (a SyncService) syncShelters(ctx context.Context, result *SyncResult) error {
	for page := 1; ; page++ {
		orgs, totalPages, err := a.client.ListOrganizations(ctx, page)
		if err != nil {
			return err
		}

		for _, org := range orgs {
			if err := a.upsertShelter(org); err != nil {
				return err
			}
			result.SheltersUpserted++
		}

		if page >= totalPages {
			return nil
		}
	}
}

func (a SyncService) upsertShelter(org petsource.Organization) error {
	shelter := &catalog.Shelter{
		ExternalID: org.ID,
		Name:       org.Name,
		City:       org.Address.City,
		Email:      org.Email,
		Phone:      org.Phone,
	}

	existing, err := a.shelterRepository.GetByExternalID(org.ID)
	if err != nil {
		if errors.Is(err, errors.ShelterRecordNotFound) {
			return a.shelterRepository.Create(shelter)
		}
		return err
	}

	return a.shelterRepository.Update(existing.ID, shelter)
}

func (a SyncService) syncAnimals(ctx context.Context, result *SyncResult) ([]string, error) {
	seen := make([]string, 0, 256)

	for page := 1; ; page++ {
		animalPage, err := a.client.ListAnimals(ctx, page)
		if err != nil {
			return nil, err
		}

		for _, upstream := range animalPage.Animals {
			externalID, err := a.upsertAnimal(upstream, result)
			if err != nil {
				return nil, err
			}
			seen = append(seen, externalID)
		}

		if page >= animalPage.Pagination.TotalPages {
			return seen, nil
		}
	}
}

func (a SyncService) upsertAnimal(upstream petsource.Animal, result *SyncResult) (string, error) {
	externalID := strconv.FormatInt(upstream.ID, 10)
	incoming := mapUpstreamAnimal(upstream, externalID)

	if shelter, err := a.shelterRepository.GetByExternalID(upstream.OrganizationID); err == nil {
		incoming.ShelterID = shelter.ID
	}

	existing, err := a.animalRepository.GetByExternalID(externalID)
	if err != nil {
		if !errors.Is(err, errors.AnimalRecordNotFound) {
			return "", err
		}

		if err := a.animalRepository.Create(incoming); err != nil {
			return "", err
		}

		result.AnimalsCreated++
		a.hub.Broadcast(websocket.TopicAnimalCreated, incoming)
		a.queuePhotoFetch(incoming.ID, upstream.PhotoURL(), result)

		return externalID, nil
	}

	// removed locally: leave it alone instead of resurrecting the row
	if existing.IsDeleted == 1 {
		return externalID, nil
	}

	if !animalChanged(existing, incoming) {
		return externalID, nil
	}

	if err := a.animalRepository.Update(existing.ID, incoming); err != nil {
		return "", err
	}

	result.AnimalsUpdated++
	incoming.ID = existing.ID
	a.invalidateDetail(existing.ID)
	a.hub.Broadcast(websocket.TopicAnimalUpdated, incoming)

	if url := upstream.PhotoURL(); url != "" && existing.PhotoURL == "" {
		a.queuePhotoFetch(existing.ID, url, result)
	}

	return externalID, nil
}

// queuePhotoFetch enqueues a background task that downloads the upstream
// photo into our own storage and repoints the listing at it
func (a SyncService) queuePhotoFetch(animalID uint64, url string, result *SyncResult) {
	if url == "" {
		return
	}

	task := queue.FuncTask{
		Kind: "photo-fetch",
		Fn: func(ctx context.Context) error {
			return a.fetchPhoto(ctx, animalID, url)
		},
	}

	if a.queue.Submit(task) {
		result.PhotosQueued++
	}
}

func (a SyncService) fetchPhoto(ctx context.Context, animalID uint64, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("photo download: status %d", resp.StatusCode)
	}

	filename := fmt.Sprintf("animal-%d%s", animalID, photoExtension(url))
	info, err := a.photoService.Upload(filename, resp.Body, resp.ContentLength, resp.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	if err := a.animalRepository.UpdatePhotoURL(animalID, info.URL); err != nil {
		return err
	}

	a.invalidateDetail(animalID)

	return nil
}

// invalidateDetail drops the cached detail row after a sync mutation
func (a SyncService) invalidateDetail(id uint64) {
	if _, err := a.cache.Delete(detailCacheKey(id)); err != nil {
		a.logger.Zap.Warnf("detail cache invalidation failed: %v", err)
	}
}

func photoExtension(url string) string {
	ext := path.Ext(url)
	if i := strings.IndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	if ext == "" {
		ext = ".jpg"
	}
	return ext
}

// mapUpstreamAnimal converts an upstream listing into our model
func mapUpstreamAnimal(upstream petsource.Animal, externalID string) *catalog.Animal {
	return &catalog.Animal{
		ExternalID:  externalID,
		Name:        upstream.Name,
		Species:     strings.ToLower(upstream.Type),
		Breed:       upstream.Breeds.Primary,
		Gender:      mapGender(upstream.Gender),
		AgeMonths:   mapAgeMonths(upstream.Age),
		Size:        mapSize(upstream.Size),
		Description: upstream.Description,
		Status:      mapStatus(upstream.Status),
	}
}

func mapGender(gender string) string {
	switch strings.ToLower(gender) {
	case "male", "female":
		return strings.ToLower(gender)
	default:
		return "unknown"
	}
}

// mapAgeMonths turns the upstream age bracket into a representative
// month count so the local age range filters keep working
func mapAgeMonths(age string) int {
	switch strings.ToLower(age) {
	case "baby":
		return 6
	case "young":
		return 18
	case "adult":
		return 48
	case "senior":
		return 96
	default:
		return 0
	}
}

func mapSize(size string) string {
	switch strings.ToLower(size) {
	case "small":
		return "small"
	case "medium":
		return "medium"
	case "large":
		return "large"
	case "extra large", "xlarge":
		return "xlarge"
	default:
		return ""
	}
}

func mapStatus(status string) string {
	switch strings.ToLower(status) {
	case "adoptable":
		return constants.AnimalStatusAvailable
	case "adopted":
		return constants.AnimalStatusAdopted
	default:
		return constants.AnimalStatusPending
	}
}

// animalChanged compares the fields sync maintains
func animalChanged(existing, incoming *catalog.Animal) bool {
	return existing.Name != incoming.Name ||
		existing.Species != incoming.Species ||
		existing.Breed != incoming.Breed ||
		existing.Gender != incoming.Gender ||
		existing.AgeMonths != incoming.AgeMonths ||
		existing.Size != incoming.Size ||
		existing.Description != incoming.Description ||
		existing.Status != incoming.Status ||
		existing.ShelterID != incoming.ShelterID
}
