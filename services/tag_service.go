package services

import (
	"errors"
	"fmt"

	"webblog/models"
	"webblog/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type TagService interface {
	Insert(req models.NewTagRequest) (*models.Tag, error)
	Update(req models.EditTagRequest) (*models.Tag, error)
	Delete(id string) bool
	GetByID(id string) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	GetAll(includeArticles bool) ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
	logger  zerolog.Logger
}

func NewTagService(tagRepo repositories.TagRepository, logger zerolog.Logger) TagService {
	return &tagService{tagRepo: tagRepo, logger: logger}
}

// Insert rejects names already taken by another tag; the check is a
// case-sensitive exact match.
func (s *tagService) Insert(req models.NewTagRequest) (*models.Tag, error) {
	exists, err := s.tagRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("tag %q: %w", req.Name, models.ErrDuplicate)
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	s.logger.Info().Str("tag", tag.Name).Msg("tag created")
	return tag, nil
}

func (s *tagService) Update(req models.EditTagRequest) (*models.Tag, error) {
	exists, err := s.tagRepo.Exists(req.TagID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("tag %s: %w", req.TagID, models.ErrNotFound)
	}

	tag := &models.Tag{TagID: req.TagID, Name: req.Name}
	if err := s.tagRepo.Update(tag); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	s.logger.Info().Str("tag", tag.Name).Msg("tag updated")
	return tag, nil
}

// Delete reports false when the tag is absent or the delete fails; the root
// cause is only logged.
func (s *tagService) Delete(id string) bool {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error().Err(err).Str("tag_id", id).Msg("failed to load tag for delete")
		}
		return false
	}

	if err := s.tagRepo.Delete(id); err != nil {
		s.logger.Error().Err(err).Str("tag_id", id).Msg("failed to delete tag")
		return false
	}

	s.logger.Info().Str("tag_id", id).Msg("tag deleted")
	return true
}

func (s *tagService) GetByID(id string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetByName(name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetAll(includeArticles bool) ([]models.Tag, error) {
	return s.tagRepo.GetAll(includeArticles)
}
