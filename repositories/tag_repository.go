package repositories

import (
	"webblog/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	Exists(id string) (bool, error)
	ExistsByName(name string) (bool, error)
	GetByID(id string) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	GetAll(includeArticles bool) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id string) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("tag_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *tagRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *tagRepository) GetByID(id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "tag_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetAll(includeArticles bool) ([]models.Tag, error) {
	var tags []models.Tag
	query := r.db.Order("name")
	if includeArticles {
		query = query.Preload("Articles")
	}
	err := query.Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(tag *models.Tag) error {
	res := r.db.Model(&models.Tag{}).
		Where("tag_id = ?", tag.TagID).
		Update("name", tag.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tagRepository) Delete(id string) error {
	res := r.db.Delete(&models.Tag{}, "tag_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
