package repositories

import (
	"webblog/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Exists(id string) (bool, error)
	GetByID(id string) (*models.Comment, error)
	GetAll() ([]models.Comment, error)
	GetByArticle(articleID string) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("comment_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *commentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "comment_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Find(&comments).Error
	return comments, err
}

func (r *commentRepository) GetByArticle(articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("article_id = ?", articleID).Order("created").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(comment *models.Comment) error {
	res := r.db.Model(&models.Comment{}).
		Where("comment_id = ?", comment.CommentID).
		Updates(map[string]interface{}{
			"title":   comment.Title,
			"content": comment.Content,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id string) error {
	res := r.db.Delete(&models.Comment{}, "comment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
