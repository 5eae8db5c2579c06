package repositories

import (
	"webblog/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	Exists(id string) (bool, error)
	GetByID(id string) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetByAuthor(authorID string) ([]models.Article, error)
	Update(article *models.Article, attach, detach []models.Tag) error
	Delete(id string) error
	IncrementViews(id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create inserts the article together with its tag join rows in a single
// transaction.
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("article_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) GetByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Comments").
		First(&article, "article_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Tags").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByAuthor(authorID string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ?", authorID).
		Preload("Author").
		Preload("Tags").
		Find(&articles).Error
	return articles, err
}

// Update persists title/content changes and the tag-set diff in one
// transaction. The UPDATE is guarded by the version the caller loaded; a
// concurrent edit leaves zero rows affected and surfaces as ErrConflict.
func (r *articleRepository) Update(article *models.Article, attach, detach []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Article{}).
			Where("article_id = ? AND version = ?", article.ArticleID, article.Version).
			Updates(map[string]interface{}{
				"title":   article.Title,
				"content": article.Content,
				"version": article.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrConflict
		}

		if len(attach) > 0 {
			if err := tx.Model(article).Association("Tags").Append(attach); err != nil {
				return err
			}
		}
		if len(detach) > 0 {
			if err := tx.Model(article).Association("Tags").Delete(detach); err != nil {
				return err
			}
		}

		article.Version++
		return nil
	})
}

// Delete removes the article; comments and article_tags join rows go with it
// via the cascading foreign keys, tags themselves stay.
func (r *articleRepository) Delete(id string) error {
	res := r.db.Delete(&models.Article{}, "article_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) IncrementViews(id string) error {
	res := r.db.Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("count_of_views", gorm.Expr("count_of_views + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
