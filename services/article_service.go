package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"webblog/models"
	"webblog/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ArticleService interface {
	Add(req models.NewArticleRequest) (*models.Article, error)
	Edit(req models.EditArticleRequest) (*models.Article, error)
	Delete(id string) error
	GetByID(id string) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetByAuthor(authorID string) ([]models.Article, error)
	Sort(articles []models.Article, sortOrder string) []models.Article
	IncrementViews(id string)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
	userRepo    repositories.UserRepository
	logger      zerolog.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository, logger zerolog.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Add creates an article for the given author. Unchecked tags are stripped
// from the request; checked tag names are resolved against existing tags and
// missing ones are created. The article and its tag join rows are persisted
// together.
func (s *articleService) Add(req models.NewArticleRequest) (*models.Article, error) {
	author, err := s.userRepo.GetByID(req.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %s: %w", req.AuthorID, models.ErrNotFound)
		}
		return nil, err
	}

	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:    req.Title,
		Content:  req.Content,
		Created:  time.Now(),
		AuthorID: author.UserID,
		Tags:     tags,
	}

	if err := s.articleRepo.Create(article); err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("failed to create article")
		return nil, err
	}
	article.Author = *author

	s.logger.Info().Str("article_id", article.ArticleID).Str("title", article.Title).Msg("article created")
	return article, nil
}

// Edit replaces title and content and reconciles the tag set: checked tags
// missing from the article are attached (created when no tag with that name
// exists), unchecked tags present on the article are detached. Tags the
// request does not mention are left alone. A concurrent edit of the same
// article surfaces as ErrConflict unless the row is gone, which is reported
// as ErrNotFound.
func (s *articleService) Edit(req models.EditArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(req.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content

	attach, detach, err := s.reconcileTags(article, req.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.Update(article, attach, detach); err != nil {
		if errors.Is(err, models.ErrConflict) {
			exists, checkErr := s.articleRepo.Exists(req.ArticleID)
			if checkErr == nil && !exists {
				return nil, models.ErrNotFound
			}
			s.logger.Warn().Str("article_id", req.ArticleID).Msg("concurrent edit rejected")
			return nil, models.ErrConflict
		}
		s.logger.Error().Err(err).Str("article_id", req.ArticleID).Msg("failed to edit article")
		return nil, err
	}

	article.Tags = applyTagDiff(article.Tags, attach, detach)

	s.logger.Info().Str("article_id", article.ArticleID).Str("title", article.Title).Msg("article edited")
	return article, nil
}

func (s *articleService) Delete(id string) error {
	if err := s.articleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error().Err(err).Str("article_id", id).Msg("failed to delete article")
		return err
	}
	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

func (s *articleService) GetByID(id string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetAll() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

func (s *articleService) GetByAuthor(authorID string) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(authorID)
}

// Sort orders articles by the given key: "Title" and "Author" ascending (the
// latter by author email), anything else newest first.
func (s *articleService) Sort(articles []models.Article, sortOrder string) []models.Article {
	switch sortOrder {
	case "Title":
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Title < articles[j].Title
		})
	case "Author":
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Author.Email < articles[j].Author.Email
		})
	default:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Created.After(articles[j].Created)
		})
	}
	return articles
}

// IncrementViews bumps the view counter; failures are logged and swallowed.
func (s *articleService) IncrementViews(id string) {
	if err := s.articleRepo.IncrementViews(id); err != nil {
		s.logger.Error().Err(err).Str("article_id", id).Msg("failed to increment view count")
	}
}

// resolveTags maps the checked entries of the request checklist onto tag
// rows, creating tags that do not exist yet. Duplicate names resolve once.
func (s *articleService) resolveTags(boxes []models.TagCheckbox) ([]models.Tag, error) {
	var tags []models.Tag
	seen := make(map[string]bool)

	for _, box := range boxes {
		if !box.IsChecked || seen[box.Name] {
			continue
		}
		seen[box.Name] = true

		tag, err := s.getOrCreateTag(box.Name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// reconcileTags diffs the request checklist against the article's current
// tag set and returns the tags to attach and detach.
func (s *articleService) reconcileTags(article *models.Article, boxes []models.TagCheckbox) (attach, detach []models.Tag, err error) {
	seen := make(map[string]bool)

	for _, box := range boxes {
		if seen[box.Name] {
			continue
		}
		seen[box.Name] = true

		current := article.HasTag(box.Name)
		switch {
		case box.IsChecked && !current:
			tag, err := s.getOrCreateTag(box.Name)
			if err != nil {
				return nil, nil, err
			}
			attach = append(attach, *tag)
		case !box.IsChecked && current:
			for _, t := range article.Tags {
				if t.Name == box.Name {
					detach = append(detach, t)
					break
				}
			}
		}
	}
	return attach, detach, nil
}

func (s *articleService) getOrCreateTag(name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newTag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(newTag); err != nil {
		return nil, err
	}
	s.logger.Info().Str("tag", name).Msg("tag created for article")
	return newTag, nil
}

func applyTagDiff(tags, attach, detach []models.Tag) []models.Tag {
	removed := make(map[string]bool, len(detach))
	for _, t := range detach {
		removed[t.TagID] = true
	}

	result := make([]models.Tag, 0, len(tags)+len(attach))
	for _, t := range tags {
		if !removed[t.TagID] {
			result = append(result, t)
		}
	}
	return append(result, attach...)
}
