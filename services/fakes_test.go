package services

import (
	"webblog/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the gorm-backed implementations'
// error behavior: gorm.ErrRecordNotFound for missing rows, models.ErrConflict
// for version mismatches.

type fakeArticleRepo struct {
	articles map[string]*models.Article
	// conflictOnUpdate makes Update fail as if another request committed
	// first; with removeOnConflict the row disappears as well.
	conflictOnUpdate bool
	removeOnConflict bool
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]*models.Article)}
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	if article.ArticleID == "" {
		article.ArticleID = uuid.NewString()
	}
	stored := *article
	r.articles[article.ArticleID] = &stored
	return nil
}

func (r *fakeArticleRepo) Exists(id string) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

func (r *fakeArticleRepo) GetByID(id string) (*models.Article, error) {
	stored, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *stored
	copy.Tags = append([]models.Tag(nil), stored.Tags...)
	return &copy, nil
}

func (r *fakeArticleRepo) GetAll() ([]models.Article, error) {
	var articles []models.Article
	for _, a := range r.articles {
		articles = append(articles, *a)
	}
	return articles, nil
}

func (r *fakeArticleRepo) GetByAuthor(authorID string) ([]models.Article, error) {
	var articles []models.Article
	for _, a := range r.articles {
		if a.AuthorID == authorID {
			articles = append(articles, *a)
		}
	}
	return articles, nil
}

func (r *fakeArticleRepo) Update(article *models.Article, attach, detach []models.Tag) error {
	if r.conflictOnUpdate {
		if r.removeOnConflict {
			delete(r.articles, article.ArticleID)
		}
		return models.ErrConflict
	}

	stored, ok := r.articles[article.ArticleID]
	if !ok || stored.Version != article.Version {
		return models.ErrConflict
	}

	stored.Title = article.Title
	stored.Content = article.Content
	stored.Version++

	removed := make(map[string]bool, len(detach))
	for _, t := range detach {
		removed[t.TagID] = true
	}
	var tags []models.Tag
	for _, t := range stored.Tags {
		if !removed[t.TagID] {
			tags = append(tags, t)
		}
	}
	stored.Tags = append(tags, attach...)

	article.Version++
	return nil
}

func (r *fakeArticleRepo) Delete(id string) error {
	if _, ok := r.articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) IncrementViews(id string) error {
	stored, ok := r.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.CountOfViews++
	return nil
}

type fakeTagRepo struct {
	tags map[string]*models.Tag // keyed by id
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*models.Tag)}
}

func (r *fakeTagRepo) seed(names ...string) {
	for _, name := range names {
		tag := &models.Tag{TagID: uuid.NewString(), Name: name}
		r.tags[tag.TagID] = tag
	}
}

func (r *fakeTagRepo) Create(tag *models.Tag) error {
	if tag.TagID == "" {
		tag.TagID = uuid.NewString()
	}
	stored := *tag
	r.tags[tag.TagID] = &stored
	return nil
}

func (r *fakeTagRepo) Exists(id string) (bool, error) {
	_, ok := r.tags[id]
	return ok, nil
}

func (r *fakeTagRepo) ExistsByName(name string) (bool, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTagRepo) GetByID(id string) (*models.Tag, error) {
	stored, ok := r.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	for _, t := range r.tags {
		if t.Name == name {
			copy := *t
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTagRepo) GetAll(includeArticles bool) ([]models.Tag, error) {
	var tags []models.Tag
	for _, t := range r.tags {
		tags = append(tags, *t)
	}
	return tags, nil
}

func (r *fakeTagRepo) Update(tag *models.Tag) error {
	stored, ok := r.tags[tag.TagID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = tag.Name
	return nil
}

func (r *fakeTagRepo) Delete(id string) error {
	if _, ok := r.tags[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.tags, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) seed(email string) *models.User {
	user := &models.User{UserID: uuid.NewString(), Username: email, Email: email}
	r.users[user.UserID] = user
	return user
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	stored := *user
	r.users[user.UserID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored, ok := r.users[user.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.CustomField = user.CustomField
	stored.PhoneNumber = user.PhoneNumber
	return nil
}

func (r *fakeUserRepo) ReplaceRoles(user *models.User, roles []models.Role) error {
	stored, ok := r.users[user.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Roles = roles
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}
