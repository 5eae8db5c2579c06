package models

import "time"

// View models shape what handlers return to clients, decoupled from the
// persistence entities. Mapping is explicit field-to-field.

type ArticleViewModel struct {
	ArticleID    string             `json:"article_id"`
	Title        string             `json:"title"`
	Content      string             `json:"content"`
	Created      time.Time          `json:"created"`
	AuthorID     string             `json:"author_id"`
	AuthorEmail  string             `json:"author_email,omitempty"`
	CountOfViews int                `json:"count_of_views"`
	Tags         []TagViewModel     `json:"tags"`
	Comments     []CommentViewModel `json:"comments"`
}

type TagViewModel struct {
	TagID string `json:"tag_id"`
	Name  string `json:"name"`
}

type CommentViewModel struct {
	CommentID string    `json:"comment_id"`
	ArticleID string    `json:"article_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Created   time.Time `json:"created"`
	AuthorID  string    `json:"author_id"`
}

type UserViewModel struct {
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	CustomField string   `json:"custom_field"`
	PhoneNumber string   `json:"phone_number"`
	Roles       []string `json:"roles"`
}

type RoleViewModel struct {
	RoleID        string `json:"role_id"`
	Name          string `json:"name"`
	SecurityLevel int    `json:"security_level"`
}

func NewArticleView(a *Article) ArticleViewModel {
	view := ArticleViewModel{
		ArticleID:    a.ArticleID,
		Title:        a.Title,
		Content:      a.Content,
		Created:      a.Created,
		AuthorID:     a.AuthorID,
		AuthorEmail:  a.Author.Email,
		CountOfViews: a.CountOfViews,
		Tags:         make([]TagViewModel, 0, len(a.Tags)),
		Comments:     make([]CommentViewModel, 0, len(a.Comments)),
	}
	for _, t := range a.Tags {
		view.Tags = append(view.Tags, NewTagView(&t))
	}
	for _, c := range a.Comments {
		view.Comments = append(view.Comments, NewCommentView(&c))
	}
	return view
}

func NewArticleViews(articles []Article) []ArticleViewModel {
	views := make([]ArticleViewModel, 0, len(articles))
	for i := range articles {
		views = append(views, NewArticleView(&articles[i]))
	}
	return views
}

func NewTagView(t *Tag) TagViewModel {
	return TagViewModel{TagID: t.TagID, Name: t.Name}
}

func NewTagViews(tags []Tag) []TagViewModel {
	views := make([]TagViewModel, 0, len(tags))
	for i := range tags {
		views = append(views, NewTagView(&tags[i]))
	}
	return views
}

func NewCommentView(c *Comment) CommentViewModel {
	return CommentViewModel{
		CommentID: c.CommentID,
		ArticleID: c.ArticleID,
		Title:     c.Title,
		Content:   c.Content,
		Created:   c.Created,
		AuthorID:  c.AuthorID,
	}
}

func NewCommentViews(comments []Comment) []CommentViewModel {
	views := make([]CommentViewModel, 0, len(comments))
	for i := range comments {
		views = append(views, NewCommentView(&comments[i]))
	}
	return views
}

func NewUserView(u *User) UserViewModel {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Name)
	}
	return UserViewModel{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		CustomField: u.CustomField,
		PhoneNumber: u.PhoneNumber,
		Roles:       roles,
	}
}

func NewUserViews(users []User) []UserViewModel {
	views := make([]UserViewModel, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}

func NewRoleView(r *Role) RoleViewModel {
	return RoleViewModel{RoleID: r.RoleID, Name: r.Name, SecurityLevel: r.SecurityLevel}
}

func NewRoleViews(roles []Role) []RoleViewModel {
	views := make([]RoleViewModel, 0, len(roles))
	for i := range roles {
		views = append(views, NewRoleView(&roles[i]))
	}
	return views
}
