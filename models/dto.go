package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// TagCheckbox is one entry of the tag checklist sent with article create and
// edit requests. Unchecked entries are stripped on create and detached on
// edit.
type TagCheckbox struct {
	Name      string `json:"name" binding:"required,max=20"`
	IsChecked bool   `json:"isChecked"`
}

type NewArticleRequest struct {
	AuthorID string        `json:"authorId" binding:"required,uuid"`
	Title    string        `json:"title" binding:"required,max=100"`
	Content  string        `json:"content" binding:"required,max=1000"`
	Tags     []TagCheckbox `json:"tags" binding:"dive"`
}

type EditArticleRequest struct {
	ArticleID string        `json:"articleId" binding:"required,uuid"`
	Title     string        `json:"title" binding:"required,max=100"`
	Content   string        `json:"content" binding:"required,max=1000"`
	Tags      []TagCheckbox `json:"tags" binding:"dive"`
}

type DeleteArticleRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

type NewTagRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}

type EditTagRequest struct {
	TagID string `json:"tagId" binding:"required,uuid"`
	Name  string `json:"name" binding:"required,max=20"`
}

type NewCommentRequest struct {
	ArticleID string `json:"articleId" binding:"required,uuid"`
	AuthorID  string `json:"authorId" binding:"required,uuid"`
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required,max=200"`
}

type EditCommentRequest struct {
	CommentID string `json:"commentId" binding:"required,uuid"`
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required,max=200"`
}

type NewRoleRequest struct {
	Name          string `json:"name" binding:"required,max=50"`
	SecurityLevel int    `json:"securityLevel" binding:"gte=0"`
}

type EditRoleRequest struct {
	RoleID        string `json:"roleId" binding:"required,uuid"`
	Name          string `json:"name" binding:"required,max=50"`
	SecurityLevel int    `json:"securityLevel" binding:"gte=0"`
}

type UpdateUserRequest struct {
	UserID      string   `json:"userId" binding:"required,uuid"`
	CustomField string   `json:"customField" binding:"max=100"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"roles"`
}
