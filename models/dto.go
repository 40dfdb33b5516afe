package models

type CreateArticleRequest struct {
	Title      string   `json:"title" validate:"required,notblank"`
	Content    string   `json:"content" validate:"required,notblank"`
	Excerpt    *string  `json:"excerpt"`
	CoverImage *string  `json:"coverImage"`
	Published  *bool    `json:"published"`
	Tags       []string `json:"tags" validate:"omitempty,dive,required,notblank"`
}

// UpdateArticleRequest carries a partial update. Nil fields are left alone;
// a non-nil Tags (including an empty list) replaces the article's tag set.
type UpdateArticleRequest struct {
	Title      *string  `json:"title" validate:"omitnil,notblank"`
	Slug       *string  `json:"slug" validate:"omitnil,notblank"`
	Content    *string  `json:"content" validate:"omitnil,notblank"`
	Excerpt    *string  `json:"excerpt"`
	CoverImage *string  `json:"coverImage"`
	Published  *bool    `json:"published"`
	Tags       []string `json:"tags" validate:"omitempty,dive,required,notblank"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,notblank"`
	Author  string `json:"author" validate:"required,notblank"`
	Email   string `json:"email" validate:"required,email"`
}

type ArticleListParams struct {
	Page     int
	Limit    int
	TagNames []string
	TagID    uint
}

type ArticleListResponse struct {
	Articles []Article `json:"articles"`
	Meta     PageMeta  `json:"meta"`
}

type TagArticlesResponse struct {
	Tag      string    `json:"tag"`
	Articles []Article `json:"articles"`
	Meta     PageMeta  `json:"meta"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	Meta     PageMeta  `json:"meta"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
