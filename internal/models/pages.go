package models

// Page carries the data every template needs: the signed-in username
// (empty for anonymous visitors) and any pending flash notices.
type Page struct {
	Title    string
	Username string
	Flashes  []Flash
}

// ArticlesPage renders the public article list.
type ArticlesPage struct {
	Page
	Articles []ArticleDB
	Message  string // empty-state message when there are no articles
}

// ArticlePage renders a single article with its comments, in either the
// text or the gallery variant.
type ArticlePage struct {
	Page
	Article  *ArticleDB
	Comments []CommentDB
}

// DashboardPage renders the signed-in user's own articles.
type DashboardPage struct {
	Page
	Articles []ArticleDB
	Message  string
}

// RegisterPage renders the registration form with its field errors.
type RegisterPage struct {
	Page
	Form   RegisterForm
	Errors map[string]string
}

// LoginPage renders the login form. Error is the single form-level
// authentication failure message.
type LoginPage struct {
	Page
	Error string
}

// ArticleFormPage renders the add/edit article forms. TitleOnly is set
// when editing an image article, whose body cannot be edited.
type ArticleFormPage struct {
	Page
	Form      ArticleForm
	Errors    map[string]string
	ArticleID int64 // zero when adding
	TitleOnly bool
}
