package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterForm holds the registration form fields.
type RegisterForm struct {
	Name     string `validate:"required,max=50"`
	Email    string `validate:"required,min=6,max=50"`
	Username string `validate:"required,min=4,max=25"`
	Password string `validate:"required,eqfield=Confirm"`
	Confirm  string
}

var registerMessages = map[string]string{
	"Name":              "Name must be between 1 and 50 characters",
	"Email":             "Email must be between 6 and 50 characters",
	"Username":          "Username must be between 4 and 25 characters",
	"Password:required": "Password is required",
	"Password:eqfield":  "Passwords do not match",
}

// Validate returns per-field error messages, nil when the form is valid.
func (f RegisterForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f), registerMessages)
}

// ArticleForm holds the fields of the text-article form (add and edit).
type ArticleForm struct {
	Title string `validate:"required,max=200"`
	Body  string `validate:"required,min=30"`
}

var articleMessages = map[string]string{
	"Title": "Title must be between 1 and 200 characters",
	"Body":  "Body must be at least 30 characters",
}

func (f ArticleForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f), articleMessages)
}

// ImageArticleForm holds the edit form for image articles: title only,
// the gallery itself is immutable.
type ImageArticleForm struct {
	Title string `validate:"required,max=200"`
}

func (f ImageArticleForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f), articleMessages)
}

// ImageUploadForm holds the image-article submission fields. The image
// count is an explicit field supplied by the upload step.
type ImageUploadForm struct {
	Title   string `validate:"required,max=200"`
	URL     string `validate:"required"`
	NumImgs int    `validate:"min=0"`
}

var imageUploadMessages = map[string]string{
	"Title":   "Title must be between 1 and 200 characters",
	"URL":     "Image reference is required",
	"NumImgs": "Image count must not be negative",
}

func (f ImageUploadForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f), imageUploadMessages)
}

// fieldErrors maps validator failures to user-facing messages. Messages
// are looked up by "Field:tag" first, then by field name.
func fieldErrors(err error, messages map[string]string) map[string]string {
	if err == nil {
		return nil
	}

	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["Form"] = "Invalid input"
		return out
	}

	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()+":"+fe.Tag()]; ok {
			out[fe.Field()] = msg
		} else if msg, ok := messages[fe.Field()]; ok {
			out[fe.Field()] = msg
		} else {
			out[fe.Field()] = "Invalid value"
		}
	}

	return out
}
