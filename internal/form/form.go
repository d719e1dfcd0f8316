// Package form validates and normalizes the add-link form before a link is
// admitted to the collection.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"inspilink/internal/domain"
)

// Fields are the raw values of the add-link form, exactly as entered.
type Fields struct {
	URL         string `form:"url" validate:"required,linkurl"`
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"required,linkcategory"`
	// Tags is a comma separated list.
	Tags string `form:"tags"`
}

// Code identifies a single field violation.
type Code string

const (
	URLRequired      Code = "UrlRequired"
	URLInvalid       Code = "UrlInvalid"
	TitleRequired    Code = "TitleRequired"
	CategoryRequired Code = "CategoryRequired"
)

// Messages maps each violation to the text shown next to the field.
var Messages = map[Code]string{
	URLRequired:      "URL is required",
	URLInvalid:       "Please enter a valid URL",
	TitleRequired:    "Title is required",
	CategoryRequired: "Category is required",
}

// FieldErrors maps a form field name to its error message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// urlPattern accepts an optional http(s) scheme, a dotted lowercase host with
// a 2-6 character last label and an optional path tail.
var urlPattern = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	// Registering a validation only fails on an empty tag or nil func.
	if err := v.RegisterValidation("linkurl", func(fl validator.FieldLevel) bool {
		return ValidURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("linkcategory", func(fl validator.FieldLevel) bool {
		_, ok := domain.CanonicalCategory(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// codeFor maps a failed rule to its violation code. A category outside the
// form's list counts as missing, as it would on a closed dropdown.
func codeFor(field, tag string) Code {
	switch {
	case field == "url" && tag == "linkurl":
		return URLInvalid
	case field == "url":
		return URLRequired
	case field == "title":
		return TitleRequired
	default:
		return CategoryRequired
	}
}

// Validate checks every rule independently and returns either the normalized
// link parameters or a FieldErrors holding one message per failing field.
// URL, title and category are trimmed first, so blank values count as missing.
func Validate(in Fields) (domain.NewLinkParams, error) {
	in.URL = strings.TrimSpace(in.URL)
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.NewLinkParams{}, fmt.Errorf("failed to validate form: %w", err)
		}
		fe := make(FieldErrors, len(verrs))
		for _, v := range verrs {
			fe[v.Field()] = Messages[codeFor(v.Field(), v.Tag())]
		}
		return domain.NewLinkParams{}, fe
	}

	category, _ := domain.CanonicalCategory(in.Category)
	return domain.NewLinkParams{
		URL:         NormalizeURL(in.URL),
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		Tags:        ParseTags(in.Tags),
	}, nil
}

// ValidURL reports whether raw has the shape the url field accepts.
func ValidURL(raw string) bool {
	return urlPattern.MatchString(raw)
}

// NormalizeURL prefixes https:// when raw has no http(s) scheme.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// ParseTags splits a comma separated list, trimming each piece and dropping
// empty ones. Order and duplicates are kept.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
