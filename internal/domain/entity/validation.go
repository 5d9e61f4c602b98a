package entity

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field limits.
const (
	PhoneNumberLength = 10
	MinContentLength  = 250
	MaxSummaryLength  = 250
)

// Allowed post categories.
const (
	CategoryFiction    = "Fiction"
	CategoryNonFiction = "Non-Fiction"
)

// TitleMarkers lists the phrases of which every post title must contain at least one.
var TitleMarkers = []string{"Won't Believe", "Secret", "Top", "Guess"}

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

var errNoMarker = errors.New("no title marker")

var titleMarkerRule = validation.By(func(value interface{}) error {
	title, _ := value.(string)
	for _, marker := range TitleMarkers {
		if strings.Contains(title, marker) {
			return nil
		}
	}
	return errNoMarker
})

// fieldRule pairs an ozzo rule with the code reported when it fails.
type fieldRule struct {
	rule    validation.Rule
	code    Code
	message string
}

// check applies rules in order and reports the first failure as a ValidationError.
func check(field string, value interface{}, rules ...fieldRule) error {
	for _, r := range rules {
		if err := validation.Validate(value, r.rule); err != nil {
			return &ValidationError{Field: field, Code: r.code, Message: r.message}
		}
	}
	return nil
}

// ValidateAuthorName rejects an empty author name.
// Uniqueness needs the store and is checked by the author use case.
func ValidateAuthorName(name string) error {
	return check("name", name,
		fieldRule{validation.Required, CodeRequired, "author must have a name"},
	)
}

// ValidatePhoneNumber accepts a nil phone number. A present value, including the
// empty string, must be exactly ten ASCII digits.
func ValidatePhoneNumber(phone *string) error {
	if phone == nil {
		return nil
	}
	const msg = "author phone number must be exactly ten digits"
	return check("phone_number", *phone,
		fieldRule{validation.Required, CodeInvalidFormat, msg},
		fieldRule{validation.Match(phoneNumberPattern), CodeInvalidFormat, msg},
	)
}

// ValidatePostTitle requires the title to contain one of TitleMarkers.
func ValidatePostTitle(title string) error {
	return check("title", title,
		fieldRule{validation.Required, CodeRequired, "post must have a title"},
		fieldRule{titleMarkerRule, CodeMissingMarker, "post title must be sufficiently clickbait-y"},
	)
}

// ValidatePostContent requires present, non-empty content to be at least
// MinContentLength characters long.
func ValidatePostContent(content *string) error {
	if content == nil {
		return nil
	}
	return check("content", *content,
		fieldRule{validation.RuneLength(MinContentLength, 0), CodeTooShort, "post content must be at least 250 characters long"},
	)
}

// ValidatePostSummary caps a present summary at MaxSummaryLength characters.
func ValidatePostSummary(summary *string) error {
	if summary == nil {
		return nil
	}
	return check("summary", *summary,
		fieldRule{validation.RuneLength(0, MaxSummaryLength), CodeTooLong, "post summary must be a maximum of 250 characters"},
	)
}

// ValidatePostCategory requires the category to be Fiction or Non-Fiction.
func ValidatePostCategory(category string) error {
	const msg = "post category must be either Fiction or Non-Fiction"
	return check("category", category,
		fieldRule{validation.Required, CodeRequired, msg},
		fieldRule{validation.In(CategoryFiction, CategoryNonFiction), CodeNotAllowed, msg},
	)
}

// NameNotUniqueError is reported when another author already holds the name.
// The check needs the store, so the author use case raises it.
func NameNotUniqueError() error {
	return &ValidationError{Field: "name", Code: CodeNotUnique, Message: "author name must be unique"}
}

// InvalidIDError is reported for a non-positive record ID.
func InvalidIDError() error {
	return &ValidationError{Field: "id", Code: CodeInvalidFormat, Message: "id must be positive"}
}
