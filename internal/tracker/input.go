package tracker

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"readtrack/internal/bookshelf"
	"readtrack/internal/faults"
	"readtrack/internal/textutil"
)

// AddBookInput is a validated request to put a new book on the shelf.
type AddBookInput struct {
	Title      string   `json:"title" validate:"required"`
	TotalPages int      `json:"totalPages" validate:"gte=0"`
	GenreTags  []string `json:"genreTags" validate:"dive,required"`
}

// ParseAddBook converts the raw add form into an AddBookInput. Genres are a
// semicolon separated list.
func ParseAddBook(title, totalPages, genres string) (AddBookInput, error) {
	pages, err := ParsePages("add book", "total pages", totalPages)
	if err != nil {
		return AddBookInput{}, err
	}
	return AddBookInput{
		Title:      textutil.NormalizeTitle(title),
		TotalPages: pages,
		GenreTags:  bookshelf.ParseGenreTags(genres),
	}, nil
}

// ParsePages parses a whole page count typed by the user.
func ParsePages(operation, field, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, faults.Invalid(operation, "%s is required", field)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, faults.Invalid(operation, "%s %q is not a whole number", field, raw)
	}
	return n, nil
}

// inputValidator wraps go-playground/validator and reports failures as
// faults.ErrInvalidInput.
type inputValidator struct {
	v *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &inputValidator{v: v}
}

func (iv *inputValidator) validate(operation string, s any) error {
	err := iv.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return faults.Wrap(faults.ErrInvalidInput, operation, "validation failed", err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+" "+friendlyMessage(fe))
	}
	return faults.Invalid(operation, "%s", strings.Join(messages, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return fmt.Sprintf("is invalid (%s)", e.Tag())
	}
}
