package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service/openstatus"
)

//go:embed data/site.yaml
var defaultContent embed.FS

const defaultContentFile = "data/site.yaml"

// envPattern matches ${NAME} placeholders. Bare $NAME is left alone so values
// such as a "$$" price range survive expansion.
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ValidationError indicates that the content file is structurally invalid.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return "invalid site content: " + strings.Join(e.Problems, "; ")
}

// Load reads site content from path, or from the embedded default when path is
// empty, and returns a validated snapshot.
func Load(path string) (*Site, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = defaultContent.ReadFile(defaultContentFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	return Parse(data)
}

// Parse decodes, validates and sanitises a YAML content document.
func Parse(data []byte) (*Site, error) {
	expanded := envPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		return os.Getenv(envPattern.FindStringSubmatch(match)[1])
	})

	decoder := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	decoder.KnownFields(true)

	var site Site
	if err := decoder.Decode(&site); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}

	if err := siteValidator.Struct(&site); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				problems[i] = describe(fe)
			}
			return nil, ValidationError{Problems: problems}
		}
		return nil, fmt.Errorf("validate site content: %w", err)
	}

	sanitize(&site)
	site.rules = openstatus.DeriveRules(site.Business.Hours)
	return &site, nil
}

// siteValidator is shared by every Parse; validator.Validate caches struct
// metadata and is safe for concurrent use.
var siteValidator = mustValidator()

// customRules are the validation tags site content declares beyond the
// validator's built-ins.
var customRules = map[string]validator.Func{
	"weekly_hours": validWeeklyHours,
}

func mustValidator() *validator.Validate {
	v, err := newValidator(customRules)
	if err != nil {
		panic(err)
	}
	return v
}

func newValidator(rules map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return v, nil
}

// validWeeklyHours requires all seven weekdays, each either "Closed" or a
// range whose times parse and whose close follows its open.
func validWeeklyHours(fl validator.FieldLevel) bool {
	hours, ok := fl.Field().Interface().(entity.WeeklyHours)
	if !ok || len(hours) != len(entity.Weekdays) {
		return false
	}
	for _, day := range entity.Weekdays {
		value, present := hours[day]
		if !present {
			return false
		}
		if value == entity.ClosedHours {
			continue
		}
		if _, err := openstatus.ParseRange(hours, day); err != nil {
			return false
		}
	}
	return true
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Site.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "weekly_hours":
		return field + " must list all seven weekdays as \"Closed\" or \"<open> - <close>\""
	case "unique":
		return field + " must not contain duplicate " + strings.ToLower(fe.Param())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// sanitize strips unsafe markup from the fields rendered as HTML.
func sanitize(site *Site) {
	policy := bluemonday.UGCPolicy()
	for i := range site.Services {
		site.Services[i].FullDescription = policy.Sanitize(site.Services[i].FullDescription)
	}
	for i, paragraph := range site.About.Full.Paragraphs {
		site.About.Full.Paragraphs[i] = policy.Sanitize(paragraph)
	}
}
