package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/verdigris-dev/verdigris/internal/errors"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, ok := theme.ParseSize(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("padding", func(fl validator.FieldLevel) bool {
			_, ok := theme.ParsePadding(fl.Field().String())
			return ok
		})

		// Only hex colors and CSS names; palette names are checked when the
		// theme is built.
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseColor(fl.Field().String(), theme.Palette{})
			return err == nil
		})

		_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
			return metricNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration schema and that the theme it describes
// is complete and its colors parse.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	if _, err := c.BuildTheme(); err != nil {
		return errors.New("E122").
			WithDetail("theme").
			WithField("path", c.configPath).
			Wrap(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		return errors.New("E122").
			WithDetail(fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())).
			WithField("field", field).
			WithField("tag", ve.Tag()).
			Wrap(err)
	}
	return errors.New("E122").Wrap(err)
}

// fieldName turns "Config.Theme.DefaultSize" into "theme.defaultSize".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
