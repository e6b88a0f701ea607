package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/glint/internal/easing"
	"github.com/alexisbeaulieu97/glint/internal/trigger"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	animIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("anim_id", func(fl validator.FieldLevel) bool {
			return animIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("trigger", func(fl validator.FieldLevel) bool {
			_, err := trigger.ParseMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePreset performs schema and cross-field validation on a preset.
func ValidatePreset(p *Preset) error {
	if p == nil {
		return glinterrors.NewValidationError("preset", "preset is nil", nil)
	}

	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(p.Animations))
	for i, anim := range p.Animations {
		if first, exists := seen[anim.ID]; exists {
			return glinterrors.NewValidationError(fieldForAnimation(i, "id"), fmt.Sprintf("duplicate animation id %q (first used by animations[%d])", anim.ID, first), nil)
		}
		seen[anim.ID] = i

		if err := validateAnimation(anim, i); err != nil {
			return err
		}
	}

	return nil
}

// validateAnimation checks rules the struct tags cannot express.
func validateAnimation(anim Animation, index int) error {
	if anim.block() == nil {
		return glinterrors.NewValidationError(fieldForAnimation(index, anim.Kind), fmt.Sprintf("%s configuration is required", anim.Kind), nil)
	}
	if anim.blocks() > 1 {
		return glinterrors.NewValidationError(fieldForAnimation(index, "kind"), fmt.Sprintf("only the %s block may be set for kind %q", anim.Kind, anim.Kind), nil)
	}

	if anim.Counter != nil {
		if _, err := easing.ByName(anim.Counter.Easing); err != nil {
			return glinterrors.NewValidationError(fieldForAnimation(index, "counter.easing"), fmt.Sprintf("%s (known: %s)", err, strings.Join(easing.Names(), ", ")), err)
		}
		if anim.Counter.Locale != "" {
			if _, err := language.Parse(anim.Counter.Locale); err != nil {
				return glinterrors.NewValidationError(fieldForAnimation(index, "counter.locale"), fmt.Sprintf("invalid locale %q", anim.Counter.Locale), err)
			}
		}
	}

	if anim.Typing != nil && allEmpty(anim.Typing.Texts) {
		return glinterrors.NewValidationError(fieldForAnimation(index, "typing.texts"), "at least one text must be non-empty", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return glinterrors.NewValidationError(field, msg, err)
	}

	return glinterrors.NewValidationError("preset", err.Error(), err)
}

// yamlishFieldName turns "Preset.Animations[0].CycleDelay" into
// "animations[0].cycledelay".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForAnimation(index int, field string) string {
	return fmt.Sprintf("animations[%d].%s", index, field)
}

func allEmpty(texts []string) bool {
	for _, text := range texts {
		if text != "" {
			return false
		}
	}
	return true
}
