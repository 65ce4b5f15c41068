package middleware

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/proofofcontribution/permit-agent/internal/helpers"
)

var registerOnce sync.Once

// RegisterValidators adds the repo_slug and hexsha tags to gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		err = RegisterCustomValidations(v)
	})
	return err
}

// RegisterCustomValidations installs the permit request validators on v
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("repo_slug", func(fl validator.FieldLevel) bool {
		return helpers.IsRepoSlug(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("hexsha", func(fl validator.FieldLevel) bool {
		return helpers.IsCommitSHA(fl.Field().String())
	})
}

// FormatValidationError turns binding errors into one readable detail line
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Sprintf("invalid request body: %v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "repo_slug":
		return field + " must be in owner/name form"
	case "hexsha":
		return field + " must be a 4-64 character hex commit sha"
	case "eth_addr":
		return field + " must be a 0x-prefixed 20-byte hex address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// jsonFieldName maps struct field names to their wire names
func jsonFieldName(field string) string {
	switch field {
	case "SHA":
		return "sha"
	case "ChainID":
		return "chain_id"
	case "VerifyingContract":
		return "verifying_contract"
	case "TokenURI":
		return "tokenURI"
	default:
		return strings.ToLower(field)
	}
}
