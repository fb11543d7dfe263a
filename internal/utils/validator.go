// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/appdevg6/boost-web/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("edu_email", validateEduEmail)
	validate.RegisterValidation("product_status", validateProductStatus)
	validate.RegisterValidation("product_image", validateProductImage)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// The campus marketplace only admits student accounts.
func validateEduEmail(fl validator.FieldLevel) bool {
	return strings.HasSuffix(strings.ToLower(fl.Field().String()), ".edu")
}

func validateProductStatus(fl validator.FieldLevel) bool {
	return models.ProductStatus(fl.Field().String()).Valid()
}

// maxImageBytes caps inlined data-URI images at 5MB, matching the upload
// limit the product form enforces.
const maxImageBytes = 5 * 1024 * 1024

func validateProductImage(fl validator.FieldLevel) bool {
	image := fl.Field().String()
	if image == "" {
		return true
	}
	if strings.HasPrefix(image, "data:") {
		if !strings.HasPrefix(image, "data:image/") {
			return false
		}
		return len(image) <= maxImageBytes*4/3+64
	}
	return strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://")
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "edu_email":
		return "Please use a .edu student email"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "product_status":
		return "Status must be Available, Sold, or Reserved"
	case "product_image":
		return "Image must be an image data URI under 5MB or a URL"
	default:
		return e.Field() + " is invalid"
	}
}

// FirstValidationMessage flattens a validation result into the single inline
// message the forms display.
func FirstValidationMessage(err error) string {
	errs := GetValidationErrors(err)
	if len(errs) == 0 {
		if err != nil {
			return err.Error()
		}
		return ""
	}
	return errs[0].Message
}
