package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterRequest is the expected body for POST /users/register.
// Unknown extra fields are ignored by the JSON decoder.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address"`
}

// LoginRequest is the expected body for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProductRequest is the expected body for product creation. Price and Stock
// are pointers so that a literal zero passes the required check; zero price
// and zero stock are legal, negative values are not. Stock being an int also
// rejects fractional JSON numbers at decode time.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Color       string   `json:"color" validate:"required"`
	Size        string   `json:"size" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	Tags        []string `json:"tags"`
}

// Validator checks request bodies against their declared schemas.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator backed by a single validator.Validate instance.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Check runs the schema tags on req and returns one entry per failed field.
// A nil result means the input is valid. Check never panics or returns a
// transport error; malformed shapes surface as field errors.
func (v *Validator) Check(req interface{}) []FieldError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()),
		})
	}
	return out
}
