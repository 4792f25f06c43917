package employee

import (
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/ymerta/vardiya/internal/pkg/validator"
)

var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CreateEmployeeRequest struct {
	FullName   string          `json:"full_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     *bool           `json:"active"`
	Color      *string         `json:"color"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if r.HourlyRate.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a positive number",
		})
	}
	if r.Color != nil && !colorRegex.MatchString(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex value like #3b82f6",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	FullName   *string          `json:"full_name"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Active     *bool            `json:"active"`
	Color      *string          `json:"color"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a positive number",
		})
	}
	if r.Color != nil && *r.Color != "" && !colorRegex.MatchString(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex value like #3b82f6",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	FullName   string          `json:"full_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
	Color      *string         `json:"color,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		HourlyRate: e.HourlyRate,
		Active:     e.Active,
		Color:      e.Color,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  e.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
