package handlers

import "strings"

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category is required"})
	}
	if p.StockQuantity < 0 {
		errs = append(errs, ProductValidationError{Field: "StockQuantity", Description: "Stock quantity cannot be negative"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	return errs
}
