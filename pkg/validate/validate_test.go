package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/slopestock/pkg/validate"
)

type productInput struct {
	Name     string   `json:"name"     validate:"required,max=255"`
	Category *string  `json:"category" validate:"nullable,max=100"`
	Price    *float64 `json:"price"    validate:"required"`
	Quantity *int     `json:"quantity" validate:"required,integer"`
	SKU      *string  `json:"sku"      validate:"nullable,max=100"`
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
func str(v string) *string   { return &v }

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Rossignol Experience 88",
		Price:    f64(699.99),
		Quantity: i(12),
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "price", "quantity"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["sku"]; ok {
		t.Error("sku is nullable and must not fail when absent")
	}
}

func TestZeroThroughPointerIsPresent(t *testing.T) {
	// A present zero must pass the required check: {"price": 0} is valid,
	// a missing price is not.
	errs := validate.Struct(productInput{
		Name:     "Freebie",
		Price:    f64(0),
		Quantity: i(0),
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected zero values through pointers to be valid, got: %v", errs)
	}
}

func TestMaxOnPointerString(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}

	errs := validate.Struct(productInput{
		Name:     "Skis",
		Price:    f64(1),
		Quantity: i(1),
		SKU:      str(string(long)),
	})
	if _, ok := errs["sku"]; !ok {
		t.Error("expected sku max length error")
	}
}

func TestIntegerRule(t *testing.T) {
	type in struct {
		Quantity string `json:"quantity" validate:"required,integer"`
	}
	if errs := validate.Struct(in{Quantity: "12"}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
	if errs := validate.Struct(in{Quantity: "12.5"}); !validate.HasErrors(errs) {
		t.Error("expected integer validation error")
	}
}

func TestInRuleKeepsParamListIntact(t *testing.T) {
	type in struct {
		Category string `json:"category" validate:"required,in=Skis,Boots,Poles,max=100"`
	}
	if errs := validate.Struct(in{Category: "Boots"}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
	if errs := validate.Struct(in{Category: "Snowshoes"}); !validate.HasErrors(errs) {
		t.Error("expected in-list validation error")
	}
}

func TestGteLte(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"gte=0,lte=1000"`
	}
	if errs := validate.Struct(in{Quantity: -1}); !validate.HasErrors(errs) {
		t.Error("expected gte validation error")
	}
	if errs := validate.Struct(in{Quantity: 1001}); !validate.HasErrors(errs) {
		t.Error("expected lte validation error")
	}
	if errs := validate.Struct(in{Quantity: 500}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}
