package commands

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// ProductLine is one requested line of an order: what to bring, how much,
// and in which unit. Prices are not part of the input; handlers derive
// them from the catalog so a client can never set its own price.
type ProductLine struct {
	Name     string
	Quantity int
	Unit     string
}

// Validate checks the line names an item, a positive quantity, and a unit.
func (l ProductLine) Validate() error {
	var lineErrs []error
	if l.Name == "" {
		lineErrs = append(lineErrs, errs.NewValueIsRequiredError("name"))
	}
	if l.Quantity < 1 {
		lineErrs = append(lineErrs, errs.NewValueIsInvalidError("quantity"))
	}
	if l.Unit == "" {
		lineErrs = append(lineErrs, errs.NewValueIsRequiredError("unit"))
	}
	return errors.Join(lineErrs...)
}

func validateCustomer(name, address string) error {
	var customerErrs []error
	if name == "" {
		customerErrs = append(customerErrs, errs.NewValueIsRequiredError("customerName"))
	}
	if address == "" {
		customerErrs = append(customerErrs, errs.NewValueIsRequiredError("address"))
	}
	return errors.Join(customerErrs...)
}

func validateSchedule(deliveryTime string, format order.TimeFormat, date kernel.Date) error {
	var scheduleErrs []error
	if deliveryTime == "" {
		scheduleErrs = append(scheduleErrs, errs.NewValueIsRequiredError("deliveryTime"))
	}
	if err := format.Validate(); err != nil {
		scheduleErrs = append(scheduleErrs, err)
	}
	if err := date.Validate(); err != nil {
		scheduleErrs = append(scheduleErrs, err)
	}
	return errors.Join(scheduleErrs...)
}

func validateProductLines(lines []ProductLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	var lineErrs []error
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			lineErrs = append(lineErrs, err)
		}
	}
	return errors.Join(lineErrs...)
}
