package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateListing - проверка на границе модели. Возвращает nil или ErrInvalidListing,
// обернутую вместе со всеми найденными нарушениями.
func ValidateListing(l *Listing) error {
	var violations []error

	if !l.Type.IsValid() {
		violations = append(violations, ErrInvalidType)
	}
	if !l.Status.IsValid() {
		violations = append(violations, fmt.Errorf("%w: %q", ErrInvalidStatus, l.Status))
	}
	if strings.TrimSpace(l.Title) == "" {
		violations = append(violations, ErrEmptyTitle)
	}
	if !(l.Price > 0) {
		violations = append(violations, ErrInvalidPrice)
	}
	if l.Currency != "" && !IsValidCurrency(l.Currency) {
		violations = append(violations, fmt.Errorf("%w: %q", ErrInvalidCurrency, l.Currency))
	}
	if err := l.Category.Validate(); err != nil {
		violations = append(violations, fmt.Errorf("category %q/%q: %w", l.Category.Main, l.Category.Sub, err))
	}

	violations = append(violations, validateLocation(l.Location)...)
	violations = append(violations, validateSpecs(l.Specs)...)

	if l.Category.IsLand() {
		if l.Interior != nil || l.Exterior != nil || l.Building != nil {
			violations = append(violations, ErrLandWithFeatures)
		}
		if l.Land != nil && l.Land.ZoningStatus != "" && !IsValidZoningStatus(l.Land.ZoningStatus) {
			violations = append(violations, enumViolation("zoningStatus", l.Land.ZoningStatus))
		}
	} else if l.Land != nil {
		violations = append(violations, ErrLandDetailsOnBuilt)
	}

	if l.Interior != nil && l.Interior.KitchenType != "" && !IsValidKitchenType(l.Interior.KitchenType) {
		violations = append(violations, enumViolation("kitchenType", l.Interior.KitchenType))
	}
	if l.Exterior != nil && l.Exterior.FacadeDirection != "" && !IsValidFacadeDirection(l.Exterior.FacadeDirection) {
		violations = append(violations, enumViolation("facadeDirection", l.Exterior.FacadeDirection))
	}

	if len(violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidListing, errors.Join(violations...))
}

func validateLocation(loc Location) []error {
	var violations []error
	if strings.TrimSpace(loc.Country) == "" {
		violations = append(violations, fmt.Errorf("%w: country is required", ErrLocationHierarchy))
	}
	if strings.TrimSpace(loc.City) == "" {
		violations = append(violations, fmt.Errorf("%w: city is required", ErrLocationHierarchy))
	}
	if loc.District != "" && loc.City == "" {
		violations = append(violations, fmt.Errorf("%w: district without city", ErrLocationHierarchy))
	}
	if loc.Neighborhood != "" && loc.District == "" {
		violations = append(violations, fmt.Errorf("%w: neighborhood without district", ErrLocationHierarchy))
	}
	if loc.Coordinates != nil && !loc.Coordinates.IsValid() {
		violations = append(violations, ErrInvalidCoordinates)
	}
	return violations
}

func validateSpecs(s Specs) []error {
	var violations []error

	checks := []struct {
		field string
		value string
		valid func(string) bool
	}{
		{"roomType", s.RoomType, IsValidRoomType},
		{"heatingType", s.HeatingType, IsValidHeatingType},
		{"furnishing", s.Furnishing, IsValidFurnishing},
		{"usageStatus", s.UsageStatus, IsValidUsageStatus},
		{"deedStatus", s.DeedStatus, IsValidDeedStatus},
		{"fromWho", s.FromWho, IsValidFromWho},
	}
	for _, c := range checks {
		if c.value != "" && !c.valid(c.value) {
			violations = append(violations, enumViolation(c.field, c.value))
		}
	}

	floats := map[string]*float64{"netSize": s.NetSize, "grossSize": s.GrossSize, "monthlyFee": s.MonthlyFee}
	for _, name := range []string{"netSize", "grossSize", "monthlyFee"} {
		if v := floats[name]; v != nil && *v < 0 {
			violations = append(violations, fmt.Errorf("%w: %s", ErrNegativeValue, name))
		}
	}
	ints := map[string]*int{"bathroomCount": s.BathroomCount, "balconyCount": s.BalconyCount, "age": s.Age, "totalFloors": s.TotalFloors}
	for _, name := range []string{"bathroomCount", "balconyCount", "age", "totalFloors"} {
		if v := ints[name]; v != nil && *v < 0 {
			violations = append(violations, fmt.Errorf("%w: %s", ErrNegativeValue, name))
		}
	}
	return violations
}

func enumViolation(field, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidEnumValue, field, value)
}
