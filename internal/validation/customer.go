// Package validation checks submitted order forms and carts before anything is written.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/willmarsh13/BookstoreDemo/internal/model"
)

// Field names reported in validation failures.
const (
	FieldName          = "name"
	FieldAddress       = "address"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldCCNumber      = "ccNumber"
	FieldCCExpiryMonth = "ccExpiryMonth"
)

const invalidExpiryMessage = "Please enter a valid expiration date."

// Limits matching the customer table columns.
const (
	maxEmailLength = 254
	minExpiryYear  = 1
	maxExpiryYear  = 9999
)

// validate is safe for concurrent use and caches rule parsing.
var validate = validator.New()

var usMobilePhonePattern = regexp.MustCompile(
	`^((\+1|1)?( |-)?)?(\([2-9][0-9]{2}\)|[2-9][0-9]{2})( |-)?([2-9][0-9]{2}( |-)?[0-9]{4})$`,
)

var cardSeparators = strings.NewReplacer(" ", "", "-", "")

// ValidateCustomerForm checks every customer field in a fixed order and returns the
// first failure. now decides whether the card has expired.
func ValidateCustomerForm(form model.CustomerForm, now time.Time) error {
	required := []struct {
		field string
		value string
	}{
		{FieldName, form.Name},
		{FieldAddress, form.Address},
		{FieldPhone, form.Phone},
		{FieldEmail, form.Email},
		{FieldCCNumber, form.CCNumber},
	}
	for _, r := range required {
		if err := checkNotEmpty(r.value, r.field); err != nil {
			return err
		}
	}

	if err := checkLength(form.Name, FieldName); err != nil {
		return err
	}
	if err := checkLength(form.Address, FieldAddress); err != nil {
		return err
	}
	if err := CheckPhone(form.Phone); err != nil {
		return err
	}
	if err := CheckEmail(form.Email); err != nil {
		return err
	}
	if err := CheckCCNumber(form.CCNumber); err != nil {
		return err
	}
	return CheckExpiry(form.CCExpiryMonth, form.CCExpiryYear, now)
}

func checkNotEmpty(value, field string) error {
	if validate.Var(value, "required") != nil {
		return model.NewValidationFailure(field, field+" is empty")
	}
	return nil
}

func checkLength(value, field string) error {
	if validate.Var(value, "min=4,max=45") != nil {
		return model.NewValidationFailure(field, field+" must be between 4 and 45 characters.")
	}
	return nil
}

// IsMobilePhone reports whether input is a US mobile number.
func IsMobilePhone(input string) bool {
	return usMobilePhonePattern.MatchString(input)
}

// CheckPhone rejects anything that is not a US mobile number.
func CheckPhone(value string) error {
	if !IsMobilePhone(value) {
		return model.NewValidationFailure(FieldPhone, "Invalid phone number")
	}
	return nil
}

// CheckEmail is intentionally weak: an "@", no spaces, no trailing period, at most 254 characters.
func CheckEmail(value string) error {
	if !strings.Contains(value, "@") || strings.HasSuffix(value, ".") || strings.Contains(value, " ") ||
		validate.Var(value, "max="+strconv.Itoa(maxEmailLength)) != nil {
		return model.NewValidationFailure(FieldEmail, "Invalid email address")
	}
	return nil
}

// CheckCCNumber accepts 14 to 16 characters once spaces and dashes are removed.
// There is no Luhn or card brand check.
func CheckCCNumber(value string) error {
	if validate.Var(NormalizeCCNumber(value), "min=14,max=16") != nil {
		return model.NewValidationFailure(FieldCCNumber, "Invalid Credit Card number")
	}
	return nil
}

// NormalizeCCNumber removes spaces and dashes. This is the form that is stored.
func NormalizeCCNumber(value string) string {
	return cardSeparators.Replace(value)
}

// CheckExpiry rejects unparseable dates and cards that expired before now's month.
// A card expiring in the current month is still valid.
func CheckExpiry(month, year string, now time.Time) error {
	m, y, err := parseExpiry(month, year)
	if err != nil {
		return err
	}
	if y*12+m < now.Year()*12+int(now.Month()) {
		return model.NewInvalidParameter(FieldCCExpiryMonth, invalidExpiryMessage)
	}
	return nil
}

// CardExpirationDate returns the first day of the expiry month in UTC.
func CardExpirationDate(month, year string) (time.Time, error) {
	m, y, err := parseExpiry(month, year)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), nil
}

func parseExpiry(month, year string) (int, int, error) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return 0, 0, model.NewValidationFailure(FieldCCExpiryMonth, invalidExpiryMessage)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, model.NewValidationFailure(FieldCCExpiryMonth, invalidExpiryMessage)
	}
	if validate.Var(m, "min=1,max=12") != nil {
		return 0, 0, model.NewValidationFailure(FieldCCExpiryMonth, invalidExpiryMessage)
	}
	if validate.Var(y, "min="+strconv.Itoa(minExpiryYear)+",max="+strconv.Itoa(maxExpiryYear)) != nil {
		return 0, 0, model.NewValidationFailure(FieldCCExpiryMonth, invalidExpiryMessage)
	}
	return m, y, nil
}
