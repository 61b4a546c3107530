package utils

import (
	"regexp"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var (
	mobilePattern      = regexp.MustCompile(`^[6-9]\d{9}$`)
	panPattern         = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	bankAccountPattern = regexp.MustCompile(`^\d{9,18}$`)
	ifscPattern        = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// IsValidMobile reports whether s is a ten digit Indian mobile number.
func IsValidMobile(s string) bool { return mobilePattern.MatchString(s) }

// IsValidPAN reports whether s is a well-formed PAN.
func IsValidPAN(s string) bool { return panPattern.MatchString(s) }

// IsValidBankAccount reports whether s is a 9 to 18 digit account number.
func IsValidBankAccount(s string) bool { return bankAccountPattern.MatchString(s) }

// IsValidIFSC reports whether s is a well-formed IFSC code.
func IsValidIFSC(s string) bool { return ifscPattern.MatchString(s) }

// RegisterValidators adds the domain tags (mobile, pan, bankaccount, ifsc,
// entrystage) to v.
func RegisterValidators(v *validator.Validate) error {
	tags := map[string]func(string) bool{
		"mobile":      IsValidMobile,
		"pan":         IsValidPAN,
		"bankaccount": IsValidBankAccount,
		"ifsc":        IsValidIFSC,
		"entrystage":  func(s string) bool { return domain.Stage(s).IsValid() },
	}
	for tag, fn := range tags {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}
