package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"azmedical/internal/domain/model"
	"azmedical/internal/validator"
)

func validBilling() model.BillingInfo {
	return model.BillingInfo{
		FirstName:  "Leyla",
		LastName:   "Əliyeva",
		Email:      "leyla@example.az",
		Phone:      "+994 50 123 45 67",
		Address:    "Nizami küç. 12",
		City:       "Bakı",
		PostalCode: "AZ1000",
		CardNumber: "4111111111111111",
		ExpiryDate: "12/27",
		CVV:        "123",
		CardName:   "LEYLA ALIYEVA",
	}
}

func TestValidateBilling_Valid(t *testing.T) {
	errs := validator.ValidateBilling(validBilling(), model.PaymentCard)
	assert.True(t, errs.Valid())
}

func TestValidateBilling_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.BillingInfo)
		field  string
	}{
		{"short first name", func(b *model.BillingInfo) { b.FirstName = "L" }, "firstName"},
		{"short last name", func(b *model.BillingInfo) { b.LastName = "Ə" }, "lastName"},
		{"bad email", func(b *model.BillingInfo) { b.Email = "not-an-email" }, "email"},
		{"short phone", func(b *model.BillingInfo) { b.Phone = "12345" }, "phone"},
		{"short address", func(b *model.BillingInfo) { b.Address = "N 1" }, "address"},
		{"short city", func(b *model.BillingInfo) { b.City = "B" }, "city"},
		{"short postal code", func(b *model.BillingInfo) { b.PostalCode = "123" }, "postalCode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBilling()
			tc.mutate(&b)

			errs := validator.ValidateBilling(b, model.PaymentCard)
			assert.False(t, errs.Valid())
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestValidateBilling_CardDetailsOnlyForCard(t *testing.T) {
	b := validBilling()
	b.CardNumber = ""
	b.ExpiryDate = ""
	b.CVV = ""
	b.CardName = ""

	errs := validator.ValidateBilling(b, model.PaymentCard)
	assert.Contains(t, errs, "cardNumber")

	for _, method := range []model.PaymentMethod{model.PaymentBank, model.PaymentMobile} {
		errs := validator.ValidateBilling(b, method)
		assert.True(t, errs.Valid(), "method %s should not need card details", method)
	}
}

func TestValidateLogin(t *testing.T) {
	assert.True(t, validator.ValidateLogin(validator.LoginInput{
		Email: "ali@example.com", Password: "secret1",
	}).Valid())

	errs := validator.ValidateLogin(validator.LoginInput{Email: "nope", Password: "short"})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestValidateRegister(t *testing.T) {
	valid := validator.RegisterInput{
		Name:            "Əli",
		Email:           "ali@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "0501234567",
		Terms:           true,
	}
	assert.True(t, validator.ValidateRegister(valid).Valid())

	mismatched := valid
	mismatched.ConfirmPassword = "secret2"
	assert.Contains(t, validator.ValidateRegister(mismatched), "confirmPassword")

	noTerms := valid
	noTerms.Terms = false
	assert.Contains(t, validator.ValidateRegister(noTerms), "terms")

	shortName := valid
	shortName.Name = "Ə"
	assert.Contains(t, validator.ValidateRegister(shortName), "name")
}

func TestValidateProfile(t *testing.T) {
	assert.True(t, validator.ValidateProfile(validator.ProfileInput{
		Name: "Əli", Email: "ali@example.com", Phone: "0501234567",
	}).Valid())

	errs := validator.ValidateProfile(validator.ProfileInput{Name: "", Email: "x", Phone: "1"})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, int64(4), validator.ParseQuantity("4"))
	assert.Equal(t, int64(1), validator.ParseQuantity(""))
	assert.Equal(t, int64(1), validator.ParseQuantity("abc"))
	assert.Equal(t, int64(1), validator.ParseQuantity("0"))
	// Negative values pass through; the cart turns them into a removal.
	assert.Equal(t, int64(-5), validator.ParseQuantity("-5"))
}
