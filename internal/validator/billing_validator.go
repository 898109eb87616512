package validator

import "azmedical/internal/domain/model"

// ValidateBilling checks the checkout form. Card details are required only
// when the payment method is card; the other methods need no extra fields.
func ValidateBilling(in model.BillingInfo, method model.PaymentMethod) FieldErrors {
	errs := FieldErrors{}

	if runeLen(in.FirstName) < 2 {
		errs["firstName"] = "validation.first_name_short"
	}
	if runeLen(in.LastName) < 2 {
		errs["lastName"] = "validation.last_name_short"
	}
	if !isEmailLike(in.Email) {
		errs["email"] = "validation.email_invalid"
	}
	if digitCount(in.Phone) < 10 {
		errs["phone"] = "validation.phone_invalid"
	}
	if runeLen(in.Address) < 5 {
		errs["address"] = "validation.address_short"
	}
	if runeLen(in.City) < 2 {
		errs["city"] = "validation.city_short"
	}
	if runeLen(in.PostalCode) < 4 {
		errs["postalCode"] = "validation.postal_code_short"
	}

	if method == model.PaymentCard {
		if runeLen(in.CardNumber) == 0 || runeLen(in.ExpiryDate) == 0 ||
			runeLen(in.CVV) == 0 || runeLen(in.CardName) == 0 {
			errs["cardNumber"] = "validation.card_details_required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
