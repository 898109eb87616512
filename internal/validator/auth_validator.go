package validator

// LoginInput mirrors the login form.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput mirrors the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Terms           bool
}

// ProfileInput mirrors the profile edit form. The optional fields carry no
// rules beyond being stored as given.
type ProfileInput struct {
	Name             string
	Email            string
	Phone            string
	DateOfBirth      string
	Address          string
	EmergencyContact string
}

func ValidateLogin(in LoginInput) FieldErrors {
	errs := FieldErrors{}

	if !isEmailLike(in.Email) {
		errs["email"] = "validation.email_invalid"
	}
	if len(in.Password) < 6 {
		errs["password"] = "validation.password_short"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(in RegisterInput) FieldErrors {
	errs := FieldErrors{}

	if runeLen(in.Name) < 2 {
		errs["name"] = "validation.name_short"
	}
	if !isEmailLike(in.Email) {
		errs["email"] = "validation.email_invalid"
	}
	if len(in.Password) < 6 {
		errs["password"] = "validation.password_short"
	}
	if len(in.ConfirmPassword) < 6 {
		errs["confirmPassword"] = "validation.password_short"
	} else if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "validation.passwords_mismatch"
	}
	if digitCount(in.Phone) < 10 {
		errs["phone"] = "validation.phone_invalid"
	}
	if !in.Terms {
		errs["terms"] = "validation.terms_required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateProfile(in ProfileInput) FieldErrors {
	errs := FieldErrors{}

	if runeLen(in.Name) < 2 {
		errs["name"] = "validation.name_short"
	}
	if !isEmailLike(in.Email) {
		errs["email"] = "validation.email_invalid"
	}
	if digitCount(in.Phone) < 10 {
		errs["phone"] = "validation.phone_invalid"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
