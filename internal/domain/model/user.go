package model

type AccountType string

const (
	AccountRegular       AccountType = "regular"
	AccountSocialSupport AccountType = "social-support"
)

type SupportCategory string

const (
	SupportAssistance SupportCategory = "assistance"
	SupportVeterans   SupportCategory = "veterans"
	SupportDisabled   SupportCategory = "disabled"
)

// UserProfile is the stored account. Type is the variant tag; Category is
// set only for social-support accounts and names the aid program.
type UserProfile struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Avatar   string          `json:"avatar,omitempty"`
	Type     AccountType     `json:"type,omitempty"`
	Category SupportCategory `json:"category,omitempty"`
}

func (p UserProfile) IsSocialSupport() bool {
	return p.Type == AccountSocialSupport
}
