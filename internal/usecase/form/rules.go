package form

import (
	"regexp"
	"strings"

	"github.com/garciapp2/gameaccounts/internal/domain"
)

// emailPattern accepts the simple local@domain shape; real
// deliverability is the server's problem.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const minPasswordLength = 6

// ValidateUserDraft checks a user draft. The password is mandatory
// with a minimum length only when creating; when editing, an empty
// password means "keep the stored credential" and is valid.
func ValidateUserDraft(d domain.UserDraft, editing bool) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(d.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(d.Email):
		errs["email"] = "Email is invalid"
	}

	if !editing {
		switch {
		case strings.TrimSpace(d.Password) == "":
			errs["password"] = "Password is required for new users"
		case len(d.Password) < minPasswordLength:
			errs["password"] = "Password must be at least 6 characters"
		}
	} else if d.Password != "" && len(d.Password) < minPasswordLength {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

// ValidateGameDraft checks a game draft. A zero price is legal:
// free-to-play titles exist.
func ValidateGameDraft(d domain.GameDraft, _ bool) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case d.Platform == "":
		errs["platform"] = "Platform is required"
	case !d.Platform.Valid():
		errs["platform"] = "Platform is not a known platform"
	}

	if d.Price.IsNegative() {
		errs["price"] = "Price must not be negative"
	}

	return errs
}

// ValidateGameAccountDraft checks a game account draft.
func ValidateGameAccountDraft(d domain.GameAccountDraft, _ bool) map[string]string {
	errs := map[string]string{}

	if d.User.ID == 0 {
		errs["user"] = "User is required"
	}
	if d.Game.ID == 0 {
		errs["game"] = "Game is required"
	}
	if strings.TrimSpace(d.CharacterName) == "" {
		errs["characterName"] = "Character name is required"
	}
	if d.Level < 1 || d.Level > 100 {
		errs["level"] = "Level must be between 1 and 100"
	}
	if d.Balance.IsNegative() {
		errs["balance"] = "Balance must not be negative"
	}

	return errs
}

// ValidateAdvertisementDraft checks an advertisement draft. The
// account-belongs-to-pair rule is not re-checked here: the selection
// resolver already makes other pairs unselectable. Only the
// structural precondition is enforced, an account reference without
// both governing keys.
func ValidateAdvertisementDraft(d domain.AdvertisementDraft, _ bool) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "Description is required"
	}
	if !d.Price.IsPositive() {
		errs["price"] = "Price must be a positive number"
	}
	if d.User.ID == 0 {
		errs["user"] = "User is required"
	}
	if d.Game.ID == 0 {
		errs["game"] = "Game is required"
	}
	if d.GameAccount != nil && (d.User.ID == 0 || d.Game.ID == 0) {
		errs["gameAccount"] = "Choose a user and a game before attaching an account"
	}

	return errs
}

// ValidateTransactionDraft checks a transaction draft.
func ValidateTransactionDraft(d domain.TransactionDraft, _ bool) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "Description is required"
	}
	if !d.Amount.IsPositive() {
		errs["amount"] = "Amount must be a positive number"
	}
	if d.Date.IsZero() {
		errs["date"] = "Date is required"
	}

	switch {
	case d.Type == "":
		errs["type"] = "Type is required"
	case !d.Type.Valid():
		errs["type"] = "Type is not a known transaction type"
	}

	switch {
	case d.Status == "":
		errs["status"] = "Status is required"
	case !d.Status.Valid():
		errs["status"] = "Status is not a known transaction status"
	}

	if d.User.ID == 0 {
		errs["user"] = "User is required"
	}

	return errs
}
