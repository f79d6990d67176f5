package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/orwel/orwel-cli/internal/shared"
)

// Profile shows the logged-in user's profile and optionally updates the
// address, geocoding it when the geocoding service is configured.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Log in first")
		return err
	}

	printlnFn("Username:  ", user.Username)
	printlnFn("Email:     ", user.Email)
	printlnFn("Name:      ", strings.TrimSpace(user.FirstName+" "+user.LastName))
	printlnFn("Occupation:", user.Occupation)
	printlnFn("Address:   ", user.Address)
	printlnFn("Tags:      ", strings.Join(user.CommodityTags, ", "))
	if user.LocationInfo != nil {
		printlnFn("Location:  ", user.LocationInfo.FormattedAddress)
	}

	answer, err := GetSimpleText(a.reader, "Update address? (y/N)", os.Stdout)
	if err != nil || !strings.EqualFold(answer, "y") {
		return nil
	}

	address, err := GetSimpleText(a.reader, "Enter new address", os.Stdout)
	if err != nil {
		return err
	}

	updated := *user
	updated.Address = address

	if a.geo.Configured() {
		loc, err := a.geo.Locate(ctx, address)
		switch {
		case err == nil:
			updated.LocationInfo = loc
			updated.Country = loc.CountryCode
			updated.City = loc.City
			printlnFn("Resolved to:", loc.FormattedAddress)
		case errors.Is(err, shared.ErrNotFound):
			printlnFn("Address could not be geocoded; saving as entered")
		default:
			printlnFn("Geocoding unavailable; saving as entered")
		}
	}

	if _, err := a.auth.UpdateUser(ctx, &updated); err != nil {
		printlnFn("Profile update unsuccessful:", err.Error())
		return err
	}
	printlnFn("Profile updated")
	return nil
}
