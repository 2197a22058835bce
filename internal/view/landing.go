package view

import (
	"context"
	"errors"
	"fmt"
)

// Addresses understood by every host.
const (
	AddressLanding   = "/"
	AddressDashboard = "/dashboard"
)

const (
	landingHeading   = "Home Page"
	landingLinkLabel = "To Dashboard"
)

// Link is an activatable navigation element.
type Link struct {
	Label   string
	Address string
}

// LandingOutput is the rendered landing view.
type LandingOutput struct {
	Heading string
	Link    Link
}

// Landing is the static entry view. It has no state.
type Landing struct{}

// Render returns the fixed landing output.
func (Landing) Render() LandingOutput {
	return LandingOutput{
		Heading: landingHeading,
		Link:    Link{Label: landingLinkLabel, Address: AddressDashboard},
	}
}

// Activate follows the landing link through nav.
func (l Landing) Activate(ctx context.Context, nav Navigator) error {
	if nav == nil {
		return errors.New("navigator is required")
	}
	address := l.Render().Link.Address
	if err := nav.Navigate(ctx, address); err != nil {
		return fmt.Errorf("navigate to %s: %w", address, err)
	}
	return nil
}
