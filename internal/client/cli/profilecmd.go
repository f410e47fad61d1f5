package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dpetrovs/ember/internal/client/models"
	"github.com/dpetrovs/ember/internal/client/nav"
)

// ShowProfile opens the profile screen. Without a profile it offers the
// create workflow instead of a card.
func (a *App) ShowProfile(ctx context.Context) error {
	if a.goTo(nav.RouteProfile) != nav.RouteProfile {
		return nil
	}

	p, ok := a.session.Profile()
	if !ok {
		fmt.Println("You have no profile yet, type 'create' to make one")
		return nil
	}
	printProfile(p)
	return nil
}

// CreateProfile collects profile fields and submits a new profile. On
// success the session moves to the fully-authenticated state and the user
// lands on the feed.
func (a *App) CreateProfile(ctx context.Context) error {
	if _, ok := a.session.Profile(); ok {
		fmt.Println("You already have a profile, use 'edit'")
		return nil
	}

	p, err := a.inputProfile(ctx, models.Profile{IsActive: true})
	if err != nil {
		return err
	}

	if err := a.profile.Create(ctx, p); err != nil {
		fmt.Printf("Could not create profile: %v\n", err)
		return err
	}

	fmt.Println("Profile created")
	a.goTo(nav.RouteHome)
	return nil
}

// EditProfile re-prompts every field with the current value as the default
// and submits the full record.
func (a *App) EditProfile(ctx context.Context) error {
	current, ok := a.session.Profile()
	if !ok {
		fmt.Println("You have no profile yet, type 'create' to make one")
		return nil
	}

	p, err := a.inputProfile(ctx, current)
	if err != nil {
		return err
	}

	if err := a.profile.Update(ctx, p); err != nil {
		fmt.Printf("Could not update profile: %v\n", err)
		return err
	}

	fmt.Println("Profile updated")
	return nil
}

// DeleteProfile removes the profile after confirmation. The session drops
// back to the no-profile state, so the guard sends the user to profile
// creation on the next protected navigation.
func (a *App) DeleteProfile(ctx context.Context) error {
	if _, ok := a.session.Profile(); !ok {
		fmt.Println("You have no profile")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Delete your profile? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.profile.Delete(ctx); err != nil {
		fmt.Printf("Could not delete profile: %v\n", err)
		return err
	}

	a.feed.Reset()
	fmt.Println("Profile deleted")
	a.goTo(nav.RouteProfile)
	return nil
}

// inputProfile prompts for every profile field. Defaults come from the
// passed-in record; pressing Enter keeps them. When no location is entered
// and the device can produce one, its coordinates are used.
func (a *App) inputProfile(ctx context.Context, def models.Profile) (models.Profile, error) {
	p := def

	firstName, err := getSimpleText(a.reader, withDefault("First name", def.FirstName), os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	if firstName != "" {
		p.FirstName = firstName
	}

	lastName, err := getSimpleText(a.reader, withDefault("Last name", def.LastName), os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	if lastName != "" {
		p.LastName = lastName
	}

	age, err := GetInt(a.reader, withDefault("Age", fmt.Sprint(def.Age)), def.Age, os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	p.Age = age

	gender, err := getSimpleText(a.reader, withDefault("Gender", def.Gender), os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	if gender != "" {
		p.Gender = gender
	}

	bio, err := GetMultiline(a.reader, "Bio:", os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	if bio != "" {
		p.Bio = bio
	}

	interests, err := GetList(a.reader, withDefault("Interests (comma separated)", strings.Join(def.Interests, ", ")), os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	if interests != nil {
		p.Interests = interests
	}

	location, err := getSimpleText(a.reader, withDefault("Location", def.Location), os.Stdout)
	if err != nil {
		return models.Profile{}, err
	}
	switch {
	case location != "":
		p.Location = location
	case p.Location == "":
		if pos, err := a.geo.CurrentPosition(ctx); err == nil {
			p.Location = fmt.Sprintf("%.4f,%.4f", pos.Latitude, pos.Longitude)
		}
	}

	return p, nil
}

func withDefault(prompt, def string) string {
	if def == "" || def == "0" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, def)
}

func printProfile(p models.Profile) {
	fmt.Printf("%s, %d\n", p.FullName(), p.Age)
	if p.Gender != "" {
		fmt.Println("Gender: " + p.Gender)
	}
	if p.Bio != "" {
		fmt.Println(p.Bio)
	}
	if len(p.Interests) > 0 {
		fmt.Println("Interests: " + strings.Join(p.Interests, ", "))
	}
	if p.Location != "" {
		fmt.Println("Location: " + p.Location)
	}
	if !p.IsActive {
		fmt.Println("Profile is inactive")
	}
}
