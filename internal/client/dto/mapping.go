package dto

import "github.com/dpetrovs/ember/internal/client/models"

// UserFromDTO converts a wire user record to the internal shape.
func UserFromDTO(d UserDTO) models.User {
	return models.User{
		ID:        d.ID,
		Email:     d.Email,
		ProfileID: d.ProfileID,
	}
}

// ProfileFromDTO converts a wire profile record to the internal shape.
// A nil interests list becomes an empty one.
func ProfileFromDTO(d ProfileDTO) models.Profile {
	return models.Profile{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Bio:       d.Bio,
		Age:       d.Age,
		Gender:    d.Gender,
		Interests: copyInterests(d.Interests),
		Location:  d.Location,
	}
}

// ProfileToCreateDTO projects a profile into the create request shape.
// The ID and activity flag are server-assigned and deliberately dropped.
func ProfileToCreateDTO(p models.Profile) CreateProfileDTO {
	return CreateProfileDTO{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Bio:       p.Bio,
		Age:       p.Age,
		Gender:    p.Gender,
		Interests: copyInterests(p.Interests),
		Location:  p.Location,
	}
}

// ProfileToUpdateDTO projects a profile into the update request shape,
// carrying the activity flag.
func ProfileToUpdateDTO(p models.Profile) UpdateProfileDTO {
	return UpdateProfileDTO{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Bio:       p.Bio,
		Age:       p.Age,
		Gender:    p.Gender,
		Interests: copyInterests(p.Interests),
		Location:  p.Location,
		IsActive:  p.IsActive,
	}
}

// CandidateFromFeedDTO converts a feed profile into a discovery candidate.
// The feed does not expose email or timestamps.
func CandidateFromFeedDTO(d ProfileDTO) models.Candidate {
	return models.Candidate{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Bio:       d.Bio,
		Age:       d.Age,
		Gender:    d.Gender,
		Interests: copyInterests(d.Interests),
		Location:  d.Location,
	}
}

func copyInterests(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
