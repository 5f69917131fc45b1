package engine

import (
	"sort"

	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"
)

// RegisterProfile links an external credential to exactly one Profile.
func (e *Engine) RegisterProfile(identityID, name, avatarURL string) (*domain.Profile, error) {
	now := e.clock.NowMillis()

	e.profiles.mu.Lock()
	if _, ok := e.profiles.byID[identityID]; ok {
		e.profiles.mu.Unlock()
		return nil, domain.ErrDuplicateRegistration
	}
	p := &domain.Profile{
		IdentityID: identityID,
		Name:       name,
		AvatarURL:  avatarURL,
		Rating:     defaultRating,
		CreatedAt:  now,
	}
	e.profiles.byID[identityID] = p
	snapshot := *p
	e.profiles.mu.Unlock()

	e.emit(events.ProfileRegistered, identityID, map[string]any{"name": name, "rating": snapshot.Rating})
	return &snapshot, nil
}

// GetProfile returns a copy of the profile.
func (e *Engine) GetProfile(identityID string) (*domain.Profile, error) {
	e.profiles.mu.Lock()
	defer e.profiles.mu.Unlock()
	p, ok := e.profiles.byID[identityID]
	if !ok {
		return nil, domain.ErrInvalidProfile
	}
	snapshot := *p
	return &snapshot, nil
}

// SetAvatar updates the profile's avatar.
func (e *Engine) SetAvatar(identityID, avatarURL string) error {
	e.profiles.mu.Lock()
	p, ok := e.profiles.byID[identityID]
	if !ok {
		e.profiles.mu.Unlock()
		return domain.ErrInvalidProfile
	}
	p.AvatarURL = avatarURL
	e.profiles.mu.Unlock()

	e.emit(events.ProfileUpdated, identityID, map[string]any{"avatar_url": avatarURL})
	return nil
}

// RecordWin bumps played/won. Privileged.
func (e *Engine) RecordWin(token, identityID string) error {
	if _, err := e.Authorize(token); err != nil {
		return err
	}
	e.profiles.mu.Lock()
	p, ok := e.profiles.byID[identityID]
	if !ok {
		e.profiles.mu.Unlock()
		return domain.ErrInvalidProfile
	}
	p.Played++
	p.Won++
	e.profiles.mu.Unlock()

	e.emit(events.WinRecorded, identityID, nil)
	return nil
}

// RecordLoss bumps played/lost. Privileged.
func (e *Engine) RecordLoss(token, identityID string) error {
	if _, err := e.Authorize(token); err != nil {
		return err
	}
	e.profiles.mu.Lock()
	p, ok := e.profiles.byID[identityID]
	if !ok {
		e.profiles.mu.Unlock()
		return domain.ErrInvalidProfile
	}
	p.Played++
	p.Lost++
	e.profiles.mu.Unlock()

	e.emit(events.LossRecorded, identityID, nil)
	return nil
}

// SetRating overwrites the rating. Privileged; ratings never go below zero.
func (e *Engine) SetRating(token, identityID string, rating int) error {
	if _, err := e.Authorize(token); err != nil {
		return err
	}
	if rating < 0 {
		rating = 0
	}
	e.profiles.mu.Lock()
	p, ok := e.profiles.byID[identityID]
	if !ok {
		e.profiles.mu.Unlock()
		return domain.ErrInvalidProfile
	}
	p.Rating = rating
	e.profiles.mu.Unlock()

	e.emit(events.RatingSet, identityID, map[string]any{"rating": rating})
	return nil
}

// TopProfiles returns up to limit profiles ordered by rating, highest
// first. Ties break on registration time, then identity.
func (e *Engine) TopProfiles(limit int) []domain.Profile {
	e.profiles.mu.Lock()
	all := make([]domain.Profile, 0, len(e.profiles.byID))
	for _, p := range e.profiles.byID {
		all = append(all, *p)
	}
	e.profiles.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Rating != all[j].Rating {
			return all[i].Rating > all[j].Rating
		}
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt < all[j].CreatedAt
		}
		return all[i].IdentityID < all[j].IdentityID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

const defaultRating = 1000
