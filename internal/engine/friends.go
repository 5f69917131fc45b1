package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"
)

// Friendships are symmetric edges stored on both sides: the same relation
// record is reachable from either identity.

func (f *friendStore) edge(a, b string) *domain.FriendRelation {
	if m, ok := f.edges[a]; ok {
		return m[b]
	}
	return nil
}

func (f *friendStore) link(rel *domain.FriendRelation) {
	for _, pair := range [2][2]string{{rel.Requester, rel.Recipient}, {rel.Recipient, rel.Requester}} {
		m, ok := f.edges[pair[0]]
		if !ok {
			m = make(map[string]*domain.FriendRelation)
			f.edges[pair[0]] = m
		}
		m[pair[1]] = rel
	}
}

func (f *friendStore) unlink(a, b string) {
	delete(f.edges[a], b)
	delete(f.edges[b], a)
}

// SendFriendRequest creates a pending edge from the caller.
func (e *Engine) SendFriendRequest(identityID, recipientID string) error {
	if identityID == recipientID {
		return domain.ErrSelfFriendship
	}
	if _, err := e.GetProfile(recipientID); err != nil {
		return err
	}

	e.friends.mu.Lock()
	if rel := e.friends.edge(identityID, recipientID); rel != nil {
		e.friends.mu.Unlock()
		if rel.State == domain.FriendStateAccepted {
			return domain.ErrAlreadyFriends
		}
		return domain.ErrFriendRequestExists
	}
	e.friends.link(&domain.FriendRelation{
		Requester: identityID,
		Recipient: recipientID,
		State:     domain.FriendStatePending,
		CreatedAt: e.clock.NowMillis(),
	})
	e.friends.mu.Unlock()

	e.emit(events.FriendRequestSent, identityID, map[string]any{"recipient": recipientID})
	return nil
}

// AcceptFriendRequest flips a pending edge to accepted. Only the recipient
// can accept.
func (e *Engine) AcceptFriendRequest(identityID, requesterID string) error {
	e.friends.mu.Lock()
	rel := e.friends.edge(identityID, requesterID)
	if rel == nil || rel.State != domain.FriendStatePending || rel.Recipient != identityID {
		e.friends.mu.Unlock()
		return domain.ErrNoFriendRequest
	}
	rel.State = domain.FriendStateAccepted
	e.friends.mu.Unlock()

	e.emit(events.FriendRequestAccepted, identityID, map[string]any{"requester": requesterID})
	return nil
}

// RejectFriendRequest drops a pending edge. The recipient rejects; the
// requester revokes; both land here.
func (e *Engine) RejectFriendRequest(identityID, otherID string) error {
	e.friends.mu.Lock()
	rel := e.friends.edge(identityID, otherID)
	if rel == nil || rel.State != domain.FriendStatePending {
		e.friends.mu.Unlock()
		return domain.ErrNoFriendRequest
	}
	e.friends.unlink(identityID, otherID)
	e.friends.mu.Unlock()

	e.emit(events.FriendRequestRejected, identityID, map[string]any{"other": otherID})
	return nil
}

// Unfriend removes an accepted edge from both sides.
func (e *Engine) Unfriend(identityID, otherID string) error {
	e.friends.mu.Lock()
	rel := e.friends.edge(identityID, otherID)
	if rel == nil || rel.State != domain.FriendStateAccepted {
		e.friends.mu.Unlock()
		return domain.ErrNoFriendRequest
	}
	e.friends.unlink(identityID, otherID)
	e.friends.mu.Unlock()

	e.emit(events.FriendRemoved, identityID, map[string]any{"other": otherID})
	return nil
}

// FriendsOf lists accepted friends of the identity.
func (e *Engine) FriendsOf(identityID string) []string {
	e.friends.mu.Lock()
	defer e.friends.mu.Unlock()
	var out []string
	for other, rel := range e.friends.edges[identityID] {
		if rel.State == domain.FriendStateAccepted {
			out = append(out, other)
		}
	}
	return out
}

// PendingRequestsFor lists identities with a request awaiting the caller.
func (e *Engine) PendingRequestsFor(identityID string) []string {
	e.friends.mu.Lock()
	defer e.friends.mu.Unlock()
	var out []string
	for other, rel := range e.friends.edges[identityID] {
		if rel.State == domain.FriendStatePending && rel.Recipient == identityID {
			out = append(out, other)
		}
	}
	return out
}
