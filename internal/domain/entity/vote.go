package entity

// VoteDirection is the direction of a cast vote.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Valid reports whether d is a known direction.
func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// VoteState holds the up/down voter sets of a votable entity.
// A user ID appears in at most one of the two sets at any time.
type VoteState struct {
	Upvoters   []string
	Downvoters []string
}

// Toggle applies a vote by userID in the given direction. The user is first
// removed from the opposite set, then membership in the target set is
// toggled: a repeated identical vote retracts, an opposite vote switches.
func (v *VoteState) Toggle(userID string, dir VoteDirection) {
	if dir == VoteUp {
		v.Downvoters = remove(v.Downvoters, userID)
		v.Upvoters = toggle(v.Upvoters, userID)
		return
	}
	v.Upvoters = remove(v.Upvoters, userID)
	v.Downvoters = toggle(v.Downvoters, userID)
}

// Score is the net vote count.
func (v *VoteState) Score() int {
	return len(v.Upvoters) - len(v.Downvoters)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func toggle(ids []string, id string) []string {
	if contains(ids, id) {
		return remove(ids, id)
	}
	return append(ids, id)
}
