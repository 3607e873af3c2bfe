package entities

// Overall is a team's summed stats plus the stance of every member, in
// member order
type Overall struct {
	Stats
	Stance []string `json:"stance"`
}

// Clone returns a copy that shares no slices with o
func (o Overall) Clone() Overall {
	out := o
	out.Stance = make([]string, len(o.Stance))
	copy(out.Stance, o.Stance)
	return out
}

// TeamAggregate is a team as it exists during a match. Only Overall's
// numeric fields (hit points in practice) change once the match starts.
type TeamAggregate struct {
	Overall Overall        `json:"overall"`
	Members []FighterStats `json:"members"`
}

// Clone returns a deep copy of the team
func (t TeamAggregate) Clone() TeamAggregate {
	members := make([]FighterStats, len(t.Members))
	copy(members, t.Members)
	return TeamAggregate{
		Overall: t.Overall.Clone(),
		Members: members,
	}
}
