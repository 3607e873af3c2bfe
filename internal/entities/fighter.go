package entities

// RawFighter is a fighter as submitted by a player, before stat building
type RawFighter struct {
	Name   string `json:"name,omitempty"`
	Stance string `json:"stance"`
	Str    int    `json:"str"`
	Int    int    `json:"int"`
	Ref    int    `json:"ref"`
	Acc    int    `json:"acc"`
	Con    int    `json:"con"`
	Kno    int    `json:"kno"`
}

// Stats holds the derived numeric combat stats shared by fighters and teams
type Stats struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Flow       int `json:"flow"`
	Reflex     int `json:"reflex"`
	Dodge      int `json:"dodge"`
	Initiative int `json:"initiative"`
	HitPoints  int `json:"hit_points"`
}

// Add returns the field-wise sum of s and o
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Attack:     s.Attack + o.Attack,
		Defense:    s.Defense + o.Defense,
		Flow:       s.Flow + o.Flow,
		Reflex:     s.Reflex + o.Reflex,
		Dodge:      s.Dodge + o.Dodge,
		Initiative: s.Initiative + o.Initiative,
		HitPoints:  s.HitPoints + o.HitPoints,
	}
}

// FighterStats is the normalized combat record for one fighter.
// It is produced once by a stats.Builder and never changed afterwards.
type FighterStats struct {
	Name   string `json:"name,omitempty"`
	Stance string `json:"stance"`
	Stats
}
