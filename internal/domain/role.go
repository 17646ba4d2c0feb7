package domain

// Lane represents a League of Legends position. It is used both as a
// champion's usual lane and as a user's main role.
type Lane string

const (
	LaneTop     Lane = "Top"
	LaneJungle  Lane = "Jungle"
	LaneMid     Lane = "Mid"
	LaneADCarry Lane = "ADCarry"
	LaneSupport Lane = "Support"
	LaneNA      Lane = "NA"
)

// AllLanes contains all valid lanes in order, NA last
var AllLanes = []Lane{LaneTop, LaneJungle, LaneMid, LaneADCarry, LaneSupport, LaneNA}

// IsValid checks if a lane is valid
func (l Lane) IsValid() bool {
	switch l {
	case LaneTop, LaneJungle, LaneMid, LaneADCarry, LaneSupport, LaneNA:
		return true
	}
	return false
}

// Label returns the serialized form of the lane
func (l Lane) Label() string {
	if l == LaneNA {
		return notSetLabel
	}
	return string(l)
}

// ParseLane resolves a lane key. An empty key means "not set".
func ParseLane(key string) (Lane, error) {
	return parseEnum(key, LaneNA, AllLanes, ErrInvalidLane)
}

// Gender is a user's self-declared gender
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
	GenderNA     Gender = "NA"
)

var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther, GenderNA}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderNA:
		return true
	}
	return false
}

func (g Gender) Label() string {
	if g == GenderNA {
		return notSetLabel
	}
	return string(g)
}

func ParseGender(key string) (Gender, error) {
	return parseEnum(key, GenderNA, AllGenders, ErrInvalidGender)
}

// Rank is the highest ranked tier a user declares. Tiers below Diamond are
// not tracked.
type Rank string

const (
	RankDiamond     Rank = "Diamond"
	RankMaster      Rank = "Master"
	RankGrandmaster Rank = "Grandmaster"
	RankChallenger  Rank = "Challenger"
	RankNA          Rank = "NA"
)

var AllRanks = []Rank{RankDiamond, RankMaster, RankGrandmaster, RankChallenger, RankNA}

func (r Rank) IsValid() bool {
	switch r {
	case RankDiamond, RankMaster, RankGrandmaster, RankChallenger, RankNA:
		return true
	}
	return false
}

func (r Rank) Label() string {
	if r == RankNA {
		return notSetLabel
	}
	return string(r)
}

func ParseRank(key string) (Rank, error) {
	return parseEnum(key, RankNA, AllRanks, ErrInvalidRank)
}

const notSetLabel = "N/A"

func parseEnum[T ~string](key string, unset T, all []T, invalid error) (T, error) {
	if key == "" {
		return unset, nil
	}
	for _, v := range all {
		if string(v) == key {
			return v, nil
		}
	}
	return unset, invalid
}
