package main

// WeightProfile is a fully-populated set of per-heuristic enable flags and
// numeric weights plus thresholds. It is immutable within a single
// decision — every profile constructor below returns a fresh value, never
// a shared pointer.
type WeightProfile struct {
	Name string

	EnableWall             bool
	EnableSelf             bool
	EnableHeadToHead       bool
	EnableReachableArea    bool
	EnableAdjacentHead     bool
	EnableHeadCollision    bool
	EnableCenterControl    bool
	EnableFoodUrgency      bool
	EnableFoodSafety       bool
	EnableTailChase        bool
	EnableVoronoi          bool
	EnableCompetitiveLen   bool

	WallPenalty        float64
	SelfPenalty        float64
	HeadToHeadWin      float64
	HeadToHeadLose     float64
	ReachableAreaW     float64
	AdjacentHeadWin    float64
	AdjacentHeadLose   float64
	HeadCollisionWin   float64
	HeadCollisionLose  float64
	CenterControlBonus float64
	CenterControlPen   float64
	FoodUrgencyW       float64
	FoodSafetyPenalty  float64
	TailChaseW         float64
	VoronoiW           float64
	CompetitiveLenW    float64
	CompetitiveLenCrit float64

	HealthThreshold int // food urgency kicks in when health < this
	TurnThreshold   int // early/mid boundary
	SpaceThreshold  float64 // density fraction (0..1) of the mid/late boundary; selectPhase uses its own 0.40 literal, not this field
}

// defaultProfile holds the baseline magnitudes every named profile starts
// from and overrides selectively.
func defaultProfile() WeightProfile {
	return WeightProfile{
		Name: "default",

		EnableWall:           true,
		EnableSelf:           true,
		EnableHeadToHead:     true,
		EnableReachableArea:  true,
		EnableAdjacentHead:   true,
		EnableHeadCollision:  true,
		EnableCenterControl:  true,
		EnableFoodUrgency:    true,
		EnableFoodSafety:     true,
		EnableTailChase:      true,
		EnableVoronoi:        true,
		EnableCompetitiveLen: true,

		WallPenalty:        -10000,
		SelfPenalty:        -10000,
		HeadToHeadWin:       500,
		HeadToHeadLose:     -10000,
		ReachableAreaW:      8,
		AdjacentHeadWin:     150,
		AdjacentHeadLose:   -300,
		HeadCollisionWin:    100,
		HeadCollisionLose:  -5000,
		CenterControlBonus:  20,
		CenterControlPen:   -5,
		FoodUrgencyW:        300,
		FoodSafetyPenalty:  -150,
		TailChaseW:          15,
		VoronoiW:            120,
		CompetitiveLenW:     40,
		CompetitiveLenCrit:  90,

		HealthThreshold: 35,
		TurnThreshold:   75,
		SpaceThreshold:  0.40,
	}
}

// earlyProfile: turn <= 75 and not cramped. Food and growth emphasised,
// Voronoi disabled.
func earlyProfile() WeightProfile {
	p := defaultProfile()
	p.Name = "early"
	p.EnableVoronoi = false
	p.FoodUrgencyW = 420
	p.HealthThreshold = 50
	p.CenterControlBonus = 35
	return p
}

// midProfile: turn > 75, >=3 opponents, density <= 40%. Positioning and
// Voronoi emphasised, food only when hungry.
func midProfile() WeightProfile {
	p := defaultProfile()
	p.Name = "mid"
	p.VoronoiW = 220
	p.ReachableAreaW = 10
	p.HealthThreshold = 30
	p.FoodUrgencyW = 220
	return p
}

// lateProfile: <=2 opponents, or occupancy > 40%. Survival: high
// reachable-area and tail-chase weight, competitive length disabled.
func lateProfile() WeightProfile {
	p := defaultProfile()
	p.Name = "late"
	p.ReachableAreaW = 18
	p.TailChaseW = 35
	p.EnableCompetitiveLen = false
	p.VoronoiW = 160
	p.HealthThreshold = 40
	return p
}

// cheapProfile disables reachable area (flood-fill), Voronoi, tail-chase
// and center control. Used as the deadline
// escape evaluator when a search node is entered past its time budget.
func cheapProfile() WeightProfile {
	p := defaultProfile()
	p.Name = "cheap"
	p.EnableReachableArea = false
	p.EnableVoronoi = false
	p.EnableTailChase = false
	p.EnableCenterControl = false
	return p
}

// predictorProfile is the fixed cheap profile the opponent predictor uses:
// safeties on, flood-fill on, food urgency on with a higher threshold, a
// strong anti-collision-with-us term, strategic heuristics off.
func predictorProfile() WeightProfile {
	p := defaultProfile()
	p.Name = "predictor"
	p.EnableCenterControl = false
	p.EnableVoronoi = false
	p.EnableTailChase = false
	p.EnableCompetitiveLen = false
	p.HealthThreshold = 60
	p.HeadCollisionLose = -8000
	return p
}

// withFoodCompetition rewrites a profile for a food-scarce scramble:
// Voronoi and center control disabled, food and length weights raised,
// health threshold raised.
func withFoodCompetition(p WeightProfile) WeightProfile {
	p.Name = p.Name + "+foodCompetition"
	p.EnableVoronoi = false
	p.EnableCenterControl = false
	p.FoodUrgencyW *= 1.6
	p.CompetitiveLenW *= 1.5
	p.CompetitiveLenCrit *= 1.3
	p.HealthThreshold += 15
	return p
}
