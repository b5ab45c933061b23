package services

// Rule-based exercise recommendations. Always returns exactly three
// strings, in a fixed order: BMI tier, then age tier, then goal tier.
// The engine is deterministic and never fails: an absent BMI degrades to
// a profile-completion prompt and an unrecognized goal is treated as
// "maintain".

const (
	GoalLose     = "lose"
	GoalGain     = "gain"
	GoalMaintain = "maintain"
)

// NormalizeGoal maps any malformed goal value onto the default.
func NormalizeGoal(goal string) string {
	switch goal {
	case GoalLose, GoalGain, GoalMaintain:
		return goal
	default:
		return GoalMaintain
	}
}

// Recommend derives three pieces of advice from age, BMI and goal.
// bmi is nil when the stored profile has no height yet.
//
// BMI bands are inclusive on the lower edge, exclusive on the upper:
// [0,18.5) underweight, [18.5,25) normal, [25,30) overweight, [30,∞) obese.
// Age bands follow the same convention: [60,∞), [40,60), [0,40).
func Recommend(age int, bmi *float64, goal string) []string {
	recs := make([]string, 0, 3)

	if bmi == nil {
		recs = append(recs, "Please add height and weight so we can recommend tailored exercises.")
	} else {
		switch b := *bmi; {
		case b < 18.5:
			recs = append(recs, "Increase strength training (full body) 2-3x/week and add calorie-dense healthy foods.")
		case b < 25:
			recs = append(recs, "Mix of cardio (30 min moderate 3x/week) and resistance training (2x/week).")
		case b < 30:
			recs = append(recs, "Focus on moderate cardio (walking, cycling) 4-5x/week and progressive resistance training 2x/week.")
		default:
			recs = append(recs, "Low-impact cardio (walking, swimming) daily if possible and start strength training 2x/week. Consult a clinician.")
		}
	}

	switch {
	case age >= 60:
		recs = append(recs, "Prioritize balance and flexibility (yoga, tai chi) and functional strength work.")
	case age >= 40:
		recs = append(recs, "Include mobility work and progressive strength training; allow extra recovery.")
	default:
		recs = append(recs, "Include a mix of HIIT or interval cardio if cleared for vigorous exercise.")
	}

	switch NormalizeGoal(goal) {
	case GoalLose:
		recs = append(recs, "Calorie deficit + cardio + strength 3x/week. Track intake and weekly progress.")
	case GoalGain:
		recs = append(recs, "Calorie surplus + focused strength program (3-5x/week) with progressive overload.")
	default:
		recs = append(recs, "Maintenance: balanced training with two strength sessions and 2-3 cardio sessions/week.")
	}

	return recs
}
