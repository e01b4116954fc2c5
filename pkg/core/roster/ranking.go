package roster

import "sort"

// DefaultRankLimit bounds the eligible-top list when the caller does
// not ask for a specific size.
const DefaultRankLimit = 5

// Rank evaluates and scores every candidate in the pool for one shift.
//
// AllRanked contains every candidate, eligible or not, sorted by score
// descending; the sort is stable so equal scores keep their input order
// and rankings are reproducible. EligibleTop is the eligible subset of
// that ordering truncated to limit. An empty pool yields empty lists,
// never an error.
func Rank(shift Shift, candidates []Candidate, policy Policy, limit int) RankingResult {
	if limit <= 0 {
		limit = DefaultRankLimit
	}

	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, cand := range candidates {
		ranked = append(ranked, evaluateCandidate(shift, cand, policy))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	top := make([]RankedCandidate, 0, limit)
	for _, rc := range ranked {
		if len(top) == limit {
			break
		}
		if rc.Eligible {
			top = append(top, rc)
		}
	}

	return RankingResult{EligibleTop: top, AllRanked: ranked}
}

// evaluateCandidate runs the full rule set and scoring model for one
// candidate. Warnings on passing verdicts are folded into the reason
// list so managers see soft breaches alongside the scoring rationale.
func evaluateCandidate(shift Shift, cand Candidate, policy Policy) RankedCandidate {
	verdicts := EvaluateEligibility(cand.Profile, cand.Commitments, shift, policy, false)

	eligible := true
	violations := []EligibilityVerdict{}
	warnings := []string{}
	for _, v := range verdicts {
		if !v.OK {
			eligible = false
			violations = append(violations, v)
			continue
		}
		if v.Reason != "" {
			warnings = append(warnings, v.Reason)
		}
	}

	scored := Score(cand.Profile, shift, cand.Commitments, policy)

	return RankedCandidate{
		StaffID:    cand.Profile.ID,
		Score:      scored.Score,
		Eligible:   eligible,
		Reasons:    append(scored.Reasons, warnings...),
		Violations: violations,
	}
}
