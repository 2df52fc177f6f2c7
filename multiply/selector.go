package multiply

// CostModel declares the relative price of a scalar multiplication versus
// a scalar addition on the caller's target, plus a tie-breaking policy.
// Weights are normally positive; Select rejects a model only when both are
// non-positive, since a single meaningful weight still yields a canonical
// minimizer. A CostModel is immutable per selection call.
type CostModel struct {
	// MultiplicationWeight prices one scalar multiplication.
	MultiplicationWeight float64
	// AdditionWeight prices one scalar addition or subtraction.
	AdditionWeight float64
	// PreferFewerMultiplications breaks exact cost ties toward the variant
	// with fewer multiplications; when false, ties break toward the
	// earlier (more auditable) variant in canonical order.
	PreferFewerMultiplications bool
}

// DefaultCostModel prices multiplications and additions equally, under
// which Standard (45 total operations) always wins.
func DefaultCostModel() CostModel {
	return CostModel{MultiplicationWeight: 1, AdditionWeight: 1}
}

// Cost returns MultiplicationWeight·mults(v) + AdditionWeight·adds(v)
// using the fixed documented counts for v.
func (cm CostModel) Cost(v Variant) float64 {
	mults, adds := v.Counts()

	return cm.MultiplicationWeight*float64(mults) + cm.AdditionWeight*float64(adds)
}

// Select returns the Variant minimizing cm.Cost over the closed set, in
// canonical order Standard, StrassenBlock, Laderman.
//
// Tie-breaking: exact cost ties go to the variant with fewer
// multiplications when cm.PreferFewerMultiplications is set, otherwise to
// the earliest tied variant (Standard first — the simplest to audit).
//
// Select is a pure function of its CostModel: identical weights always
// return the same variant.
//
// Note: with both weights positive, StrassenBlock (26 mult, 32 add) is
// never the strict minimizer — beating Standard needs the multiplication
// weight above 14× the addition weight, while beating Laderman needs it
// below 28/3×. It remains in the set as a legitimate operating point for
// callers choosing by Counts directly.
//
// Errors:
//   - ErrBadCostModel — both weights ≤ 0.
func Select(cm CostModel) (Variant, error) {
	if cm.MultiplicationWeight <= 0 && cm.AdditionWeight <= 0 {
		return Standard, ErrBadCostModel
	}

	best := Standard
	bestCost := cm.Cost(best)
	bestMults, _ := best.Counts()

	for _, v := range Variants()[1:] {
		cost := cm.Cost(v)
		mults, _ := v.Counts()

		switch {
		case cost < bestCost:
			best, bestCost, bestMults = v, cost, mults
		case cost == bestCost && cm.PreferFewerMultiplications && mults < bestMults:
			best, bestCost, bestMults = v, cost, mults
		}
	}

	return best, nil
}
