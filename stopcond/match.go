package stopcond

// LooseMatch implements the loose-structure comparison (spec.md §4.6),
// ported from Multistrand's checkLooseStructure
// (original_source/state/scomplexlist.cc). ours and stop must have equal
// length (the caller checks this). '*' in stop is a wildcard: a mismatch at
// a wildcard position never costs distance.
//
// Algorithm: walk positions left to right, tracking the open-paren stacks
// of both strings. Every identity mismatch (unless wildcarded) costs one
// unit of the remaining tolerance d; a ')' closing a differently-positioned
// '(' costs one extra unit, plus a further unit if the position ours was
// paired to in stop was itself an opening paren in ours (the
// wrong-partner-at-the-partner-site penalty). d must never go negative.
func LooseMatch(ours, stop string, d int) bool {
	return matchStructures(ours, stop, d, true)
}

// CountMatch is LooseMatch without the '*' wildcard: every position is
// compared literally (spec.md §4.6 PERCENT_OR_COUNT_STRUCTURE).
func CountMatch(ours, stop string, d int) bool {
	return matchStructures(ours, stop, d, false)
}

func matchStructures(ours, stop string, d int, wildcard bool) bool {
	n := len(ours)
	var ourPairs, stopPairs []int

	pop := func(stack []int) ([]int, int) {
		last := stack[len(stack)-1]
		return stack[:len(stack)-1], last
	}

	for i := 0; i < n; i++ {
		isWild := wildcard && stop[i] == '*'
		if !isWild && ours[i] != stop[i] {
			d--
		}

		if ours[i] == '(' {
			ourPairs = append(ourPairs, i)
		}
		if stop[i] == '(' {
			stopPairs = append(stopPairs, i)
		}

		switch {
		case ours[i] == ')' && stop[i] == ')':
			var ourPartner, stopPartner int
			ourPairs, ourPartner = pop(ourPairs)
			stopPairs, stopPartner = pop(stopPairs)
			if ourPartner != stopPartner {
				d--
				if ours[stopPartner] == '(' {
					d--
				}
			}
		default:
			if ours[i] == ')' {
				ourPairs, _ = pop(ourPairs)
			}
			if stop[i] == ')' {
				var stopPartner int
				stopPairs, stopPartner = pop(stopPairs)
				if ours[stopPartner] == '(' {
					d--
				}
			}
		}

		if d < 0 {
			return false
		}
	}
	return true
}
