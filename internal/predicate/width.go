package predicate

// ChooseReWidth derives, for each position, the shortest common-prefix
// length that still distinguishes the chosen tail's value from every other
// value sharing its simplified tail — so RegexpValue can truncate rather
// than spell out the whole value. minLen is the floor set by --regexp[=N].
func ChooseReWidth(g *Group, minLen int) {
	for position := 1; position <= g.MaxPosition; position++ {
		chosen := g.chosenTail[position]
		if chosen == nil {
			continue
		}

		first := g.firstTail[position]

		maxChosen, maxFirst := 0, 0

		needsFirst := g.chosenState[position] == ChosenTailPlusFirstTailStart && chosen != first

		for _, t := range g.Tails {
			if t != chosen && t.SimpleTail == chosen.SimpleTail {
				if _, m := valueCmp(t.Value, chosen.Value, true); m > maxChosen {
					maxChosen = m
				}
			}

			if needsFirst && t != first && t.SimpleTail == first.SimpleTail {
				if _, m := valueCmp(t.Value, first.Value, true); m > maxFirst {
					maxFirst = m
				}
			}
		}

		if maxChosen < minLen {
			maxChosen = minLen
		}

		if maxFirst < minLen {
			maxFirst = minLen
		}

		g.reWidthChosen[position] = maxChosen
		g.reWidthFirst[position] = maxFirst

		chosen.ValueRegexp = RegexpValue(chosen.Value, maxChosen)

		if g.chosenState[position] == ChosenTailPlusFirstTailStart {
			if chosen == first {
				first.ValueRegexp = chosen.ValueRegexp
			} else {
				first.ValueRegexp = RegexpValue(first.Value, maxFirst)
			}
		}
	}
}

// ChoosePrettyWidth derives, for each position, the column width its
// chosen tail's rendered value should be padded to so that consecutive
// predicates for the same simplified tail line up, capped at maxWidth.
func ChoosePrettyWidth(g *Group, maxWidth int, useRegexp bool) {
	renderedLen := func(t *Tail) int {
		if useRegexp {
			return len(t.ValueRegexp)
		}

		return len(QuoteValue(t.Value))
	}

	for position := 1; position <= g.MaxPosition; position++ {
		prettyTail := g.chosenTail[position]
		if prettyTail == nil {
			continue
		}

		if g.chosenState[position] == ChosenTailPlusFirstTailStart {
			prettyTail = g.firstTail[position]
		}

		g.prettyWidth[position] = renderedLen(prettyTail)
	}

	for position := 1; position <= g.MaxPosition; position++ {
		if g.chosenTail[position] == nil {
			continue
		}

		maxW := 0
		simpleTail := g.chosenTail[position].SimpleTail

		for p := position; p <= g.MaxPosition; p++ {
			if g.chosenTail[p] == nil || g.chosenTail[p].SimpleTail != simpleTail {
				continue
			}

			if g.prettyWidth[p] <= maxWidth && g.prettyWidth[p] > maxW {
				maxW = g.prettyWidth[p]
			}

			g.prettyWidth[p] = maxW
		}

		if maxW > maxWidth {
			maxW = maxWidth
		}

		g.prettyWidth[position] = maxW
	}
}
