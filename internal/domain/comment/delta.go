package comment

// Delta is the change a comment write applies to an actor's rating aggregate.
// Sum is added to rating_sum and Count to rating_count in one statement.
type Delta struct {
	Sum   int
	Count int
}

func Add(r Rating) Delta {
	return Delta{Sum: r.value, Count: 1}
}

func Remove(r Rating) Delta {
	return Delta{Sum: -r.value, Count: -1}
}

func Replace(prev, next Rating) Delta {
	return Delta{Sum: next.value - prev.value}
}

// IsZero reports a text-only edit, which leaves the aggregate alone.
func (d Delta) IsZero() bool {
	return d.Sum == 0 && d.Count == 0
}
