package behaviortree

// recorder builds stub actions which record each invocation.
type recorder struct {
	calls []string
}

func (r *recorder) action(name string, status Status) Action {
	return func() Status {
		r.calls = append(r.calls, name)
		return status
	}
}

func (r *recorder) count(name string) (n int) {
	for _, call := range r.calls {
		if call == name {
			n++
		}
	}
	return
}

// sequenceOf returns an action that yields each status in turn, repeating the
// last one once exhausted.
func sequenceOf(statuses ...Status) (Action, *int) {
	calls := new(int)
	return func() Status {
		i := *calls
		*calls++
		if i >= len(statuses) {
			i = len(statuses) - 1
		}
		return statuses[i]
	}, calls
}
