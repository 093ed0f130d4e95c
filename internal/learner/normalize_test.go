package learner

import "testing"

func TestNormalizeTopic(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Markov Process", "markov_process"},
		{"markov process", "markov_process"},
		{"markov-process", "markov_process"},
		{"  Linear Algebra  ", "linear_algebra"},
		{"CALCULUS", "calculus"},
		{"already_normalized", "already_normalized"},
	}
	for _, c := range cases {
		if got := NormalizeTopic(c.in); got != c.want {
			t.Errorf("NormalizeTopic(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
