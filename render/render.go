package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Format selects the output syntax.
//
//   - Text  — plain arithmetic: 2*s(t_1)^2
//   - LaTeX — equation-array markup: + & 2\ s_X(\tau_1)^2 \\ \nonumber
type Format int

const (
	// Text format: "*" products, bare "^" exponents.
	Text Format = iota

	// LaTeX format: "\ " products, alignment "&" and "\nonumber" line glue.
	LaTeX
)

// LagLabeler maps a lag value to its display string, e.g. 2 → "s(t_2)".
// The mapping is caller configuration; the core never computes labels.
type LagLabeler func(lag int) string

// Options configures rendering.
//
// Fields:
//   - Format — Text or LaTeX.
//   - Color  — wrap coefficients in ANSI color (terminal output only).
//   - Align  — right-align the coefficient column (Text format only).
type Options struct {
	Format Format
	Color  bool
	Align  bool
}

// DefaultOptions returns plain uncolored text rendering.
func DefaultOptions() Options {
	return Options{Format: Text}
}

// PlainLabels returns the identity labeling s(lag) — appropriate when the
// reduced sequence held literal time positions, so each lag is itself the
// covariance argument.
func PlainLabels(f Format) LagLabeler {
	cov := covName(f)

	return func(lag int) string {
		return fmt.Sprintf("%s(%d)", cov, lag)
	}
}

// StationaryLabels derives lag labels from an analytical integer assignment.
// values holds the assigned integers — the full mapped sequence as returned
// by stationary.Analytical, or just the distinct values; repeats collapse in
// first-occurrence order, which is the labeler's assignment order. names
// holds the matching display offsets per distinct value, where index 0 is
// the base time (rendered empty). A nil or short names slice falls back to
// generated offsets t_k (Text) or \tau_k (LaTeX).
//
// The lag |values[l]−values[k]| labels the covariance between the k-th and
// l-th offsets, e.g. s(t_2-t_1). With the super-additive 2^k−1 assignment
// every lag belongs to exactly one pair, so the mapping is well defined.
// Unknown lags fall back to the plain s(lag) form.
func StationaryLabels(values []int, names []string, f Format) LagLabeler {
	cov := covName(f)

	seen := make(map[int]bool, len(values))
	distinct := make([]int, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	values = distinct

	name := func(k int) string {
		if k < len(names) && (k == 0 || names[k] != "") {
			return names[k]
		}
		if k == 0 {
			return ""
		}
		if f == LaTeX {
			return fmt.Sprintf(`\tau_%d`, k)
		}

		return fmt.Sprintf("t_%d", k)
	}

	labels := map[int]string{0: cov + "(0)"}
	for k := 0; k < len(values); k++ {
		for l := k + 1; l < len(values); l++ {
			d := values[l] - values[k]
			if d < 0 {
				d = -d
			}
			if _, ok := labels[d]; ok {
				continue // unreachable under super-additive assignments
			}
			minuend := name(l)
			if sub := name(k); sub != "" {
				minuend += "-" + sub
			}
			labels[d] = cov + "(" + minuend + ")"
		}
	}

	plain := PlainLabels(f)

	return func(lag int) string {
		if s, ok := labels[lag]; ok {
			return s
		}

		return plain(lag)
	}
}

// Render writes the table as one term per line, sorted by multiplicity
// ascending with ties kept in first-seen order. A nil label falls back to
// PlainLabels. An empty table renders to the empty string; a table holding
// only the empty shape renders its multiplicity alone (the empty product
// is 1).
func Render(t *CountTable, label LagLabeler, opts Options) string {
	if label == nil {
		label = PlainLabels(opts.Format)
	}

	terms := t.Terms()
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Count < terms[j].Count })

	coefs := make([]string, len(terms))
	width := 0
	for i, term := range terms {
		if term.Count != 1 {
			coefs[i] = strconv.Itoa(term.Count) + timesGlue(opts.Format)
		}
		if w := runewidth.StringWidth(coefs[i]); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i, term := range terms {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString("+ ")
		} else if opts.Align {
			b.WriteString("  ")
		}
		if opts.Format == LaTeX {
			b.WriteString("& ")
		}

		coef := coefs[i]
		if opts.Align && opts.Format == Text {
			coef = runewidth.FillLeft(coef, width)
		}
		if opts.Color && coef != "" {
			coef = color.LightCyan.Sprint(coef)
		}
		b.WriteString(coef)

		factors := factorString(term, label)
		if factors == "" {
			// Empty shape: the empty product contributes 1.
			factors = "1"
		}
		b.WriteString(factors)

		if opts.Format == LaTeX {
			b.WriteString(` \\ \nonumber`)
		}
	}

	return b.String()
}

// factorString concatenates the covariance factors of one term, e.g.
// "s(0)^2s(t_1)^2".
func factorString(term Term, label LagLabeler) string {
	var b strings.Builder
	for lag, mult := range term.Shape {
		if mult == 0 {
			continue
		}
		b.WriteString(label(lag))
		if mult > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(mult))
		}
	}

	return b.String()
}

// covName returns the covariance-function symbol for the format.
func covName(f Format) string {
	if f == LaTeX {
		return "s_X"
	}

	return "s"
}

// timesGlue separates a coefficient from its factors.
func timesGlue(f Format) string {
	if f == LaTeX {
		return `\ `
	}

	return "*"
}
