// Package instance reads and writes hub problems in the plain text format
//
//	N K M
//	i B[i]        (K lines: hub site at facility i costing B[i])
//	i j c[i,j]    (M lines: tunnel between i and j costing c[i,j])
//
// Tokens are whitespace-separated integers; line breaks carry no meaning.
// Anything after the last expected token is ignored.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hubnet/core"
	"github.com/katalvlaran/hubnet/hub"
)

// ErrSyntax indicates a missing or non-integer token, or a negative count.
// Errors carrying it also match core.ErrInvalidInput.
var ErrSyntax = errors.New("instance: malformed input")

// maxPrealloc caps slice preallocation driven by header counts.
const maxPrealloc = 1 << 16

// tokenReader yields integers from a word scanner and tracks the position.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenReader) next(what string) (int64, error) {
	t.pos++
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("token %d (%s): %w", t.pos, what, err)
		}
		return 0, fmt.Errorf("token %d (%s): unexpected end of input: %w: %w", t.pos, what, ErrSyntax, core.ErrInvalidInput)
	}
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d (%s): %q is not an integer: %w: %w", t.pos, what, t.sc.Text(), ErrSyntax, core.ErrInvalidInput)
	}

	return v, nil
}

func (t *tokenReader) nextInt(what string) (int, error) {
	v, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if int64(int(v)) != v {
		return 0, fmt.Errorf("token %d (%s): %d overflows int: %w: %w", t.pos, what, v, ErrSyntax, core.ErrInvalidInput)
	}

	return int(v), nil
}

// Read parses one instance from r and validates it.
//
// Errors:
//   - ErrSyntax (with core.ErrInvalidInput): truncated input, non-integer token, K < 0 or M < 0.
//   - core.ErrTooFewVertices, core.ErrVertexOutOfRange, core.ErrNegativeWeight from validation.
//   - Any read error from r, unwrapped from the scanner.
func Read(r io.Reader) (hub.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc}

	n, err := tr.nextInt("N")
	if err != nil {
		return hub.Instance{}, err
	}
	k, err := tr.nextInt("K")
	if err != nil {
		return hub.Instance{}, err
	}
	m, err := tr.nextInt("M")
	if err != nil {
		return hub.Instance{}, err
	}
	if k < 0 || m < 0 {
		return hub.Instance{}, fmt.Errorf("header: K=%d M=%d must be non-negative: %w: %w", k, m, ErrSyntax, core.ErrInvalidInput)
	}

	inst := hub.Instance{
		Facilities: n,
		Sites:      make([]hub.Site, 0, min(k, maxPrealloc)),
		Tunnels:    make([]core.Edge, 0, min(m, maxPrealloc)),
	}
	for i := 0; i < k; i++ {
		f, err := tr.nextInt("site facility")
		if err != nil {
			return hub.Instance{}, err
		}
		c, err := tr.next("site cost")
		if err != nil {
			return hub.Instance{}, err
		}
		inst.Sites = append(inst.Sites, hub.Site{Facility: f, Cost: c})
	}
	for i := 0; i < m; i++ {
		a, err := tr.nextInt("tunnel from")
		if err != nil {
			return hub.Instance{}, err
		}
		b, err := tr.nextInt("tunnel to")
		if err != nil {
			return hub.Instance{}, err
		}
		c, err := tr.next("tunnel cost")
		if err != nil {
			return hub.Instance{}, err
		}
		inst.Tunnels = append(inst.Tunnels, core.Edge{From: a, To: b, Weight: c})
	}

	if err = inst.Validate(); err != nil {
		return hub.Instance{}, err
	}

	return inst, nil
}

// Write serializes inst in the format Read accepts, one record per line.
func Write(w io.Writer, inst hub.Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", inst.Facilities, len(inst.Sites), len(inst.Tunnels))
	for _, s := range inst.Sites {
		fmt.Fprintf(bw, "%d %d\n", s.Facility, s.Cost)
	}
	for _, e := range inst.Tunnels {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}
