// Package recursion simulates the call stack of a simple counting recursion
// so that tail and head recursion can be compared frame by frame.
//
// A call chain of depth n pushes frames 1..n onto a bounded stack.
// In tail mode each frame produces its output on the way down, so the
// output order equals the call order. In head mode the output happens on
// the way back up: frames are popped and numbered as they unwind.
package recursion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlist/stack"
)

// Depth bounds accepted by Simulate.
const (
	MinDepth = 1
	MaxDepth = 10
)

var (
	// ErrDepthOutOfRange indicates n outside [MinDepth, MaxDepth].
	ErrDepthOutOfRange = errors.New("recursion: depth out of range")

	// ErrUnknownMode indicates a Mode other than ModeTail or ModeHead.
	ErrUnknownMode = errors.New("recursion: unknown mode")
)

// Mode selects where a frame produces its output relative to the recursive call.
type Mode int

const (
	// ModeTail outputs before recursing.
	ModeTail Mode = iota
	// ModeHead outputs after the recursive call returns.
	ModeHead
)

// String returns "tail" or "head".
func (m Mode) String() string {
	switch m {
	case ModeTail:
		return "tail"
	case ModeHead:
		return "head"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "tail"/"head" (case-insensitive, surrounding space ignored) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tail":
		return ModeTail, nil
	case "head":
		return ModeHead, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Frame is one activation record of the simulated recursion.
type Frame struct {
	Call  int    // 1-based call depth
	Value string // value printed by this call
	Order int    // 1-based position of this frame's output
}

// Simulate returns the frames of a depth-n recursion in the order their
// output is produced.
//
// Tail: [(1,"1",1) (2,"2",2) … (n,"n",n)]
// Head: [(n,"n",1) (n-1,"n-1",2) … (1,"1",n)]
//
// Errors: ErrDepthOutOfRange, ErrUnknownMode.
func Simulate(mode Mode, n int) ([]Frame, error) {
	if n < MinDepth || n > MaxDepth {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrDepthOutOfRange, n, MinDepth, MaxDepth)
	}
	if mode != ModeTail && mode != ModeHead {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	calls, err := stack.New[Frame](stack.WithCapacity(MaxDepth))
	if err != nil {
		return nil, err
	}
	out := make([]Frame, 0, n)

	// descent
	for i := 1; i <= n; i++ {
		f := Frame{Call: i, Value: strconv.Itoa(i)}
		if mode == ModeTail {
			f.Order = i
			out = append(out, f)
		}
		if err = calls.Push(f); err != nil {
			return nil, err
		}
	}

	// unwind
	for order := 1; !calls.IsEmpty(); order++ {
		f, err := calls.Pop()
		if err != nil {
			return nil, err
		}
		if mode == ModeHead {
			f.Order = order
			out = append(out, f)
		}
	}

	return out, nil
}
