package ivms101

import "github.com/goccy/go-json"

// Bound is the marker constraint carrying the maximum length of a Text.
type Bound interface{ Max() int }

type (
	// Max16 bounds a Text at 16 characters.
	Max16 struct{}
	// Max35 bounds a Text at 35 characters.
	Max35 struct{}
	// Max50 bounds a Text at 50 characters.
	Max50 struct{}
	// Max70 bounds a Text at 70 characters.
	Max70 struct{}
	// Max100 bounds a Text at 100 characters.
	Max100 struct{}
)

func (Max16) Max() int  { return 16 }
func (Max35) Max() int  { return 35 }
func (Max50) Max() int  { return 50 }
func (Max70) Max() int  { return 70 }
func (Max100) Max() int { return 100 }

// Text is an immutable string whose length never exceeds the bound L.
// Distinct bounds are distinct types, so values cannot cross-assign.
// The wire form is the bare string; no case or whitespace normalization
// is applied.
type Text[L Bound] struct {
	inner string
}

// NewText wraps s, failing when s is longer than the bound allows.
func NewText[L Bound](s string) (Text[L], error) {
	var l L
	if len(s) > l.Max() {
		return Text[L]{}, shapeErrorf(CodeTooLong,
			"cannot parse string of length %d into a text of at most %d characters", len(s), l.Max())
	}
	return Text[L]{inner: s}, nil
}

func (t Text[L]) String() string { return t.inner }

func (t Text[L]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.inner)
}

func (t *Text[L]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewText[L](s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Bounded-text aliases matching the field sizes IVMS101 assigns.
type (
	StringMax16  = Text[Max16]
	StringMax35  = Text[Max35]
	StringMax50  = Text[Max50]
	StringMax70  = Text[Max70]
	StringMax100 = Text[Max100]
)
