package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/aretw0/holdfast/pkg/owner"
)

// Default returns the built-in catalog: one scenario per rule, in the
// order they build on each other. All inputs are literal constants, so
// re-running the catalog produces byte-identical output.
func Default() *Registry {
	r := NewRegistry()
	for _, sc := range catalog {
		r.Register(sc)
	}
	return r
}

var catalog = []domain.Scenario{
	{
		Name:    "mutable-text",
		Title:   "Mutable text",
		Summary: "An owned text value can grow in place.",
		Run:     mutableText,
	},
	{
		Name:    "copy-simple",
		Title:   "Copying simple values",
		Summary: "Assigning a simple value copies it; both bindings stay valid.",
		Run:     copySimple,
	},
	{
		Name:    "move-text",
		Title:   "Moving owned text",
		Summary: "Assigning an owned value transfers it; the source binding dies.",
		Run:     moveText,
	},
	{
		Name:    "clone-text",
		Title:   "Cloning owned text",
		Summary: "A clone deep-copies the value; both bindings stay valid.",
		Run:     cloneText,
	},
	{
		Name:    "param-passing",
		Title:   "Passing values to functions",
		Summary: "Owned values move into a call; simple values are copied.",
		Run:     paramPassing,
	},
	{
		Name:    "return-ownership",
		Title:   "Returning ownership",
		Summary: "A function can take a value and hand ownership back.",
		Run:     returnOwnership,
	},
	{
		Name:    "shared-borrow",
		Title:   "Shared borrows",
		Summary: "A read-only borrow leaves the owner valid.",
		Run:     sharedBorrow,
	},
	{
		Name:    "exclusive-borrow",
		Title:   "Exclusive borrows",
		Summary: "A mutable borrow can change the value without moving it.",
		Run:     exclusiveBorrow,
	},
	{
		Name:    "borrow-rules",
		Title:   "Borrowing rules",
		Summary: "Many shared borrows, or one exclusive borrow, never both.",
		Run:     borrowRules,
	},
	{
		Name:    "no-dangle",
		Title:   "No dangling views",
		Summary: "Return the owned value itself, never a view of a local.",
		Run:     noDangle,
	},
	{
		Name:    "slice-text",
		Title:   "Slicing text",
		Summary: "Views over sub-regions of an owned text.",
		Run:     sliceText,
	},
	{
		Name:    "first-word",
		Title:   "First word",
		Summary: "Extract the region before the first space.",
		Run:     firstWord,
	},
	{
		Name:    "flexible-slices",
		Title:   "Flexible slicing",
		Summary: "The same extraction works on owned text, views and literals.",
		Run:     flexibleSlices,
	},
	{
		Name:    "slice-ints",
		Title:   "Slicing fixed sequences",
		Summary: "Sub-regions of integer sequences follow the same rules.",
		Run:     sliceInts,
	},
}

func mutableText(ctx context.Context, w io.Writer) error {
	s := owner.New("hello")
	if err := s.Push(", world~"); err != nil {
		return err
	}
	fmt.Fprintln(w, s.MustString())
	return nil
}

func copySimple(ctx context.Context, w io.Writer) error {
	x := 5
	y := x // simple values are copied on assignment
	fmt.Fprintf(w, "x = %d, y = %d\n", x, y)
	return nil
}

func moveText(ctx context.Context, w io.Writer) error {
	s1 := owner.New("hello")
	s2, err := s1.Move()
	if err != nil {
		return err
	}

	// The value lives on under s2; s1 is dead.
	if _, err := s1.String(); err != nil {
		fmt.Fprintf(w, "s1 after move: %v\n", err)
	}
	fmt.Fprintf(w, "%s, world\n", s2.MustString())
	return nil
}

func cloneText(ctx context.Context, w io.Writer) error {
	s1 := owner.New("hello")
	s2, err := s1.Clone()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "s1 = %s, s2 = %s\n", s1.MustString(), s2.MustString())
	return nil
}

// printText consumes its argument: the caller moves ownership into the
// call, and the value is released when the function returns.
func printText(w io.Writer, value *owner.Text) error {
	s, err := value.String()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "This is a text value: %s\n", s)
	return nil
}

func printInteger(w io.Writer, value int) {
	fmt.Fprintf(w, "This is an integer: %d\n", value)
}

func paramPassing(ctx context.Context, w io.Writer) error {
	s := owner.New("hello")
	arg, err := s.Move()
	if err != nil {
		return err
	}
	if err := printText(w, arg); err != nil {
		return err
	}

	x := 5
	printInteger(w, x)

	// s moved into the call and is gone; x was copied and survives.
	if _, err := s.String(); err != nil {
		fmt.Fprintf(w, "s after the call: %v\n", err)
	}
	fmt.Fprintf(w, "x after the call: %d\n", x)
	return nil
}

// takesAndGivesBack receives ownership and immediately returns it.
func takesAndGivesBack(value *owner.Text) *owner.Text {
	return value
}

func returnOwnership(ctx context.Context, w io.Writer) error {
	s := owner.New("hello")
	arg, err := s.Move()
	if err != nil {
		return err
	}
	s2 := takesAndGivesBack(arg)

	fmt.Fprintf(w, "ownership came back as s2: %s\n", s2.MustString())
	return nil
}

func textLength(r *owner.Ref) (int, error) {
	return r.Len()
}

func sharedBorrow(ctx context.Context, w io.Writer) error {
	s1 := owner.New("hello")
	r, err := s1.Borrow()
	if err != nil {
		return err
	}
	n, err := textLength(r)
	if err != nil {
		return err
	}
	r.Release()

	// Borrowing never took ownership, so s1 is still usable.
	fmt.Fprintf(w, "The length of '%s' is %d.\n", s1.MustString(), n)
	return nil
}

func change(m *owner.MutRef) error {
	return m.Push(", world")
}

func exclusiveBorrow(ctx context.Context, w io.Writer) error {
	s := owner.New("hello")
	m, err := s.BorrowMut()
	if err != nil {
		return err
	}
	if err := change(m); err != nil {
		return err
	}
	m.Release()

	fmt.Fprintf(w, "The final result is: %s\n", s.MustString())
	return nil
}

func borrowRules(ctx context.Context, w io.Writer) error {
	s := owner.New("hello")

	// One exclusive borrow at a time: release r1 before taking r2.
	r1, err := s.BorrowMut()
	if err != nil {
		return err
	}
	v, err := r1.String()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "r1: %s\n", v)
	r1.Release()

	r2, err := s.BorrowMut()
	if err != nil {
		return err
	}
	v, err = r2.String()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "r2: %s\n", v)

	// Overlapping exclusive borrows are rejected.
	if _, err := s.BorrowMut(); err != nil {
		fmt.Fprintf(w, "second exclusive borrow: %v\n", err)
	}
	r2.Release()

	// Shared borrows are not restricted this way.
	ra, err := s.Borrow()
	if err != nil {
		return err
	}
	rb, err := s.Borrow()
	if err != nil {
		return err
	}
	va, err := ra.String()
	if err != nil {
		return err
	}
	vb, err := rb.String()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ra: %s, rb: %s\n", va, vb)
	ra.Release()
	rb.Release()
	return nil
}

// noDangleValue returns the owned value itself. Returning a Span over a
// local Text would leave a view whose backing value is gone.
func noDangleValue() *owner.Text {
	return owner.New("hello")
}

func noDangle(ctx context.Context, w io.Writer) error {
	result := noDangleValue()
	fmt.Fprintf(w, "no dangle: %s\n", result.MustString())
	return nil
}

func sliceText(ctx context.Context, w io.Writer) error {
	s := owner.New("hello world")
	n, err := s.Len()
	if err != nil {
		return err
	}

	slice1, err := s.Slice(0, 5)
	if err != nil {
		return err
	}
	slice2, err := s.Prefix(5)
	if err != nil {
		return err
	}
	slice3, err := s.Slice(6, n)
	if err != nil {
		return err
	}
	slice4, err := s.Suffix(6)
	if err != nil {
		return err
	}

	for i, span := range []owner.Span{slice1, slice2, slice3, slice4} {
		v, err := span.String()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Slice %d: %s\n", i+1, v)
	}
	return nil
}

func firstWord(ctx context.Context, w io.Writer) error {
	s := owner.New("hello world")
	first, err := s.FirstWord()
	if err != nil {
		return err
	}
	v, err := first.String()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "First word is %s\n", v)
	return nil
}

func flexibleSlices(ctx context.Context, w io.Writer) error {
	myText := owner.New("hello world")

	part, err := myText.Slice(0, 6)
	if err != nil {
		return err
	}
	partStr, err := part.String()
	if err != nil {
		return err
	}
	all, err := myText.All()
	if err != nil {
		return err
	}
	allStr, err := all.String()
	if err != nil {
		return err
	}

	w1 := owner.FirstWord(partStr)
	w2 := owner.FirstWord(allStr)
	w3 := owner.FirstWord(myText.MustString())

	// Literals are already plain regions; the same function applies.
	myLiteral := "hello world"
	wl1 := owner.FirstWord(myLiteral[0:6])
	wl2 := owner.FirstWord(myLiteral[:])
	wl3 := owner.FirstWord(myLiteral)

	fmt.Fprintf(w, "Output: %s %s %s %s %s %s\n", w1, w2, w3, wl1, wl2, wl3)
	return nil
}

func sliceInts(ctx context.Context, w io.Writer) error {
	a := []int{1, 2, 3, 4, 5}
	slice, err := owner.SliceInts(a, 1, 3)
	if err != nil {
		return err
	}
	for _, item := range slice {
		fmt.Fprintln(w, item)
	}
	return nil
}
