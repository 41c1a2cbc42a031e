package circular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatfold/flatfold/circular"
)

func TestCircular_SingletonIsSelfLinked(t *testing.T) {
	c := circular.New[string]()
	n := c.AddNode("a")
	require.Equal(t, n, c.Next(n))
	require.Equal(t, n, c.Prev(n))
}

func TestCircular_SpliceLinksThreeIntoRing(t *testing.T) {
	c := circular.New[int]()
	a := c.AddNode(1)
	b := c.AddNode(2)
	d := c.AddNode(3)

	c.Splice(a, b)
	c.Splice(b, d)
	c.Splice(d, a)

	order := c.Iter(a)
	require.Len(t, order, 3)
	require.Equal(t, []circular.Node{a, b, d}, order)
	require.Equal(t, a, c.Next(d))
	require.Equal(t, d, c.Prev(a))
}

func TestCircular_SplitRemovesSection(t *testing.T) {
	c := circular.New[int]()
	a := c.AddNode(1)
	b := c.AddNode(2)
	d := c.AddNode(3)
	c.Splice(a, b)
	c.Splice(b, d)
	c.Splice(d, a)

	// Remove b, the section strictly between a and d, with Split(d, a)
	// (which sets a.next = d); b is left as an abandoned singleton, as
	// the package's leak-on-removal policy intends.
	c.Split(d, a)

	order := c.Iter(a)
	require.Len(t, order, 2)
	require.Equal(t, []circular.Node{a, d}, order)
	require.Equal(t, b, c.Next(b))
	require.Equal(t, b, c.Prev(b))
}

func TestCircular_MutDataInPlace(t *testing.T) {
	c := circular.New[int]()
	n := c.AddNode(10)
	*c.MutData(n) += 5
	require.Equal(t, 15, c.Data(n))
}
