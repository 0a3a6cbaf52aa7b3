package propagate

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goprop-core/annotation"
	"goprop-core/hierarchy"
)

func direct(pairs ...[2]string) annotation.Direct {
	d := annotation.Direct{Annotations: annotation.Annotations{}, Membership: annotation.Membership{}}
	for _, p := range pairs {
		d.Annotations.Add(p[0], p[1])
		d.Membership.Add(p[1], p[0])
	}
	return d
}

func TestSingleLevel(t *testing.T) {
	d := direct([2]string{"G1", "C1"})
	got := Propagate(d, []hierarchy.Record{{ID: "C1", Parents: []string{"C2"}}})
	assert.True(t, got["G1"].Has("C2"))
	assert.True(t, got["G1"].Has("C1"))
}

func TestNoPropagationWithoutDirectMembers(t *testing.T) {
	d := direct([2]string{"G1", "C1"})
	got := Propagate(d, []hierarchy.Record{{ID: "C3", Parents: []string{"C4", "C5"}}})
	assert.Equal(t, []string{"C1"}, got["G1"].Sorted())
	assert.Len(t, got, 1)
}

func TestNotTransitive(t *testing.T) {
	// C1 -> C2 -> C3; only C1 has direct members, so C3 is never reached,
	// whatever the row order.
	recs := []hierarchy.Record{
		{ID: "C2", Parents: []string{"C3"}},
		{ID: "C1", Parents: []string{"C2"}},
		{ID: "C2", Parents: []string{"C3"}},
	}
	got := Propagate(direct([2]string{"G1", "C1"}), recs)
	assert.Equal(t, []string{"C1", "C2"}, got["G1"].Sorted())
}

func TestMembershipNotRefreshedMidPass(t *testing.T) {
	// G2 reaches C2 only through propagation; the later C2 row must still
	// use C2's direct members (G1) alone.
	d := direct([2]string{"G1", "C2"}, [2]string{"G2", "C1"})
	recs := []hierarchy.Record{
		{ID: "C1", Parents: []string{"C2"}},
		{ID: "C2", Parents: []string{"C9"}},
	}
	got := Propagate(d, recs)
	assert.True(t, got["G1"].Has("C9"))
	assert.True(t, got["G2"].Has("C2"))
	assert.False(t, got["G2"].Has("C9"))
}

func TestDoesNotMutateInput(t *testing.T) {
	d := direct([2]string{"G1", "C1"})
	_ = Propagate(d, []hierarchy.Record{{ID: "C1", Parents: []string{"C2"}}})
	assert.Equal(t, []string{"C1"}, d.Annotations["G1"].Sorted())
}

func TestMonotone(t *testing.T) {
	d := direct([2]string{"G1", "C1"}, [2]string{"G2", "C2"}, [2]string{"G2", "C3"})
	recs := []hierarchy.Record{
		{ID: "C1", Parents: []string{"C3"}},
		{ID: "C3", Parents: []string{"C4"}},
	}
	got := Propagate(d, recs)
	for g, before := range d.Annotations {
		for c := range before {
			assert.True(t, got[g].Has(c), "%s lost %s", g, c)
		}
	}
}

func TestAggregateConsistency(t *testing.T) {
	d := direct([2]string{"G1", "C1"}, [2]string{"G2", "C1"}, [2]string{"G3", "C2"})
	a := Propagate(d, []hierarchy.Record{{ID: "C1", Parents: []string{"C2", "C3"}}})
	m := Aggregate(a)

	for g, classes := range a {
		for c := range classes {
			assert.True(t, m[c].Has(g), "%s missing from %s", g, c)
		}
	}
	for c, genes := range m {
		require.NotEmpty(t, genes)
		for g := range genes {
			assert.True(t, a[g].Has(c), "%s not annotated to %s", g, c)
		}
	}
	assert.Equal(t, []string{"G1", "G2", "G3"}, m["C2"].Sorted())
}

func TestScenario(t *testing.T) {
	ctx := context.Background()
	ann := "!header...\n" +
		"ignored\tG1\tignored\tignored\tGO:0000001\n" +
		"ignored\tG2\tignored\tignored\tGO:0000001\n"
	hier := "ignored\tignored\t1\tName1\t2\n"

	d, err := annotation.Load(ctx, strings.NewReader(ann), annotation.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G2"}, d.Membership["GO:0000001"].Sorted())

	recs, err := hierarchy.Load(ctx, strings.NewReader(hier), hierarchy.Options{})
	require.NoError(t, err)

	m := Aggregate(Propagate(d, recs))
	assert.Len(t, m, 2)
	assert.Len(t, m["GO:0000001"], 2)
	assert.Len(t, m["GO:0000002"], 2)

	names := hierarchy.NamesOf(recs)
	assert.Equal(t, "Name1", names.Lookup("GO:0000001"))
	assert.Equal(t, hierarchy.UnknownName, names.Lookup("GO:0000002"))
}
