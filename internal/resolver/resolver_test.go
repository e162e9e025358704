package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewright/sitewright/internal/domain"
	"github.com/sitewright/sitewright/internal/registry"
)

func TestResolve_OwnerNodeID(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddNode(domain.Node{ID: "1"})
	reg.AddPage(domain.Page{Path: "/posts/one", OwnerNodeID: "1"})

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, domain.MatchOwnerNodeID, res.Kind)
	assert.Equal(t, "/posts/one", res.Page.Path)
}

func TestResolve_OwnerNodeIDBeatsContextID(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddNode(domain.Node{ID: "1"})
	// Context match sorts before the owner match by path; priority must
	// still pick the owner.
	reg.AddPage(domain.Page{Path: "/a-context", Context: map[string]string{"id": "1"}})
	reg.AddPage(domain.Page{Path: "/z-owner", OwnerNodeID: "1"})

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, domain.MatchOwnerNodeID, res.Kind)
	assert.Equal(t, "/z-owner", res.Page.Path)
}

func TestResolve_ContextID(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddNode(domain.Node{ID: "1"})
	reg.AddPage(domain.Page{Path: "/posts/one", Context: map[string]string{"id": "1"}})

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, domain.MatchContextID, res.Kind)
	assert.Equal(t, "/posts/one", res.Page.Path)
}

func TestResolve_ContextIDAmbiguousPicksSmallestPath(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddPage(domain.Page{Path: "/b", Context: map[string]string{"id": "1"}})
	reg.AddPage(domain.Page{Path: "/a", Context: map[string]string{"id": "1"}})

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, "/a", res.Page.Path)
}

func TestResolve_QueryTracking(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddNode(domain.Node{ID: "1"})
	reg.AddPage(domain.Page{Path: "/posts/one", Component: "post.tsx"})
	reg.TrackQuery("1", "/posts/one")

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, domain.MatchQueryTracking, res.Kind)
	assert.Equal(t, "/posts/one", res.Page.Path)
	// The full registered page is carried, not just the path.
	assert.Equal(t, "post.tsx", res.Page.Component)
}

func TestResolve_QueryTrackingTieBreak(t *testing.T) {
	reg := registry.NewInMemory()
	reg.TrackQuery("1", "/c")
	reg.TrackQuery("1", "/a")
	reg.TrackQuery("1", "/b")

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, domain.MatchQueryTracking, res.Kind)
	assert.Equal(t, "/a", res.Page.Path)
}

func TestResolve_QueryTrackingUnlistedPage(t *testing.T) {
	reg := registry.NewInMemory()
	reg.TrackQuery("1", "/gone")

	res := Resolve("1", reg)

	require.True(t, res.Resolved())
	assert.Equal(t, domain.Page{Path: "/gone"}, *res.Page)
}

func TestResolve_None(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddNode(domain.Node{ID: "1"})

	res := Resolve("1", reg)

	assert.False(t, res.Resolved())
	assert.Equal(t, domain.MatchNone, res.Kind)
	assert.Nil(t, res.Page)
}

func TestResolve_Deterministic(t *testing.T) {
	reg := registry.NewInMemory()
	reg.AddPage(domain.Page{Path: "/x", Context: map[string]string{"id": "1"}})
	reg.TrackQuery("1", "/y")
	reg.TrackQuery("2", "/z")

	first := Resolve("1", reg)
	second := Resolve("1", reg)

	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, *first.Page, *second.Page)
}
